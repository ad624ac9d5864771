package entities

// ActorKind is the closed set of caller roles the OS service recognizes.
type ActorKind string

const (
	ActorKindAdmin    ActorKind = "admin"
	ActorKindCustomer ActorKind = "customer"
	ActorKindSystem   ActorKind = "system"
)

// Actor is a tagged variant over the caller roles. CustomerID is meaningful
// only for ActorKindCustomer.
type Actor struct {
	Kind       ActorKind
	CustomerID string
}

func AdminActor() Actor {
	return Actor{Kind: ActorKindAdmin}
}

func CustomerActor(customerID string) Actor {
	return Actor{Kind: ActorKindCustomer, CustomerID: customerID}
}

// SystemActor represents the saga/webhook callbacks acting on our behalf.
func SystemActor() Actor {
	return Actor{Kind: ActorKindSystem}
}

// CanManageOrders answers whether the actor may drive staff-only operations
// (diagnosis, line items, budget generation, execution, delivery).
func (a Actor) CanManageOrders() bool {
	return a.Kind == ActorKindAdmin || a.Kind == ActorKindSystem
}

// CanDecideBudget answers whether the actor may approve or disapprove a
// budget: staff and system always, customers only for vehicles they own.
func (a Actor) CanDecideBudget(vehicleOwnerID string) bool {
	if a.CanManageOrders() {
		return true
	}
	return a.Kind == ActorKindCustomer && a.CustomerID != "" && a.CustomerID == vehicleOwnerID
}
