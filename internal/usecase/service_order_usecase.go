package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("service order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidVehicleID  = errors.New("invalid vehicle id")
	ErrInvalidServiceID  = errors.New("invalid service id")
	ErrInvalidStockItem  = errors.New("invalid stock item id")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidStatus     = errors.New("invalid target status")
	ErrNotAllowed        = errors.New("actor is not allowed to perform this operation")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrServiceNotFound   = errors.New("catalog service not found")
	ErrStockItemNotFound = errors.New("stock item not found")
)

// IServiceOrderUseCase exposes the service-order lifecycle.
//
// Every operation resolves the acting party first, loads the aggregate,
// applies one guarded state-machine move and persists the result. Budget
// approval additionally runs the stock reservation protocol before the
// aggregate is saved.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, vehicleID string) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	StartDiagnosis(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	AddService(ctx context.Context, actor entities.Actor, orderID, serviceID string) (entities.ServiceOrder, error)
	RemoveService(ctx context.Context, actor entities.Actor, orderID, includedID string) (entities.ServiceOrder, error)
	AddItem(ctx context.Context, actor entities.Actor, orderID, stockItemID string, quantity int) (entities.ServiceOrder, error)
	RemoveItem(ctx context.Context, actor entities.Actor, orderID, includedID string) (entities.ServiceOrder, error)
	GenerateBudget(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	ApproveBudget(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	DisapproveBudget(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	FinalizeExecution(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	Deliver(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	SetStatus(ctx context.Context, actor entities.Actor, id string, target entities.OrderStatus) (entities.ServiceOrder, error)
	PublicLookup(ctx context.Context, code, document string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo        interfaces.IServiceOrderRepository
	stock       interfaces.IStockGateway
	catalog     interfaces.IServiceCatalogGateway
	vehicles    interfaces.IVehicleGateway
	publisher   interfaces.IOrderEventPublisher
	reservation *StockReservation
	codes       *codeAllocator
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	stock interfaces.IStockGateway,
	catalog interfaces.IServiceCatalogGateway,
	vehicles interfaces.IVehicleGateway,
	publisher interfaces.IOrderEventPublisher,
	signals interfaces.ICompensationSignals,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:        repo,
		stock:       stock,
		catalog:     catalog,
		vehicles:    vehicles,
		publisher:   publisher,
		reservation: NewStockReservation(stock, signals),
		codes:       newCodeAllocator(repo),
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, actor entities.Actor, vehicleID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, ErrNotAllowed
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.ServiceOrder{}, ErrInvalidVehicleID
	}

	owner, err := u.vehicles.GetVehicleOwner(ctx, vehicleID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if owner.CustomerID == "" {
		return entities.ServiceOrder{}, ErrVehicleNotFound
	}

	code, err := u.codes.Allocate(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	o := entities.NewServiceOrder(id.String(), code, vehicleID, time.Now().UTC())
	created, err := u.repo.Create(ctx, *o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if pErr := u.publisher.OrderCreated(ctx, created); pErr != nil {
		log.Printf("[order][usecase] order.created event failed order_id=%s err=%v", created.ID, pErr)
	}
	log.Printf("[order][usecase] created order_id=%s code=%s vehicle_id=%s", created.ID, created.Code, vehicleID)
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.loadOrder(ctx, id)
}

func (u *ServiceOrderUseCase) StartDiagnosis(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	return u.managedMutation(ctx, actor, id, func(o *entities.ServiceOrder, _ time.Time) error {
		return o.StartDiagnosis()
	})
}

func (u *ServiceOrderUseCase) AddService(ctx context.Context, actor entities.Actor, orderID, serviceID string) (entities.ServiceOrder, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceID
	}
	return u.managedMutation(ctx, actor, orderID, func(o *entities.ServiceOrder, _ time.Time) error {
		svc, err := u.catalog.GetServiceByID(ctx, serviceID)
		if err != nil {
			return err
		}
		if svc.ID == "" {
			return ErrServiceNotFound
		}
		return o.AddService(entities.IncludedService{
			ID:        uuid.NewString(),
			ServiceID: svc.ID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	})
}

func (u *ServiceOrderUseCase) RemoveService(ctx context.Context, actor entities.Actor, orderID, includedID string) (entities.ServiceOrder, error) {
	return u.managedMutation(ctx, actor, orderID, func(o *entities.ServiceOrder, _ time.Time) error {
		return o.RemoveService(strings.TrimSpace(includedID))
	})
}

func (u *ServiceOrderUseCase) AddItem(ctx context.Context, actor entities.Actor, orderID, stockItemID string, quantity int) (entities.ServiceOrder, error) {
	stockItemID = strings.TrimSpace(stockItemID)
	if stockItemID == "" {
		return entities.ServiceOrder{}, ErrInvalidStockItem
	}
	if quantity <= 0 {
		return entities.ServiceOrder{}, ErrInvalidQuantity
	}
	return u.managedMutation(ctx, actor, orderID, func(o *entities.ServiceOrder, _ time.Time) error {
		item, err := u.stock.GetStockItem(ctx, stockItemID)
		if err != nil {
			return err
		}
		if item.ID == "" {
			return ErrStockItemNotFound
		}
		kind := entities.ItemKind(item.Kind)
		if kind != entities.ItemKindPeca && kind != entities.ItemKindInsumo {
			kind = entities.ItemKindPeca
		}
		return o.AddItem(entities.IncludedItem{
			ID:          uuid.NewString(),
			StockItemID: item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    quantity,
			Kind:        kind,
		})
	})
}

func (u *ServiceOrderUseCase) RemoveItem(ctx context.Context, actor entities.Actor, orderID, includedID string) (entities.ServiceOrder, error) {
	return u.managedMutation(ctx, actor, orderID, func(o *entities.ServiceOrder, _ time.Time) error {
		return o.RemoveItem(strings.TrimSpace(includedID))
	})
}

func (u *ServiceOrderUseCase) GenerateBudget(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	updated, err := u.managedMutation(ctx, actor, id, func(o *entities.ServiceOrder, now time.Time) error {
		return o.GenerateBudget(now)
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if pErr := u.publisher.BudgetGenerated(ctx, updated); pErr != nil {
		log.Printf("[order][usecase] budget.generated event failed order_id=%s err=%v", updated.ID, pErr)
	}
	return updated, nil
}

// ApproveBudget moves the order into execution, driving the stock
// reservation protocol first. When the protocol's commit phase fails midway
// the aggregate is deliberately NOT saved: the persisted order stays
// aguardando_aprovacao while the already-decremented stock items wait for the
// external saga, which learns about the gap through the compensation
// signals emitted by the protocol.
func (u *ServiceOrderUseCase) ApproveBudget(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	o, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.ensureBudgetDecision(ctx, actor, o); err != nil {
		return entities.ServiceOrder{}, err
	}

	from := o.Status
	if err := u.reservation.Reserve(ctx, &o, time.Now().UTC()); err != nil {
		return entities.ServiceOrder{}, err
	}

	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if saved.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	u.publishStatusChange(ctx, saved, from)
	log.Printf("[order][usecase] budget approved order_id=%s items=%d", saved.ID, len(saved.Items))
	return saved, nil
}

func (u *ServiceOrderUseCase) DisapproveBudget(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	o, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.ensureBudgetDecision(ctx, actor, o); err != nil {
		return entities.ServiceOrder{}, err
	}

	from := o.Status
	if err := o.DisapproveBudget(); err != nil {
		return entities.ServiceOrder{}, err
	}
	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if saved.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	u.publishStatusChange(ctx, saved, from)
	return saved, nil
}

func (u *ServiceOrderUseCase) FinalizeExecution(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	return u.managedMutation(ctx, actor, id, func(o *entities.ServiceOrder, now time.Time) error {
		return o.FinalizeExecution(now)
	})
}

func (u *ServiceOrderUseCase) Deliver(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	return u.managedMutation(ctx, actor, id, func(o *entities.ServiceOrder, now time.Time) error {
		return o.Deliver(now)
	})
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	return u.managedMutation(ctx, actor, id, func(o *entities.ServiceOrder, _ time.Time) error {
		return o.Cancel()
	})
}

// SetStatus is the webhook/saga entry point. The explicit target still goes
// through the aggregate's guarded transition; approval targets additionally
// run the reservation protocol via ApproveBudget.
func (u *ServiceOrderUseCase) SetStatus(ctx context.Context, actor entities.Actor, id string, target entities.OrderStatus) (entities.ServiceOrder, error) {
	if target == "" {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}
	if target == entities.OrderStatusEmExecucao {
		return u.ApproveBudget(ctx, actor, id)
	}
	return u.managedMutation(ctx, actor, id, func(o *entities.ServiceOrder, now time.Time) error {
		return o.SetStatus(target, now)
	})
}

// PublicLookup resolves an order by code plus the owner's identifying
// document. Every failure mode (unknown code, wrong document, gateway error)
// collapses into ErrOrderNotFound so the surface cannot be used to probe for
// existing codes or documents.
func (u *ServiceOrderUseCase) PublicLookup(ctx context.Context, code, document string) (entities.ServiceOrder, error) {
	code = strings.TrimSpace(code)
	document = strings.TrimSpace(document)
	if code == "" || document == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	o, err := u.repo.GetByCode(ctx, code)
	if err != nil || o.ID == "" {
		if err != nil {
			log.Printf("[order][lookup] repository error (masked): %v", err)
		}
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	owner, err := u.vehicles.GetVehicleOwner(ctx, o.VehicleID)
	if err != nil {
		log.Printf("[order][lookup] vehicle gateway error (masked): %v", err)
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if owner.Document == "" || owner.Document != document {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) loadOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// managedMutation is the shared load-mutate-save path for staff operations.
func (u *ServiceOrderUseCase) managedMutation(
	ctx context.Context,
	actor entities.Actor,
	id string,
	mutate func(o *entities.ServiceOrder, now time.Time) error,
) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, ErrNotAllowed
	}
	o, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	from := o.Status
	if err := mutate(&o, time.Now().UTC()); err != nil {
		return entities.ServiceOrder{}, err
	}
	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	// Save reports a row deleted between load and put as a zero aggregate.
	if saved.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if saved.Status != from {
		u.publishStatusChange(ctx, saved, from)
	}
	return saved, nil
}

// ensureBudgetDecision gates approval/disapproval: staff and system always,
// customers only when they own the order's vehicle.
func (u *ServiceOrderUseCase) ensureBudgetDecision(ctx context.Context, actor entities.Actor, o entities.ServiceOrder) error {
	if actor.CanManageOrders() {
		return nil
	}
	owner, err := u.vehicles.GetVehicleOwner(ctx, o.VehicleID)
	if err != nil {
		return err
	}
	if !actor.CanDecideBudget(owner.CustomerID) {
		return ErrNotAllowed
	}
	return nil
}

// Lifecycle events are best-effort: a broker hiccup must not fail the
// business operation that already persisted.
func (u *ServiceOrderUseCase) publishStatusChange(ctx context.Context, o entities.ServiceOrder, from entities.OrderStatus) {
	if err := u.publisher.StatusChanged(ctx, o, from); err != nil {
		log.Printf("[order][usecase] status event failed order_id=%s from=%s to=%s err=%v", o.ID, from, o.Status, err)
	}
}
