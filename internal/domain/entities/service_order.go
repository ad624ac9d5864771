package entities

import (
	"errors"
	"time"
)

var (
	ErrOrderNotEditable       = errors.New("line items are frozen for the current status")
	ErrBudgetAlreadyGenerated = errors.New("budget already generated for this order")
	ErrBudgetMissing          = errors.New("order has no budget to decide on")
	ErrDeliverBeforeFinalize  = errors.New("order cannot be delivered before finalization")
	ErrHistoryRewrite         = errors.New("history timestamp already recorded")
	ErrLineItemNotFound       = errors.New("line item not found on this order")
)

// ItemKind distinguishes the two stock-backed line-item categories.
type ItemKind string

const (
	ItemKindPeca   ItemKind = "peca"
	ItemKindInsumo ItemKind = "insumo"
)

// IncludedService is a catalog service snapshotted onto the order. Name and
// price are copied at add time; later catalog repricing never touches them.
type IncludedService struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// IncludedItem is a stock part or consumable snapshotted onto the order.
type IncludedItem struct {
	ID          string   `json:"id"`
	StockItemID string   `json:"stock_item_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Kind        ItemKind `json:"kind"`
}

// Budget is the priced quote generated from the included lines. Set at most
// once per order lifetime.
type Budget struct {
	Total       float64   `json:"total"`
	GeneratedAt time.Time `json:"generated_at"`
}

// HistoryTimestamps records lifecycle instants. Each field is written exactly
// once, at the transition that owns it, and never overwritten.
type HistoryTimestamps struct {
	CreatedAt          time.Time  `json:"created_at"`
	ExecutionStartedAt *time.Time `json:"execution_started_at,omitempty"`
	FinalizedAt        *time.Time `json:"finalized_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

func (h *HistoryTimestamps) markExecutionStarted(now time.Time) error {
	if h.ExecutionStartedAt != nil {
		return ErrHistoryRewrite
	}
	h.ExecutionStartedAt = &now
	return nil
}

func (h *HistoryTimestamps) markFinalized(now time.Time) error {
	if h.FinalizedAt != nil {
		return ErrHistoryRewrite
	}
	h.FinalizedAt = &now
	return nil
}

// markDelivered additionally guards the finalize-before-deliver invariant,
// since this value holds both dates.
func (h *HistoryTimestamps) markDelivered(now time.Time) error {
	if h.FinalizedAt == nil {
		return ErrDeliverBeforeFinalize
	}
	if h.DeliveredAt != nil {
		return ErrHistoryRewrite
	}
	h.DeliveredAt = &now
	return nil
}

// ServiceOrder is the aggregate root tracked from intake to delivery.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code
//
// Orders are never hard-deleted; they reach a terminal status instead.
type ServiceOrder struct {
	ID        string            `json:"id"`
	Code      string            `json:"code"`
	VehicleID string            `json:"vehicle_id"`
	Status    OrderStatus       `json:"status"`
	Services  []IncludedService `json:"services"`
	Items     []IncludedItem    `json:"items"`
	Budget    *Budget           `json:"budget,omitempty"`
	History   HistoryTimestamps `json:"history"`
}

// NewServiceOrder builds a fresh aggregate in the initial status. The code
// must come from the allocator; uniqueness is not re-checked here.
func NewServiceOrder(id, code, vehicleID string, now time.Time) *ServiceOrder {
	return &ServiceOrder{
		ID:        id,
		Code:      code,
		VehicleID: vehicleID,
		Status:    OrderStatusRecebida,
		History:   HistoryTimestamps{CreatedAt: now},
	}
}

// apply routes every mutation through the transition table.
func (o *ServiceOrder) apply(op Operation) error {
	target, err := NextStatus(o.Status, op)
	if err != nil {
		return err
	}
	o.Status = target
	return nil
}

func (o *ServiceOrder) StartDiagnosis() error {
	return o.apply(OpStartDiagnosis)
}

func (o *ServiceOrder) AddService(s IncludedService) error {
	if !o.Status.IsEditable() {
		return ErrOrderNotEditable
	}
	o.Services = append(o.Services, s)
	return nil
}

func (o *ServiceOrder) RemoveService(includedID string) error {
	if !o.Status.IsEditable() {
		return ErrOrderNotEditable
	}
	for i, s := range o.Services {
		if s.ID == includedID {
			o.Services = append(o.Services[:i], o.Services[i+1:]...)
			return nil
		}
	}
	return ErrLineItemNotFound
}

func (o *ServiceOrder) AddItem(it IncludedItem) error {
	if !o.Status.IsEditable() {
		return ErrOrderNotEditable
	}
	o.Items = append(o.Items, it)
	return nil
}

func (o *ServiceOrder) RemoveItem(includedID string) error {
	if !o.Status.IsEditable() {
		return ErrOrderNotEditable
	}
	for i, it := range o.Items {
		if it.ID == includedID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return nil
		}
	}
	return ErrLineItemNotFound
}

// BudgetTotal sums the snapshotted lines: services at unit price, items at
// price times quantity.
func (o *ServiceOrder) BudgetTotal() float64 {
	total := 0.0
	for _, s := range o.Services {
		total += s.Price
	}
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// GenerateBudget prices the order and moves it to aguardando_aprovacao. A
// second call is a conflict; the existing budget is left untouched.
func (o *ServiceOrder) GenerateBudget(now time.Time) error {
	if o.Budget != nil {
		return ErrBudgetAlreadyGenerated
	}
	if err := o.apply(OpGenerateBudget); err != nil {
		return err
	}
	o.Budget = &Budget{Total: o.BudgetTotal(), GeneratedAt: now}
	return nil
}

// BeginExecution is the approval transition. The caller runs the stock
// reservation check before invoking it and the commit writes after; the
// aggregate is marked em_execucao in memory first so partial commit failures
// match the documented eventual-consistency boundary.
func (o *ServiceOrder) BeginExecution(now time.Time) error {
	if o.Budget == nil {
		return ErrBudgetMissing
	}
	if err := o.apply(OpApproveBudget); err != nil {
		return err
	}
	return o.History.markExecutionStarted(now)
}

func (o *ServiceOrder) DisapproveBudget() error {
	if o.Budget == nil {
		return ErrBudgetMissing
	}
	return o.apply(OpDisapproveBudget)
}

func (o *ServiceOrder) FinalizeExecution(now time.Time) error {
	if err := o.apply(OpFinalizeExecution); err != nil {
		return err
	}
	return o.History.markFinalized(now)
}

func (o *ServiceOrder) Deliver(now time.Time) error {
	if err := o.apply(OpDeliver); err != nil {
		return err
	}
	return o.History.markDelivered(now)
}

func (o *ServiceOrder) Cancel() error {
	return o.apply(OpCancel)
}

// operationForTarget maps an explicit target status to the operation that
// reaches it, so webhook-driven updates still pass the guarded transition.
var operationForTarget = map[OrderStatus]Operation{
	OrderStatusEmDiagnostico:       OpStartDiagnosis,
	OrderStatusAguardandoAprovacao: OpGenerateBudget,
	OrderStatusEmExecucao:          OpApproveBudget,
	OrderStatusFinalizada:          OpFinalizeExecution,
	OrderStatusEntregue:            OpDeliver,
	OrderStatusCancelada:           OpCancel,
}

// SetStatus moves the order to an explicit target status. It is not a
// bypass: the move is translated to its operation and applied with the same
// guards and timestamp stamping as a direct call.
func (o *ServiceOrder) SetStatus(target OrderStatus, now time.Time) error {
	op, ok := operationForTarget[target]
	if !ok {
		return &TransitionError{From: o.Status, Operation: Operation("set_status:" + string(target))}
	}
	switch op {
	case OpGenerateBudget:
		return o.GenerateBudget(now)
	case OpApproveBudget:
		return o.BeginExecution(now)
	case OpFinalizeExecution:
		return o.FinalizeExecution(now)
	case OpDeliver:
		return o.Deliver(now)
	case OpCancel:
		return o.Cancel()
	default:
		return o.apply(op)
	}
}
