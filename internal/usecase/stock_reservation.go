package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"
)

// InsufficientStockError aborts an approval during the availability check.
// It names the failing item so the customer-facing message is actionable.
type InsufficientStockError struct {
	StockItemID string
	Quantity    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s (requested %d)", e.StockItemID, e.Quantity)
}

// StockCommitError reports a partial phase-2 failure: items before Index were
// already decremented on the external system when the write for Index failed.
type StockCommitError struct {
	StockItemID string
	Index       int
	Err         error
}

func (e *StockCommitError) Error() string {
	return fmt.Sprintf("stock commit failed at item %s (position %d): %v", e.StockItemID, e.Index, e.Err)
}

func (e *StockCommitError) Unwrap() error { return e.Err }

// StockReservation runs the check-then-commit exchange with the external
// stock system during budget approval.
//
// The two phases are not transactional across the process boundary. Phase 1
// is read-only: any unavailable item aborts before anything is mutated.
// Phase 2 marks the aggregate em_execucao in memory first and then decrements
// stock item by item, in list order, sequentially. A failure at item k leaves
// items 1..k-1 decremented; that window is reconciled by the external saga,
// which is told about it via the compensation signals. This mirrors the
// behavior of the original OS service and must not be "fixed" locally.
type StockReservation struct {
	stock   interfaces.IStockGateway
	signals interfaces.ICompensationSignals
}

func NewStockReservation(stock interfaces.IStockGateway, signals interfaces.ICompensationSignals) *StockReservation {
	return &StockReservation{stock: stock, signals: signals}
}

// Reserve drives both phases for o. On success o is em_execucao and every
// included item's external quantity is decremented by its reserved quantity.
// On a phase-1 failure o is untouched. On a phase-2 failure o is em_execucao
// in memory only and a StockCommitError is returned.
func (r *StockReservation) Reserve(ctx context.Context, o *entities.ServiceOrder, now time.Time) error {
	// Phase 1: availability check, read-only.
	for _, it := range o.Items {
		ok, err := r.stock.CheckAvailability(ctx, it.StockItemID, it.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return &InsufficientStockError{StockItemID: it.StockItemID, Quantity: it.Quantity}
		}
	}

	if err := o.BeginExecution(now); err != nil {
		return err
	}

	// Phase 2: sequential commit, in line-item order.
	for i, it := range o.Items {
		current, err := r.stock.GetStockItem(ctx, it.StockItemID)
		if err == nil && current.ID == "" {
			err = &InsufficientStockError{StockItemID: it.StockItemID, Quantity: it.Quantity}
		}
		if err == nil {
			err = r.stock.UpdateStockQuantity(ctx, it.StockItemID, current.Quantity-it.Quantity)
		}
		if err != nil {
			r.signalShortfall(ctx, o.ID, it.StockItemID, it.Quantity)
			return &StockCommitError{StockItemID: it.StockItemID, Index: i, Err: err}
		}
	}
	return nil
}

func (r *StockReservation) signalShortfall(ctx context.Context, orderID, stockItemID string, quantity int) {
	if r.signals == nil {
		return
	}
	if err := r.signals.StockShortfall(ctx, orderID, stockItemID, quantity); err != nil {
		log.Printf("[order][reservation] stock shortfall signal failed order_id=%s item_id=%s err=%v", orderID, stockItemID, err)
		if cErr := r.signals.CriticalFailure(ctx, orderID, "stock shortfall signal emission failed"); cErr != nil {
			log.Printf("[order][reservation] critical compensation signal failed order_id=%s err=%v", orderID, cErr)
		}
	}
}
