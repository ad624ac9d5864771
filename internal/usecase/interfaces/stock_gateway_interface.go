package interfaces

import "context"

// StockItem is the external stock system's record for a part or consumable.
type StockItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Kind     string  `json:"kind"`
}

// IStockGateway abstracts the external stock system consumed by the
// reservation protocol and by item snapshotting.
//
// The update call is a plain write-back of a new absolute quantity; the stock
// system offers no reserve/confirm primitive, which is why approval runs the
// two-phase check-then-commit exchange on top of these three calls.
type IStockGateway interface {
	CheckAvailability(ctx context.Context, stockItemID string, quantity int) (bool, error)
	GetStockItem(ctx context.Context, stockItemID string) (StockItem, error)
	UpdateStockQuantity(ctx context.Context, stockItemID string, newQuantity int) error
}
