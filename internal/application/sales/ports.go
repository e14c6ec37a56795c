package sales

import (
	"context"

	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// TxRunner executes a function inside one DB transaction, passing repositories
// bound to that transaction. Settlement is atomic: any error from fn rolls the
// whole sale back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
