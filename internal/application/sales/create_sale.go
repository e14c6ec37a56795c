// Package sales implements sale settlement: the only path by which inventory
// units leave the available state. A sale either settles completely or not at
// all; there is no partial fulfillment.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
	"github.com/zewarhq/zewar-api/internal/domain/valuation"
)

// UseCase sale use cases: create (settle), read, list.
type UseCase struct {
	txRunner      TxRunner
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
	itemRepo      repository.ItemRepository
}

// NewUseCase builds the use case. saleRepo and inventoryRepo serve reads
// outside transactions; writes go through txRunner-bound repositories only.
// itemRepo resolves catalog names on responses and may be nil in tests.
func NewUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, inventoryRepo repository.InventoryRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo, inventoryRepo: inventoryRepo, itemRepo: itemRepo}
}

// Create settles a sale. Inside one transaction every referenced unit is
// row-locked, verified available and marked sold, then the header and line
// items are persisted with the sequence-assigned invoice number. Any unit
// already sold (or missing, or listed twice) aborts the whole sale with
// ErrConflict and no unit changes state.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerName == "" || len(in.Items) == 0 {
		return nil, domain.ErrValidation
	}
	seen := map[string]bool{}
	prices := make([]decimal.Decimal, 0, len(in.Items))
	for _, line := range in.Items {
		if line.InventoryID == "" || !line.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrValidation
		}
		if seen[line.InventoryID] {
			return nil, domain.ErrConflict
		}
		seen[line.InventoryID] = true
		prices = append(prices, line.Price)
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Notes:         in.Notes,
		TotalAmount:   valuation.SaleTotal(prices),
		UserID:        userID,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Lock every unit first so two concurrent sales of the same unit
		// serialize; the loser sees it sold and aborts.
		for _, line := range in.Items {
			unit, err := inventoryRepo.GetForUpdate(line.InventoryID)
			if err != nil {
				return err
			}
			if unit == nil {
				return domain.ErrConflict
			}
			if !unit.Available() {
				return domain.ErrConflict
			}
		}
		for _, line := range in.Items {
			if err := inventoryRepo.MarkSold(line.InventoryID); err != nil {
				return err
			}
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range in.Items {
			item := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				InventoryID: line.InventoryID,
				Price:       line.Price,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			sale.Items = append(sale.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(sale), nil
}

// GetByID fetches a sale with its line items.
func (uc *UseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	if sale.Items == nil {
		items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}
	return uc.toResponse(sale), nil
}

// List returns sales matching the filter, newest first, with the revenue total
// over the returned page.
func (uc *UseCase) List(filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	sales := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		revenue = revenue.Add(s.TotalAmount)
		sales = append(sales, *uc.toResponse(s))
	}
	return &dto.SaleListResponse{
		Sales:        sales,
		Page:         dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
		TotalRevenue: revenue,
	}, nil
}

func (uc *UseCase) itemName(itemID string) string {
	if uc.itemRepo == nil || itemID == "" {
		return ""
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil || item == nil {
		return ""
	}
	return item.Name
}

func (uc *UseCase) toResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		line := dto.SaleItemResponse{
			ID:          it.ID,
			InventoryID: it.InventoryID,
			Price:       it.Price,
		}
		if unit, err := uc.inventoryRepo.GetByID(it.InventoryID); err == nil && unit != nil {
			line.TagNumber = unit.TagNumber
			line.ItemName = uc.itemName(unit.ItemID)
		}
		items = append(items, line)
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Notes:         s.Notes,
		TotalAmount:   s.TotalAmount,
		CreatedAt:     s.CreatedAt,
		Items:         items,
	}
}
