package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// ShopInfo letterhead details printed on invoices.
type ShopInfo struct {
	Name    string
	Phone   string
	Address string
}

// SaleItemForPDF one printable invoice line with its names resolved.
type SaleItemForPDF struct {
	TagNumber int64
	ItemName  string
	Pieces    int
	Weight    decimal.Decimal
	Price     decimal.Decimal
}

// InvoicePDFGenerator renders a settled sale as a printable invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, sale *entity.Sale, shop ShopInfo, items []SaleItemForPDF) ([]byte, error)
}

// InvoicePDFUseCase assembles the data an invoice PDF needs and delegates
// rendering to the generator.
type InvoicePDFUseCase struct {
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
	itemRepo      repository.ItemRepository
	generator     InvoicePDFGenerator
	shop          ShopInfo
}

// NewInvoicePDFUseCase builds the use case.
func NewInvoicePDFUseCase(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
	itemRepo repository.ItemRepository,
	generator InvoicePDFGenerator,
	shop ShopInfo,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
		itemRepo:      itemRepo,
		generator:     generator,
		shop:          shop,
	}
}

// Generate renders the invoice for a sale. Returns (nil, nil) when the sale
// does not exist.
func (uc *InvoicePDFUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	lines, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = lines

	itemNames := map[string]string{}
	items := make([]SaleItemForPDF, 0, len(lines))
	for _, line := range lines {
		pdfLine := SaleItemForPDF{Price: line.Price}
		unit, err := uc.inventoryRepo.GetByID(line.InventoryID)
		if err != nil {
			return nil, err
		}
		if unit != nil {
			pdfLine.TagNumber = unit.TagNumber
			pdfLine.Pieces = unit.NoOfPieces
			pdfLine.Weight = unit.TotalWeight
			name, ok := itemNames[unit.ItemID]
			if !ok {
				if item, err := uc.itemRepo.GetByID(unit.ItemID); err == nil && item != nil {
					name = item.Name
				}
				itemNames[unit.ItemID] = name
			}
			pdfLine.ItemName = name
		}
		items = append(items, pdfLine)
	}
	return uc.generator.GenerateInvoicePDF(ctx, sale, uc.shop, items)
}
