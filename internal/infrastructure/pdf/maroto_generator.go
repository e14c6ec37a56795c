// Package pdf renders printable documents with Maroto v2: the sale invoice
// handed to the customer and the small tag label attached to each unit.
//
// Invoice layout (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shop name + contact  │  Invoice number + date      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: name + phone                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Tag | Item | Pcs | Weight | Price                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  NOTES                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zewarhq/zewar-api/internal/application/inventory"
	"github.com/zewarhq/zewar-api/internal/application/sales"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 128, Green: 94, Blue: 14}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var moneyPrinter = message.NewPrinter(language.English)

var _ sales.InvoicePDFGenerator = (*MarotoGenerator)(nil)
var _ inventory.TagPDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implements both PDF ports using Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator builds the generator.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// GenerateInvoicePDF renders a settled sale and returns the PDF bytes.
func (g *MarotoGenerator) GenerateInvoicePDF(
	_ context.Context,
	sale *entity.Sale,
	shop sales.ShopInfo,
	items []sales.SaleItemForPDF,
) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+sale.InvoiceNumber, true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(invoiceHeaderRow(sale, shop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(invoiceTableHeaderRow())
	for _, r := range invoiceTableRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale.TotalAmount))

	if sale.Notes != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Notes: "+sale.Notes, props.Text{Size: 8, Color: colorGray, Top: 3}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateTagPDF renders the tag label of one unit: tag number, item, weights
// and a QR of the tag number for scanning at the counter.
func (g *MarotoGenerator) GenerateTagPDF(_ context.Context, unit *entity.InventoryUnit, itemName string) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithDimensions(80, 50).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		Build()

	m := maroto.New(cfg)

	tag := fmt.Sprintf("%d", unit.TagNumber)
	m.AddRows(row.New(24).Add(
		col.New(4).Add(code.NewQr(tag, props.Rect{Percent: 95})),
		col.New(8).Add(
			text.New("TAG "+tag, props.Text{Style: fontstyle.Bold, Size: 12, Top: 1}),
			text.New(itemName, props.Text{Size: 9, Top: 8}),
			text.New(fmt.Sprintf("%dK  ·  %d pcs", unit.Karat, unit.NoOfPieces), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
	))
	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("Net "+unit.NetWeight.StringFixed(3)+" g", props.Text{Size: 8, Top: 1}),
		text.New("Total "+unit.TotalWeight.StringFixed(3)+" g", props.Text{Size: 8, Top: 5}),
		text.New("Pure "+unit.PureGold.StringFixed(3)+" g", props.Text{Size: 8, Top: 9}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate tag: %w", err)
	}
	return doc.GetBytes(), nil
}

// invoiceHeaderRow: shop name + contact (left), invoice number + date (right).
func invoiceHeaderRow(sale *entity.Sale, shop sales.ShopInfo) core.Row {
	date := sale.CreatedAt.Format("02/01/2006")
	contact := shop.Address
	if shop.Phone != "" {
		if contact != "" {
			contact += "   |   "
		}
		contact += "Tel: " + shop.Phone
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(contact, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SALE INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: buyer details.
func customerRow(sale *entity.Sale) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s",
				sale.CustomerName,
				nonEmpty(sale.CustomerPhone, "—"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

func invoiceTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tag", 2, align.Center),
		h("Item", 4, align.Left),
		h("Pcs", 1, align.Center),
		h("Weight (g)", 2, align.Right),
		h("Price", 3, align.Right),
	)
}

func invoiceTableRows(items []sales.SaleItemForPDF) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", it.TagNumber),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Pieces),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				it.Weight.StringFixed(3),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney renders an amount with thousands separators, two decimals.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}
