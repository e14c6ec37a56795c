package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo SaleRepository port implementation over PostgreSQL (usable with pool or tx).
// Invoice numbers come from the sale_invoice_seq sequence, formatted INV-00001.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the adapter. Pass pool or tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persists the sale header and fills in its generated invoice number.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, invoice_number, customer_name, customer_phone, notes, total_amount, user_id, created_at)
		VALUES ($1, 'INV-' || lpad(nextval('sale_invoice_seq')::text, 5, '0'), $2, $3, $4, $5, $6, $7)
		RETURNING invoice_number`
	err := r.q.QueryRow(context.Background(), query,
		sale.ID, sale.CustomerName, nullIfEmpty(sale.CustomerPhone), nullIfEmpty(sale.Notes),
		sale.TotalAmount, sale.UserID, sale.CreatedAt,
	).Scan(&sale.InvoiceNumber)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persists one line item. The unique constraint on inventory_id
// guarantees a unit is never sold twice.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, inventory_id, price)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.SaleID, item.InventoryID, item.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID fetches a sale header (without line items; see GetItemsBySaleID).
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, invoice_number, customer_name, COALESCE(customer_phone, ''), COALESCE(notes, ''),
			total_amount, user_id, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.InvoiceNumber, &s.CustomerName, &s.CustomerPhone, &s.Notes,
		&s.TotalAmount, &s.UserID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySaleID returns the line items of a sale.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, inventory_id, price
		FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.InventoryID, &it.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List returns sale headers matching the filter, newest first, line items included.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, invoice_number, customer_name, COALESCE(customer_phone, ''), COALESCE(notes, ''),
			total_amount, user_id, created_at
		FROM sales WHERE 1=1`)
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		sb.WriteString(" AND (invoice_number ILIKE " + p + " OR customer_name ILIKE " + p + ")")
	}
	if !filter.From.IsZero() {
		sb.WriteString(" AND created_at >= " + arg(filter.From))
	}
	if !filter.To.IsZero() {
		sb.WriteString(" AND created_at <= " + arg(filter.To))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(filter.Limit))
	}
	if filter.Offset > 0 {
		sb.WriteString(" OFFSET " + arg(filter.Offset))
	}

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.InvoiceNumber, &s.CustomerName, &s.CustomerPhone, &s.Notes,
			&s.TotalAmount, &s.UserID, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range sales {
		items, err := r.GetItemsBySaleID(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return sales, nil
}
