package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, tag_number, item_id, COALESCE(description, ''), no_of_pieces, karat,
	net_weight, wastage_percentage, polish_weight, stone_weight, ratti, total_weight, pure_gold,
	status, images, user_id, created_at, updated_at`

// InventoryRepo InventoryRepository port implementation over PostgreSQL (usable with pool or tx).
// Tag numbers come from the inventory_tag_seq sequence so they are unique and
// never reused, even across deletes.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter. Pass pool or tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persists a new unit and fills in its sequence-assigned tag number.
func (r *InventoryRepo) Create(unit *entity.InventoryUnit) error {
	images, err := marshalImages(unit.Images)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO inventory (id, tag_number, item_id, description, no_of_pieces, karat,
			net_weight, wastage_percentage, polish_weight, stone_weight, ratti, total_weight, pure_gold,
			status, images, user_id, created_at, updated_at)
		VALUES ($1, nextval('inventory_tag_seq'), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING tag_number`
	err = r.q.QueryRow(context.Background(), query,
		unit.ID, unit.ItemID, nullIfEmpty(unit.Description), unit.NoOfPieces, unit.Karat,
		unit.NetWeight, unit.WastagePct, unit.PolishWeight, unit.StoneWeight, unit.Ratti,
		unit.TotalWeight, unit.PureGold, unit.Status, images, unit.UserID, unit.CreatedAt, unit.UpdatedAt,
	).Scan(&unit.TagNumber)
	if err != nil {
		return fmt.Errorf("insert inventory unit: %w", err)
	}
	return nil
}

// GetByID fetches a unit by ID.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryUnit, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	return r.getOne(query, id)
}

// GetByTagNumber fetches a unit by its printed tag number.
func (r *InventoryRepo) GetByTagNumber(tagNumber int64) (*entity.InventoryUnit, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE tag_number = $1`
	return r.getOne(query, tagNumber)
}

// GetForUpdate row-locks the unit (SELECT FOR UPDATE). Meaningful only inside a
// transaction; sale settlement uses it to serialize concurrent sales.
func (r *InventoryRepo) GetForUpdate(id string) (*entity.InventoryUnit, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *InventoryRepo) getOne(query string, arg any) (*entity.InventoryUnit, error) {
	var u entity.InventoryUnit
	var images []byte
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.TagNumber, &u.ItemID, &u.Description, &u.NoOfPieces, &u.Karat,
		&u.NetWeight, &u.WastagePct, &u.PolishWeight, &u.StoneWeight, &u.Ratti,
		&u.TotalWeight, &u.PureGold, &u.Status, &images, &u.UserID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory unit: %w", err)
	}
	if err := unmarshalImages(images, &u.Images); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns units matching the filter, newest first.
func (r *InventoryRepo) List(filter repository.InventoryFilter) ([]*entity.InventoryUnit, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + inventoryColumns + ` FROM inventory WHERE 1=1`)
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Status != "" {
		sb.WriteString(" AND status = " + arg(filter.Status))
	}
	if filter.ItemID != "" {
		sb.WriteString(" AND item_id = " + arg(filter.ItemID))
	}
	sb.WriteString(" ORDER BY tag_number DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(filter.Limit))
	}
	if filter.Offset > 0 {
		sb.WriteString(" OFFSET " + arg(filter.Offset))
	}

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var units []*entity.InventoryUnit
	for rows.Next() {
		var u entity.InventoryUnit
		var images []byte
		if err := rows.Scan(
			&u.ID, &u.TagNumber, &u.ItemID, &u.Description, &u.NoOfPieces, &u.Karat,
			&u.NetWeight, &u.WastagePct, &u.PolishWeight, &u.StoneWeight, &u.Ratti,
			&u.TotalWeight, &u.PureGold, &u.Status, &images, &u.UserID, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory unit: %w", err)
		}
		if err := unmarshalImages(images, &u.Images); err != nil {
			return nil, err
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}

// Update replaces the editable fields. Status and tag_number are deliberately
// absent from the SET list; they only change through Create and MarkSold.
func (r *InventoryRepo) Update(unit *entity.InventoryUnit) error {
	images, err := marshalImages(unit.Images)
	if err != nil {
		return err
	}
	query := `
		UPDATE inventory SET item_id = $2, description = $3, no_of_pieces = $4, karat = $5,
			net_weight = $6, wastage_percentage = $7, polish_weight = $8, stone_weight = $9, ratti = $10,
			total_weight = $11, pure_gold = $12, images = $13, updated_at = $14
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		unit.ID, unit.ItemID, nullIfEmpty(unit.Description), unit.NoOfPieces, unit.Karat,
		unit.NetWeight, unit.WastagePct, unit.PolishWeight, unit.StoneWeight, unit.Ratti,
		unit.TotalWeight, unit.PureGold, images, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory unit: %w", err)
	}
	return nil
}

// MarkSold flips status available -> sold. The WHERE guard makes the flip
// idempotent-safe: a unit already sold is reported as a conflict.
func (r *InventoryRepo) MarkSold(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`,
		id, entity.StatusSold, entity.StatusAvailable,
	)
	if err != nil {
		return fmt.Errorf("mark inventory sold: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

func marshalImages(images []entity.ImageRef) ([]byte, error) {
	if images == nil {
		images = []entity.ImageRef{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	return b, nil
}

func unmarshalImages(b []byte, out *[]entity.ImageRef) error {
	if len(b) == 0 {
		*out = []entity.ImageRef{}
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal images: %w", err)
	}
	return nil
}
