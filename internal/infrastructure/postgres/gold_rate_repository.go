package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

var _ repository.GoldRateRepository = (*GoldRateRepo)(nil)

// GoldRateRepo GoldRateRepository port implementation over PostgreSQL. The
// series is append-only: no update or delete path exists.
type GoldRateRepo struct {
	q Querier
}

// NewGoldRateRepository builds the adapter. Pass pool or tx (Querier).
func NewGoldRateRepository(q Querier) *GoldRateRepo {
	return &GoldRateRepo{q: q}
}

// Create appends a rate snapshot.
func (r *GoldRateRepo) Create(rate *entity.GoldRate) error {
	query := `
		INSERT INTO gold_rates (id, rate_24k, user_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, rate.ID, rate.Rate24K, rate.UserID, rate.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gold rate: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot, or nil when none exists.
func (r *GoldRateRepo) Latest() (*entity.GoldRate, error) {
	query := `
		SELECT id, rate_24k, user_id, created_at
		FROM gold_rates ORDER BY created_at DESC LIMIT 1`
	var g entity.GoldRate
	err := r.q.QueryRow(context.Background(), query).Scan(&g.ID, &g.Rate24K, &g.UserID, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest gold rate: %w", err)
	}
	return &g, nil
}

// List returns the most recent snapshots, newest first.
func (r *GoldRateRepo) List(limit int) ([]*entity.GoldRate, error) {
	query := `
		SELECT id, rate_24k, user_id, created_at
		FROM gold_rates ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list gold rates: %w", err)
	}
	defer rows.Close()

	var rates []*entity.GoldRate
	for rows.Next() {
		var g entity.GoldRate
		if err := rows.Scan(&g.ID, &g.Rate24K, &g.UserID, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gold rate: %w", err)
		}
		rates = append(rates, &g)
	}
	return rates, rows.Err()
}
