package repository

import "github.com/zewarhq/zewar-api/internal/domain/entity"

// GoldRateRepository is the persistence port for the append-only 24k rate series.
type GoldRateRepository interface {
	Create(rate *entity.GoldRate) error
	Latest() (*entity.GoldRate, error)
	List(limit int) ([]*entity.GoldRate, error)
}
