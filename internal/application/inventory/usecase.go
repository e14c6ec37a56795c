// Package inventory implements the lifecycle of tagged inventory units:
// creation with sequence-assigned tag numbers, valuation-derived fields,
// edits while available and the sold terminal state.
package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
	"github.com/zewarhq/zewar-api/internal/domain/valuation"
)

const defaultKarat = 22

// UseCase inventory unit use cases: create, read, update, image upload.
// Selling happens in the sales package; nothing here ever writes status.
type UseCase struct {
	repo     repository.InventoryRepository
	itemRepo repository.ItemRepository
	blobs    BlobStore
	tagPDF   TagPDFGenerator
}

// NewUseCase builds the use case. blobs and tagPDF may be nil when image
// upload or tag printing is disabled.
func NewUseCase(repo repository.InventoryRepository, itemRepo repository.ItemRepository, blobs BlobStore, tagPDF TagPDFGenerator) *UseCase {
	return &UseCase{repo: repo, itemRepo: itemRepo, blobs: blobs, tagPDF: tagPDF}
}

// Create registers a new unit. The item must exist and net weight must be
// positive; nothing is persisted otherwise. Derived fields are recomputed
// here and the tag number comes from the repository's sequence.
func (uc *UseCase) Create(userID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrValidation
	}
	if err := validateMeasurements(in.NetWeight, in.WastagePct, in.PolishWeight, in.StoneWeight, in.Ratti); err != nil {
		return nil, err
	}
	karat, err := resolveKarat(in.Karat)
	if err != nil {
		return nil, err
	}
	pieces, err := resolvePieces(in.Pieces())
	if err != nil {
		return nil, err
	}
	now := time.Now()
	unit := &entity.InventoryUnit{
		ID:           uuid.New().String(),
		ItemID:       in.ItemID,
		Description:  in.Description,
		NoOfPieces:   pieces,
		Karat:        karat,
		NetWeight:    in.NetWeight,
		WastagePct:   in.WastagePct,
		PolishWeight: in.PolishWeight,
		StoneWeight:  in.StoneWeight,
		Ratti:        in.Ratti,
		Status:       entity.StatusAvailable,
		Images:       in.Images,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	derive(unit)
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return uc.toResponse(unit, item.Name), nil
}

// GetByID fetches a unit by ID.
func (uc *UseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return uc.toResponse(unit, uc.itemName(unit.ItemID)), nil
}

// GetByTagNumber fetches a unit by its printed tag number.
func (uc *UseCase) GetByTagNumber(tagNumber int64) (*dto.InventoryResponse, error) {
	unit, err := uc.repo.GetByTagNumber(tagNumber)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return uc.toResponse(unit, uc.itemName(unit.ItemID)), nil
}

// List returns units matching the filter, newest first.
func (uc *UseCase) List(filter repository.InventoryFilter) (*dto.InventoryListResponse, error) {
	if filter.Status != "" && filter.Status != entity.StatusAvailable && filter.Status != entity.StatusSold {
		return nil, domain.ErrValidation
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	units := make([]dto.InventoryResponse, 0, len(list))
	for _, u := range list {
		name, ok := names[u.ItemID]
		if !ok {
			name = uc.itemName(u.ItemID)
			names[u.ItemID] = name
		}
		units = append(units, *uc.toResponse(u, name))
	}
	return &dto.InventoryListResponse{
		Inventory: units,
		Page:      dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Update replaces the editable fields of an available unit and recomputes the
// derived values. Sold units are frozen: editing one returns ErrInvalidState.
// Status and tag number are never taken from the request.
func (uc *UseCase) Update(id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	if !unit.Available() {
		return nil, domain.ErrInvalidState
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrValidation
	}
	if err := validateMeasurements(in.NetWeight, in.WastagePct, in.PolishWeight, in.StoneWeight, in.Ratti); err != nil {
		return nil, err
	}
	karat, err := resolveKarat(in.Karat)
	if err != nil {
		return nil, err
	}
	pieces, err := resolvePieces(in.Pieces())
	if err != nil {
		return nil, err
	}
	unit.ItemID = in.ItemID
	unit.Description = in.Description
	unit.NoOfPieces = pieces
	unit.Karat = karat
	unit.NetWeight = in.NetWeight
	unit.WastagePct = in.WastagePct
	unit.PolishWeight = in.PolishWeight
	unit.StoneWeight = in.StoneWeight
	unit.Ratti = in.Ratti
	unit.Images = in.Images
	unit.UpdatedAt = time.Now()
	derive(unit)
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return uc.toResponse(unit, item.Name), nil
}

// UploadImage stores one image and returns its reference for inclusion in a
// later create or update request.
func (uc *UseCase) UploadImage(ctx context.Context, name, contentType string, size int64, r io.Reader) (*dto.UploadImageResponse, error) {
	if uc.blobs == nil {
		return nil, fmt.Errorf("image storage not configured")
	}
	objectName := fmt.Sprintf("inventory/%s-%s", uuid.New().String(), name)
	url, err := uc.blobs.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return nil, err
	}
	return &dto.UploadImageResponse{URL: url, Name: name, Type: contentType, Size: size}, nil
}

// TagPDF renders the printable tag label of a unit. Returns (nil, nil) when
// the unit does not exist.
func (uc *UseCase) TagPDF(ctx context.Context, id string) ([]byte, error) {
	if uc.tagPDF == nil {
		return nil, fmt.Errorf("tag printing not configured")
	}
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return uc.tagPDF.GenerateTagPDF(ctx, unit, uc.itemName(unit.ItemID))
}

// derive recomputes TotalWeight and PureGold from the physical inputs,
// discarding whatever the fields held before.
func derive(u *entity.InventoryUnit) {
	u.TotalWeight = valuation.TotalWeight(valuation.Measurements{
		NetWeight:    u.NetWeight,
		WastagePct:   u.WastagePct,
		PolishWeight: u.PolishWeight,
		StoneWeight:  u.StoneWeight,
	})
	u.PureGold = valuation.PureGold(u.NetWeight, u.Ratti)
}

// resolvePieces rejects piece counts below 1. The dto fallback already turns
// an absent count into 1, so anything lower came in explicitly.
func resolvePieces(n int) (int, error) {
	if n < 1 {
		return 0, domain.ErrValidation
	}
	return n, nil
}

// resolveKarat defaults an absent karat and bounds it to the 1..24 scale.
func resolveKarat(k int) (int, error) {
	if k == 0 {
		return defaultKarat, nil
	}
	if k < 1 || k > 24 {
		return 0, domain.ErrValidation
	}
	return k, nil
}

func validateMeasurements(net, wastage, polish, stone, ratti decimal.Decimal) error {
	if !net.GreaterThan(decimal.Zero) {
		return domain.ErrValidation
	}
	if wastage.IsNegative() || polish.IsNegative() || stone.IsNegative() || ratti.IsNegative() {
		return domain.ErrValidation
	}
	return nil
}

func (uc *UseCase) itemName(itemID string) string {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil || item == nil {
		return ""
	}
	return item.Name
}

func (uc *UseCase) toResponse(u *entity.InventoryUnit, itemName string) *dto.InventoryResponse {
	images := u.Images
	if images == nil {
		images = []entity.ImageRef{}
	}
	return &dto.InventoryResponse{
		ID:           u.ID,
		TagNumber:    u.TagNumber,
		ItemID:       u.ItemID,
		ItemName:     itemName,
		Description:  u.Description,
		NoOfPieces:   u.NoOfPieces,
		Karat:        u.Karat,
		NetWeight:    u.NetWeight,
		WastagePct:   u.WastagePct,
		PolishWeight: u.PolishWeight,
		StoneWeight:  u.StoneWeight,
		Ratti:        u.Ratti,
		TotalWeight:  u.TotalWeight,
		PureGold:     u.PureGold,
		Status:       u.Status,
		Images:       images,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
