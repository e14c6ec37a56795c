package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/application/inventory"
	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// fakeInventoryRepo in-memory InventoryRepository with a sequential tag counter.
type fakeInventoryRepo struct {
	units   map[string]*entity.InventoryUnit
	nextTag int64
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{units: map[string]*entity.InventoryUnit{}, nextTag: 1}
}

func (f *fakeInventoryRepo) Create(unit *entity.InventoryUnit) error {
	unit.TagNumber = f.nextTag
	f.nextTag++
	cp := *unit
	f.units[unit.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) GetByID(id string) (*entity.InventoryUnit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeInventoryRepo) GetByTagNumber(tagNumber int64) (*entity.InventoryUnit, error) {
	for _, u := range f.units {
		if u.TagNumber == tagNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) List(filter repository.InventoryFilter) ([]*entity.InventoryUnit, error) {
	var out []*entity.InventoryUnit
	for _, u := range f.units {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeInventoryRepo) Update(unit *entity.InventoryUnit) error {
	stored := f.units[unit.ID]
	// status and tag number are not replaced here, mirroring the SQL update
	tag, status := stored.TagNumber, stored.Status
	cp := *unit
	cp.TagNumber = tag
	cp.Status = status
	f.units[unit.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) GetForUpdate(id string) (*entity.InventoryUnit, error) {
	return f.GetByID(id)
}

func (f *fakeInventoryRepo) MarkSold(id string) error {
	f.units[id].Status = entity.StatusSold
	return nil
}

// fakeItemRepo in-memory ItemRepository.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	f := &fakeItemRepo{items: map[string]*entity.Item{}}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

func (f *fakeItemRepo) Create(item *entity.Item) error { f.items[item.ID] = item; return nil }
func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return it, nil
}
func (f *fakeItemRepo) List() ([]*entity.Item, error)  { return nil, nil }
func (f *fakeItemRepo) Update(item *entity.Item) error { return nil }
func (f *fakeItemRepo) Delete(id string) error         { return nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testItem() *entity.Item {
	now := time.Now()
	return &entity.Item{ID: "item-1", Name: "Ring", Abbreviation: "RNG", CreatedAt: now, UpdatedAt: now}
}

func createRequest() dto.CreateInventoryRequest {
	return dto.CreateInventoryRequest{
		ItemID:       "item-1",
		Description:  "gold ring",
		NetWeight:    dec("10"),
		WastagePct:   dec("5"),
		PolishWeight: dec("0.2"),
		StoneWeight:  dec("0.1"),
		Ratti:        dec("6"),
	}
}

func TestCreate_DerivesValuesAndDefaults(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	out, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.TagNumber)
	assert.Equal(t, entity.StatusAvailable, out.Status)
	assert.Equal(t, 22, out.Karat, "karat defaults to 22")
	assert.Equal(t, 1, out.NoOfPieces, "pieces defaults to 1")
	assert.True(t, out.TotalWeight.Equal(dec("10.8")), "got %s", out.TotalWeight)
	assert.True(t, out.PureGold.Equal(dec("9.375")), "got %s", out.PureGold)
}

func TestCreate_SequentialTagNumbers(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	first, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)
	second, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	assert.Equal(t, first.TagNumber+1, second.TagNumber)
}

func TestCreate_LegacyQuantityFallback(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	three, five := 3, 5

	in := createRequest()
	in.Quantity = &five
	out, err := uc.Create("user-1", in)
	require.NoError(t, err)
	assert.Equal(t, 5, out.NoOfPieces, "quantity used when no_of_pieces absent")

	in = createRequest()
	in.NoOfPieces = &three
	in.Quantity = &five
	out, err = uc.Create("user-1", in)
	require.NoError(t, err)
	assert.Equal(t, 3, out.NoOfPieces, "no_of_pieces wins over quantity")
}

func TestCreate_RejectsUnknownItemWithoutPersisting(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(), nil, nil)

	in := createRequest()
	_, err := uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.units, "nothing persisted on validation failure")
}

func TestCreate_RejectsNonPositiveNetWeight(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	in := createRequest()
	in.NetWeight = decimal.Zero
	_, err := uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in.NetWeight = dec("-1")
	_, err = uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.units)
}

func TestCreate_RejectsNonPositivePieceCounts(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	zero, negative := 0, -5

	in := createRequest()
	in.NoOfPieces = &negative
	_, err := uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation, "negative no_of_pieces rejected")

	in = createRequest()
	in.NoOfPieces = &zero
	_, err = uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation, "zero no_of_pieces rejected")

	in = createRequest()
	in.Quantity = &negative
	_, err = uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation, "legacy quantity path checked too")
	assert.Empty(t, repo.units, "nothing persisted on validation failure")
}

func TestUpdate_RejectsNonPositivePieceCounts(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	zero := 0
	up := dto.UpdateInventoryRequest{ItemID: "item-1", NetWeight: dec("10"), NoOfPieces: &zero}
	_, err = uc.Update(created.ID, up)
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, _ := repo.GetByID(created.ID)
	assert.Equal(t, 1, stored.NoOfPieces, "stored count untouched")
}

func TestCreate_RejectsKaratOutOfRange(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	in := createRequest()
	in.Karat = 25
	_, err := uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in.Karat = -3
	_, err = uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.units)
}

func TestUpdate_RecomputesDerivedValues(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	up := dto.UpdateInventoryRequest{
		ItemID:     "item-1",
		NetWeight:  dec("20"),
		WastagePct: dec("10"),
		Ratti:      dec("12"),
	}
	out, err := uc.Update(created.ID, up)
	require.NoError(t, err)

	assert.True(t, out.TotalWeight.Equal(dec("22")), "got %s", out.TotalWeight)
	assert.True(t, out.PureGold.Equal(dec("17.5")), "got %s", out.PureGold)
	assert.Equal(t, created.TagNumber, out.TagNumber, "tag number never changes")
	assert.Equal(t, entity.StatusAvailable, out.Status)
}

func TestUpdate_SoldUnitIsFrozen(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)
	require.NoError(t, repo.MarkSold(created.ID))

	up := dto.UpdateInventoryRequest{ItemID: "item-1", NetWeight: dec("20")}
	_, err = uc.Update(created.ID, up)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	stored, _ := repo.GetByID(created.ID)
	assert.True(t, stored.NetWeight.Equal(dec("10")), "sold unit left untouched")
}

func TestUpdate_UnknownIDReturnsNil(t *testing.T) {
	uc := inventory.NewUseCase(newFakeInventoryRepo(), newFakeItemRepo(testItem()), nil, nil)

	out, err := uc.Update("missing", dto.UpdateInventoryRequest{ItemID: "item-1", NetWeight: dec("1")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	uc := inventory.NewUseCase(newFakeInventoryRepo(), newFakeItemRepo(testItem()), nil, nil)

	_, err := uc.List(repository.InventoryFilter{Status: "reserved"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetByTagNumber(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := inventory.NewUseCase(repo, newFakeItemRepo(testItem()), nil, nil)

	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	out, err := uc.GetByTagNumber(created.TagNumber)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "Ring", out.ItemName)

	missing, err := uc.GetByTagNumber(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
