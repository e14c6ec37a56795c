package sales_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/application/sales"
	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// fakeStore backs both repositories and the tx runner. Run snapshots state
// before fn and restores it when fn fails, imitating a rollback.
type fakeStore struct {
	units       map[string]*entity.InventoryUnit
	sales       map[string]*entity.Sale
	saleItems   []*entity.SaleItem
	nextInvoice int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		units:       map[string]*entity.InventoryUnit{},
		sales:       map[string]*entity.Sale{},
		nextInvoice: 1,
	}
}

func (s *fakeStore) addUnit(id string, status string) {
	s.units[id] = &entity.InventoryUnit{
		ID:     id,
		ItemID: "item-1",
		Status: status,
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	cp.nextInvoice = s.nextInvoice
	for id, u := range s.units {
		uu := *u
		cp.units[id] = &uu
	}
	for id, sale := range s.sales {
		ss := *sale
		cp.sales[id] = &ss
	}
	cp.saleItems = append(cp.saleItems, s.saleItems...)
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.units = from.units
	s.sales = from.sales
	s.saleItems = from.saleItems
	s.nextInvoice = from.nextInvoice
}

// inventory repository

type fakeInventoryRepo struct{ s *fakeStore }

func (r *fakeInventoryRepo) Create(*entity.InventoryUnit) error { return nil }
func (r *fakeInventoryRepo) GetByID(id string) (*entity.InventoryUnit, error) {
	u, ok := r.s.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeInventoryRepo) GetByTagNumber(int64) (*entity.InventoryUnit, error) { return nil, nil }
func (r *fakeInventoryRepo) List(repository.InventoryFilter) ([]*entity.InventoryUnit, error) {
	return nil, nil
}
func (r *fakeInventoryRepo) Update(*entity.InventoryUnit) error { return nil }
func (r *fakeInventoryRepo) GetForUpdate(id string) (*entity.InventoryUnit, error) {
	return r.GetByID(id)
}
func (r *fakeInventoryRepo) MarkSold(id string) error {
	r.s.units[id].Status = entity.StatusSold
	return nil
}

// sale repository

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	sale.InvoiceNumber = fmt.Sprintf("INV-%05d", r.s.nextInvoice)
	r.s.nextInvoice++
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}
func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	cp := *item
	r.s.saleItems = append(r.s.saleItems, &cp)
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}
func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.s.saleItems {
		if it.SaleID == saleID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, error) { return nil, nil }

// tx runner

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	before := t.s.snapshot()
	if err := fn(&fakeInventoryRepo{s: t.s}, &fakeSaleRepo{s: t.s}); err != nil {
		t.s.restore(before)
		return err
	}
	return nil
}

func newUseCase(s *fakeStore) *sales.UseCase {
	return sales.NewUseCase(&fakeTxRunner{s: s}, &fakeSaleRepo{s: s}, &fakeInventoryRepo{s: s}, nil)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCreate_SettlesAndMarksSold(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", entity.StatusAvailable)
	store.addUnit("u2", entity.StatusAvailable)
	uc := newUseCase(store)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items: []dto.SaleLineRequest{
			{InventoryID: "u1", Price: dec("100")},
			{InventoryID: "u2", Price: dec("250.50")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-00001", out.InvoiceNumber)
	assert.True(t, out.TotalAmount.Equal(dec("350.50")), "got %s", out.TotalAmount)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, entity.StatusSold, store.units["u1"].Status)
	assert.Equal(t, entity.StatusSold, store.units["u2"].Status)
}

func TestCreate_SoldUnitAbortsWholeSale(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", entity.StatusAvailable)
	store.addUnit("u2", entity.StatusSold)
	uc := newUseCase(store)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items: []dto.SaleLineRequest{
			{InventoryID: "u1", Price: dec("100")},
			{InventoryID: "u2", Price: dec("200")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// nothing changed: u1 stays available, no sale or line item persisted
	assert.Equal(t, entity.StatusAvailable, store.units["u1"].Status)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.saleItems)
}

func TestCreate_MissingUnitAbortsWholeSale(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", entity.StatusAvailable)
	uc := newUseCase(store)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items: []dto.SaleLineRequest{
			{InventoryID: "u1", Price: dec("100")},
			{InventoryID: "ghost", Price: dec("50")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.StatusAvailable, store.units["u1"].Status)
	assert.Empty(t, store.sales)
}

func TestCreate_DuplicateUnitRejected(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", entity.StatusAvailable)
	uc := newUseCase(store)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items: []dto.SaleLineRequest{
			{InventoryID: "u1", Price: dec("100")},
			{InventoryID: "u1", Price: dec("100")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.StatusAvailable, store.units["u1"].Status)
}

func TestCreate_ValidationErrors(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", entity.StatusAvailable)
	uc := newUseCase(store)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "",
		Items:        []dto.SaleLineRequest{{InventoryID: "u1", Price: dec("100")}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "customer name required")

	_, err = uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "at least one line required")

	_, err = uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items:        []dto.SaleLineRequest{{InventoryID: "u1", Price: dec("-1")}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "negative price rejected")

	_, err = uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items:        []dto.SaleLineRequest{{InventoryID: "u1", Price: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "zero price rejected")

	// nothing reached the store in any of the failed attempts
	assert.Equal(t, entity.StatusAvailable, store.units["u1"].Status)
	assert.Empty(t, store.sales)
}

func TestCreate_SequentialInvoiceNumbers(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", entity.StatusAvailable)
	store.addUnit("u2", entity.StatusAvailable)
	uc := newUseCase(store)

	first, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items:        []dto.SaleLineRequest{{InventoryID: "u1", Price: dec("10")}},
	})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Noor",
		Items:        []dto.SaleLineRequest{{InventoryID: "u2", Price: dec("20")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-00001", first.InvoiceNumber)
	assert.Equal(t, "INV-00002", second.InvoiceNumber)
}

func TestGetByID_LoadsLineItems(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", entity.StatusAvailable)
	uc := newUseCase(store)

	created, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerName: "Asma",
		Items:        []dto.SaleLineRequest{{InventoryID: "u1", Price: dec("99.99")}},
	})
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "u1", out.Items[0].InventoryID)
	assert.True(t, out.TotalAmount.Equal(dec("99.99")))
}
