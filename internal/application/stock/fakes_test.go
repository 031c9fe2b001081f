package stock_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

// Fake in-memory untuk menguji engine tanpa database.

type fakeMutationRepo struct {
	mutations []*entity.StockMutation
}

func (f *fakeMutationRepo) Create(m *entity.StockMutation) error {
	f.mutations = append(f.mutations, m)
	return nil
}

func (f *fakeMutationRepo) ListByProduct(brandID, productID string, limit, offset int) ([]*entity.StockMutation, error) {
	var out []*entity.StockMutation
	for _, m := range f.mutations {
		if m.BrandID == brandID && m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMutationRepo) ListByRef(brandID, refTable, refID string) ([]*entity.StockMutation, error) {
	var out []*entity.StockMutation
	for _, m := range f.mutations {
		if m.BrandID == brandID && m.RefTable == refTable && m.RefID == refID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMutationRepo) CountByRefAndType(brandID, refTable, refID, mutationType string) (int, error) {
	n := 0
	for _, m := range f.mutations {
		if m.BrandID == brandID && m.RefTable == refTable && m.RefID == refID && m.Type == mutationType {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(brandID, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.BrandID != brandID {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProductRepo) GetForUpdate(brandID, id string) (*entity.Product, error) {
	return f.GetByID(brandID, id)
}

func (f *fakeProductRepo) List(brandID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) AdjustQty(brandID, id string, delta decimal.Decimal) error {
	p := f.products[id]
	p.Qty = p.Qty.Add(delta)
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.SalesOrder
}

func newFakeOrderRepo(orders ...*entity.SalesOrder) *fakeOrderRepo {
	f := &fakeOrderRepo{orders: map[string]*entity.SalesOrder{}}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrderRepo) Create(o *entity.SalesOrder) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(brandID, id string) (*entity.SalesOrder, error) {
	o, ok := f.orders[id]
	if !ok || o.BrandID != brandID {
		return nil, nil
	}
	return o, nil
}

func (f *fakeOrderRepo) GetForUpdate(brandID, id string) (*entity.SalesOrder, error) {
	return f.GetByID(brandID, id)
}

func (f *fakeOrderRepo) List(brandID string, status string, limit, offset int) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range f.orders {
		if o.BrandID == brandID && (status == "" || string(o.Status) == status) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(brandID, id string, status entity.OrderStatus) error {
	f.orders[id].Status = status
	return nil
}

func (f *fakeOrderRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	o := f.orders[id]
	o.PaidAmount = paid
	o.PaymentStatus = status
	return nil
}

func (f *fakeOrderRepo) SetStockAppliedAt(brandID, id string, at time.Time) error {
	f.orders[id].StockAppliedAt = &at
	return nil
}

func (f *fakeOrderRepo) SetStockReversedAt(brandID, id string, at time.Time) error {
	f.orders[id].StockReversedAt = &at
	return nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.PurchaseDirect
}

func newFakePurchaseRepo(purchases ...*entity.PurchaseDirect) *fakePurchaseRepo {
	f := &fakePurchaseRepo{purchases: map[string]*entity.PurchaseDirect{}}
	for _, p := range purchases {
		f.purchases[p.ID] = p
	}
	return f
}

func (f *fakePurchaseRepo) Create(p *entity.PurchaseDirect) error {
	f.purchases[p.ID] = p
	return nil
}

func (f *fakePurchaseRepo) GetByID(brandID, id string) (*entity.PurchaseDirect, error) {
	p, ok := f.purchases[id]
	if !ok || p.BrandID != brandID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePurchaseRepo) GetForUpdate(brandID, id string) (*entity.PurchaseDirect, error) {
	return f.GetByID(brandID, id)
}

func (f *fakePurchaseRepo) List(brandID string, limit, offset int) ([]*entity.PurchaseDirect, error) {
	var out []*entity.PurchaseDirect
	for _, p := range f.purchases {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) SetReceivedAt(brandID, id string, at time.Time) error {
	f.purchases[id].ReceivedAt = &at
	return nil
}

func (f *fakePurchaseRepo) UpdatePaymentCache(brandID, id string, paid decimal.Decimal, status string) error {
	p := f.purchases[id]
	p.PaidAmount = paid
	p.PaymentStatus = status
	return nil
}

func (f *fakePurchaseRepo) SetStockAppliedAt(brandID, id string, at time.Time) error {
	f.purchases[id].StockAppliedAt = &at
	return nil
}

func (f *fakePurchaseRepo) SetStockReversedAt(brandID, id string, at time.Time) error {
	f.purchases[id].StockReversedAt = &at
	return nil
}

func (f *fakePurchaseRepo) Delete(brandID, id string) error {
	delete(f.purchases, id)
	return nil
}
