package service

import (
	"testing"

	"gorm.io/gorm"

	"storefront-backend/internal/models"
	"storefront-backend/internal/webhook"
)

type fakeOrderRepo struct {
	orders           map[string]*models.Order
	nextID           uint
	upsertItemCounts []int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order), nextID: 1}
}

// Upsert mirrors the real repository: item rows are written on first
// insert only, a later upsert refreshes the header and keeps them.
func (r *fakeOrderRepo) Upsert(order *models.Order) error {
	r.upsertItemCounts = append(r.upsertItemCounts, len(order.Items))
	if existing, ok := r.orders[order.ExternalID]; ok {
		order.ID = existing.ID
		order.Items = existing.Items
	} else {
		order.ID = r.nextID
		r.nextID++
	}
	r.orders[order.ExternalID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetByExternalID(externalID string) (*models.Order, error) {
	if o, ok := r.orders[externalID]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetAll(limit, offset int) ([]models.Order, int64, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	r.orders[order.ExternalID] = order
	return nil
}

type fakeProductRepo struct {
	byExternal map[string]*models.Product
}

func (r *fakeProductRepo) Create(*models.Product) error { return nil }

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	for _, p := range r.byExternal {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) GetByHandle(string) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) GetByExternalID(externalID string) (*models.Product, error) {
	if p, ok := r.byExternal[externalID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) GetAll(bool) ([]models.Product, error) { return nil, nil }

func (r *fakeProductRepo) GetByCategorySlug(string, bool) ([]models.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(*models.Product) error       { return nil }
func (r *fakeProductRepo) Delete(uint) error                  { return nil }
func (r *fakeProductRepo) ExistsByHandle(string) (bool, error) { return false, nil }

func (r *fakeProductRepo) AdjustStock(id uint, delta int) error {
	for _, p := range r.byExternal {
		if p.ID == id {
			p.Stock += delta
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeInventoryRepo struct {
	entries []models.InventoryLog
}

func (r *fakeInventoryRepo) Log(entry *models.InventoryLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeInventoryRepo) GetAll(uint, int, int) ([]models.InventoryLog, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

type fakeEventRepo struct {
	events map[string]*models.ServerEvent
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*models.ServerEvent)}
}

func (r *fakeEventRepo) Enqueue(event *models.ServerEvent) error {
	if _, ok := r.events[event.EventID]; ok {
		return nil
	}
	r.events[event.EventID] = event
	return nil
}

func (r *fakeEventRepo) GetPending(limit int) ([]models.ServerEvent, error) {
	var out []models.ServerEvent
	for _, e := range r.events {
		if e.Status == "pending" {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) MarkSent(id uint) error   { return nil }
func (r *fakeEventRepo) MarkFailed(uint, string) error { return nil }

func paidEvent() *webhook.OrderEvent {
	return &webhook.OrderEvent{
		EventID: "evt-1",
		OrderID: "ord-1",
		Status:  "paid",
		Total:   109.90,
		Customer: webhook.Customer{
			Name:  "Maria Silva",
			Email: "maria@example.com",
		},
		Items: []webhook.OrderLine{
			{ProductID: "ext-1", Title: "Kit 3 Camisas", Size: "M", Quantity: 2, Price: 54.95},
		},
	}
}

func newOrderFixture() (*OrderService, *fakeOrderRepo, *fakeProductRepo, *fakeInventoryRepo, *fakeEventRepo) {
	orders := newFakeOrderRepo()
	products := &fakeProductRepo{byExternal: map[string]*models.Product{
		"ext-1": {ID: 1, ExternalID: "ext-1", Stock: 10},
	}}
	inventory := &fakeInventoryRepo{}
	events := newFakeEventRepo()

	svc := NewOrderService(orders, products, inventory, events)
	return svc, orders, products, inventory, events
}

func TestProcessOrderEventIgnoresNonPaymentStatus(t *testing.T) {
	svc, orders, products, _, events := newOrderFixture()

	event := paidEvent()
	event.Status = "pending"

	order, processed, err := svc.ProcessOrderEvent(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed || order != nil {
		t.Fatalf("expected event to be ignored")
	}
	if len(orders.orders) != 0 {
		t.Fatalf("expected no order stored")
	}
	if products.byExternal["ext-1"].Stock != 10 {
		t.Fatalf("expected stock untouched, got %d", products.byExternal["ext-1"].Stock)
	}
	if len(events.events) != 0 {
		t.Fatalf("expected no conversion event queued")
	}
}

func TestProcessOrderEventStoresOrderAndAdjustsStock(t *testing.T) {
	svc, orders, products, inventory, events := newOrderFixture()

	order, processed, err := svc.ProcessOrderEvent(paidEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !processed {
		t.Fatalf("expected event to be processed")
	}

	stored := orders.orders["ord-1"]
	if stored == nil || stored.CustomerEmail != "maria@example.com" || stored.Total != 109.90 {
		t.Fatalf("unexpected stored order: %+v", stored)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}

	if products.byExternal["ext-1"].Stock != 8 {
		t.Fatalf("expected stock 8 after sale of 2, got %d", products.byExternal["ext-1"].Stock)
	}

	if len(inventory.entries) != 1 {
		t.Fatalf("expected one inventory log entry, got %d", len(inventory.entries))
	}
	entry := inventory.entries[0]
	if entry.ChangeAmount != -2 || entry.Reason != "order" || entry.OrderID == nil {
		t.Fatalf("unexpected inventory entry: %+v", entry)
	}

	if _, ok := events.events["evt-1"]; !ok {
		t.Fatalf("expected Purchase event queued under the webhook event id")
	}
}

func TestProcessOrderEventRetryIsIdempotent(t *testing.T) {
	svc, orders, products, inventory, events := newOrderFixture()

	if _, _, err := svc.ProcessOrderEvent(paidEvent()); err != nil {
		t.Fatalf("first delivery failed: %v", err)
	}
	if _, _, err := svc.ProcessOrderEvent(paidEvent()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}

	if len(orders.orders) != 1 {
		t.Fatalf("expected single order after retry, got %d", len(orders.orders))
	}
	if len(orders.orders["ord-1"].Items) != 1 {
		t.Fatalf("expected item rows written once, got %d", len(orders.orders["ord-1"].Items))
	}
	if got := orders.upsertItemCounts; len(got) != 2 || got[1] != 0 {
		t.Fatalf("expected redelivery upsert to carry no item rows, got %v", got)
	}
	if products.byExternal["ext-1"].Stock != 8 {
		t.Fatalf("expected stock decremented once, got %d", products.byExternal["ext-1"].Stock)
	}
	if len(inventory.entries) != 1 {
		t.Fatalf("expected single inventory entry after retry, got %d", len(inventory.entries))
	}
	if len(events.events) != 1 {
		t.Fatalf("expected single queued event after retry, got %d", len(events.events))
	}
}

func TestProcessOrderEventSkipsUnknownProducts(t *testing.T) {
	svc, orders, _, inventory, _ := newOrderFixture()

	event := paidEvent()
	event.Items = append(event.Items, webhook.OrderLine{ProductID: "ext-missing", Quantity: 1})

	if _, _, err := svc.ProcessOrderEvent(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders.orders) != 1 {
		t.Fatalf("expected order stored despite unknown line")
	}
	if len(inventory.entries) != 1 {
		t.Fatalf("expected only the known product logged, got %d entries", len(inventory.entries))
	}
}
