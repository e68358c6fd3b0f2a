package inventory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: emulan el comportamiento transaccional del adaptador de
// PostgreSQL (snapshot al inicio, restore en rollback).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	transfers []*entity.Transfer

	// inyección de fallos
	failUpdateStockFor map[string]error // productID -> error
	failCreateMovement error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:           make(map[string]*entity.Product),
		failUpdateStockFor: make(map[string]error),
	}
}

func (s *fakeStore) addProduct(p *entity.Product) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.products[p.ID] = cloneProduct(p)
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	if p.LastSaleDate != nil {
		d := *p.LastSaleDate
		cp.LastSaleDate = &d
	}
	return &cp
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{
		products:           make(map[string]*entity.Product, len(s.products)),
		movements:          append([]*entity.StockMovement(nil), s.movements...),
		transfers:          append([]*entity.Transfer(nil), s.transfers...),
		failUpdateStockFor: s.failUpdateStockFor,
		failCreateMovement: s.failCreateMovement,
	}
	for id, p := range s.products {
		cp.products[id] = cloneProduct(p)
	}
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.products = snap.products
	s.movements = snap.movements
	s.transfers = snap.transfers
}

// fakeProductRepo implementa repository.ProductRepository sobre el store.
type fakeProductRepo struct {
	store *fakeStore
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	for _, existing := range r.store.products {
		if existing.SKU == p.SKU {
			return errors.New("sku duplicado")
		}
	}
	r.store.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.store.products[p.ID]; !ok {
		return nil
	}
	r.store.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	ids := make([]string, 0, len(r.store.products))
	for id := range r.store.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*entity.Product
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		out = append(out, cloneProduct(r.store.products[id]))
	}
	return out, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(p *entity.Product) error {
	if err, ok := r.store.failUpdateStockFor[p.ID]; ok {
		return err
	}
	return r.Update(p)
}

func (r *fakeProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.TotalStock() < p.MinStockLevel {
			out = append(out, cloneProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalStock() != out[j].TotalStock() {
			return out[i].TotalStock() < out[j].TotalStock()
		}
		return strings.Compare(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

func (r *fakeProductRepo) ListLowMoving(ctx context.Context, cutoff time.Time) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.TotalStock() <= 0 {
			continue
		}
		if p.LastSaleDate == nil || p.LastSaleDate.Before(cutoff) {
			out = append(out, cloneProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := out[i].LastSaleDate, out[j].LastSaleDate
		if li == nil {
			return true
		}
		if lj == nil {
			return false
		}
		return li.Before(*lj)
	})
	return out, nil
}

func (r *fakeProductRepo) Valuation(ctx context.Context) ([]repository.ValuationRow, error) {
	ids := make([]string, 0, len(r.store.products))
	for id := range r.store.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var rows []repository.ValuationRow
	for _, id := range ids {
		p := r.store.products[id]
		if p.TotalStock() <= 0 {
			continue
		}
		units := p.TotalStock()
		rows = append(rows, repository.ValuationRow{
			ProductID:   p.ID,
			SKU:         p.SKU,
			Name:        p.Name,
			Units:       units,
			AverageCost: p.AverageCost,
			TotalValue:  p.AverageCost.Mul(decimal.NewFromInt(int64(units))),
		})
	}
	return rows, nil
}

// fakeMovementRepo implementa repository.StockMovementRepository.
type fakeMovementRepo struct {
	store *fakeStore
}

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.store.failCreateMovement != nil {
		return r.store.failCreateMovement
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTransferRepo implementa repository.TransferRepository.
type fakeTransferRepo struct {
	store *fakeStore
}

var _ repository.TransferRepository = (*fakeTransferRepo)(nil)

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	cp := *t
	r.store.transfers = append(r.store.transfers, &cp)
	return nil
}

func (r *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	for _, t := range r.store.transfers {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	out := make([]*entity.Transfer, 0, len(r.store.transfers))
	for _, t := range r.store.transfers {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTransferRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range r.store.transfers {
		if t.ProductID == productID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner emula la transacción: snapshot al entrar, restore si fn falla.
type fakeTxRunner struct {
	store *fakeStore
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	transferRepo repository.TransferRepository,
) error) error {
	snap := tr.store.snapshot()
	err := fn(
		&fakeProductRepo{store: tr.store},
		&fakeMovementRepo{store: tr.store},
		&fakeTransferRepo{store: tr.store},
	)
	if err != nil {
		tr.store.restore(snap)
		return err
	}
	return nil
}

// fakeActivityRepo implementa repository.ActivityRepository.
type fakeActivityRepo struct {
	activities []*entity.TechnicianActivity
	failCreate error
}

var _ repository.ActivityRepository = (*fakeActivityRepo)(nil)

func (r *fakeActivityRepo) Create(a *entity.TechnicianActivity) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	cp := *a
	r.activities = append(r.activities, &cp)
	return nil
}

func (r *fakeActivityRepo) List(limit, offset int) ([]*entity.TechnicianActivity, error) {
	out := make([]*entity.TechnicianActivity, 0, len(r.activities))
	for _, a := range r.activities {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeActivityRepo) ListByTechnician(name string, limit, offset int) ([]*entity.TechnicianActivity, error) {
	var out []*entity.TechnicianActivity
	for _, a := range r.activities {
		if a.TechnicianName == name {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeAlertRepo implementa repository.AlertRepository con la misma semántica que
// el índice parcial único de PostgreSQL (una alerta abierta por producto y tipo).
type fakeAlertRepo struct {
	alerts []*entity.Alert
}

var _ repository.AlertRepository = (*fakeAlertRepo)(nil)

func (r *fakeAlertRepo) CreateIfAbsent(a *entity.Alert) (bool, error) {
	for _, existing := range r.alerts {
		if existing.ProductID == a.ProductID && existing.Type == a.Type && existing.ResolvedAt == nil {
			return false, nil
		}
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	cp := *a
	r.alerts = append(r.alerts, &cp)
	return true, nil
}

func (r *fakeAlertRepo) GetByID(id string) (*entity.Alert, error) {
	for _, a := range r.alerts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) MarkRead(id string) error {
	for _, a := range r.alerts {
		if a.ID == id {
			a.IsRead = true
			return nil
		}
	}
	return nil
}

func (r *fakeAlertRepo) List(onlyUnread bool, limit, offset int) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range r.alerts {
		if onlyUnread && (a.IsRead || a.ResolvedAt != nil) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAlertRepo) ResolveExcept(ctx context.Context, alertType string, keepProductIDs []string) (int, error) {
	keep := make(map[string]bool, len(keepProductIDs))
	for _, id := range keepProductIDs {
		keep[id] = true
	}
	resolved := 0
	now := time.Now()
	for _, a := range r.alerts {
		if a.Type == alertType && a.ResolvedAt == nil && !keep[a.ProductID] {
			stamp := now
			a.ResolvedAt = &stamp
			resolved++
		}
	}
	return resolved, nil
}
