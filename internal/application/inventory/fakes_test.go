package inventory_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

// store es una BD en memoria que cubre cabeceras, líneas y catálogo.
type store struct {
	docs       map[string]*entity.Document
	details    []*entity.DocumentDetail
	products   map[string]*entity.Product
	customers  map[string]*entity.Customer
	warehouses map[string]*entity.Warehouse
	seq        map[entity.DocumentKind]int
}

func newStore() *store {
	return &store{
		docs:       map[string]*entity.Document{},
		products:   map[string]*entity.Product{},
		customers:  map[string]*entity.Customer{},
		warehouses: map[string]*entity.Warehouse{},
		seq:        map[entity.DocumentKind]int{},
	}
}

type docRepo struct{ s *store }

func (r docRepo) Create(_ context.Context, d *entity.Document) error {
	r.s.docs[d.ID] = d
	return nil
}
func (r docRepo) GetByID(_ context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	d, ok := r.s.docs[id]
	if !ok || d.Kind != kind {
		return nil, nil
	}
	return d, nil
}
func (r docRepo) Update(_ context.Context, d *entity.Document) error {
	r.s.docs[d.ID] = d
	return nil
}
func (r docRepo) List(_ context.Context, kind entity.DocumentKind, _ repository.ListFilter) ([]*entity.Document, int, error) {
	var out []*entity.Document
	for _, d := range r.s.docs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}
func (r docRepo) Delete(_ context.Context, _ entity.DocumentKind, id string) error {
	delete(r.s.docs, id)
	return nil
}
func (r docRepo) NextCode(_ context.Context, kind entity.DocumentKind) (string, error) {
	r.s.seq[kind]++
	return fmt.Sprintf("%s%06d", kind.CodePrefix(), r.s.seq[kind]), nil
}

type detailRepo struct{ s *store }

func (r detailRepo) Create(_ context.Context, d *entity.DocumentDetail) error {
	for _, e := range r.s.details {
		if e.DocumentID == d.DocumentID && e.Key() == d.Key() {
			return domain.ErrDuplicateCombination
		}
	}
	cp := *d
	r.s.details = append(r.s.details, &cp)
	return nil
}
func (r detailRepo) GetByID(_ context.Context, documentID, id string) (*entity.DocumentDetail, error) {
	for _, d := range r.s.details {
		if d.DocumentID == documentID && d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}
func (r detailRepo) Update(_ context.Context, d *entity.DocumentDetail) error {
	for i, e := range r.s.details {
		if e.ID == d.ID {
			cp := *d
			r.s.details[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r detailRepo) Delete(_ context.Context, documentID, id string) error {
	for i, e := range r.s.details {
		if e.DocumentID == documentID && e.ID == id {
			r.s.details = append(r.s.details[:i], r.s.details[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r detailRepo) ListByDocument(_ context.Context, documentID string) ([]*entity.DocumentDetail, error) {
	var out []*entity.DocumentDetail
	for _, d := range r.s.details {
		if d.DocumentID == documentID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r detailRepo) ListMovements(_ context.Context, productID string) ([]stock.MovementRecord, error) {
	var out []stock.MovementRecord
	for _, d := range r.s.details {
		doc := r.s.docs[d.DocumentID]
		if d.ProductID != productID || doc == nil || !doc.Kind.IsMovement() {
			continue
		}
		out = append(out, stock.MovementRecord{
			ProductID:  d.ProductID,
			ColorTitle: d.ColorTitle,
			Size:       d.Size,
			Quantity:   d.Quantity,
			Direction:  doc.Kind.Direction(),
		})
	}
	return out, nil
}
func (r detailRepo) ListDated(_ context.Context, kind entity.DocumentKind, from, to time.Time) ([]repository.DatedLine, error) {
	var out []repository.DatedLine
	for _, d := range r.s.details {
		doc := r.s.docs[d.DocumentID]
		if doc == nil || doc.Kind != kind || doc.Date.Before(from) || !doc.Date.Before(to) {
			continue
		}
		out = append(out, repository.DatedLine{Date: doc.Date, Quantity: d.Quantity, Amount: d.Amount()})
	}
	return out, nil
}

type productRepo struct{ s *store }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r productRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r productRepo) List(_ context.Context, _ repository.ListFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r productRepo) Delete(_ context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

type customerRepo struct{ s *store }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.customers[c.ID] = c
	return nil
}
func (r customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}
func (r customerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.customers[c.ID] = c
	return nil
}
func (r customerRepo) List(_ context.Context, _ repository.ListFilter) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}
func (r customerRepo) Delete(_ context.Context, id string) error {
	delete(r.s.customers, id)
	return nil
}

type warehouseRepo struct{ s *store }

func (r warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}
func (r warehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}
func (r warehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}
func (r warehouseRepo) List(_ context.Context, _ repository.ListFilter) ([]*entity.Warehouse, int, error) {
	return nil, 0, nil
}
func (r warehouseRepo) Delete(_ context.Context, id string) error {
	delete(r.s.warehouses, id)
	return nil
}

// txRunner ejecuta fn sobre los mismos repos en memoria; un error descarta
// las líneas escritas dentro de fn.
type txRunner struct{ s *store }

func (t txRunner) Run(_ context.Context, fn func(repository.DocumentRepository, repository.DetailRepository) error) error {
	snapshot := append([]*entity.DocumentDetail(nil), t.s.details...)
	if err := fn(docRepo{t.s}, detailRepo{t.s}); err != nil {
		t.s.details = snapshot
		return err
	}
	return nil
}

type memLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemLocker() *memLocker { return &memLocker{held: map[string]bool{}} }

type memLock struct {
	l   *memLocker
	key string
}

func (l *memLocker) Acquire(_ context.Context, key string) (ports.Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return nil, domain.ErrLocked
	}
	l.held[key] = true
	return memLock{l: l, key: key}, nil
}

func (k memLock) Release(context.Context) error {
	k.l.mu.Lock()
	defer k.l.mu.Unlock()
	delete(k.l.held, k.key)
	return nil
}

type recordingMetrics struct {
	decisions  map[string]int
	duplicates int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{decisions: map[string]int{}}
}

func (m *recordingMetrics) ObserveDecision(outcome string) { m.decisions[outcome]++ }
func (m *recordingMetrics) ObserveDuplicate()              { m.duplicates++ }

type fakeSheetReader struct{ rows []ports.DetailSheetRow }

func (f fakeSheetReader) ReadDetailRows(io.Reader) ([]ports.DetailSheetRow, error) {
	return f.rows, nil
}

type capturePDF struct{ last ports.DocumentPrint }

func (c *capturePDF) GenerateDocumentPDF(_ context.Context, doc ports.DocumentPrint) ([]byte, error) {
	c.last = doc
	return []byte("%PDF-1.4"), nil
}
