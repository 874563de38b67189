// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos por mutex. Lo usan las pruebas de los casos de uso y
// el modo demo sin base de datos; el comportamiento observable replica al
// adaptador de PostgreSQL.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/payments"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

// Store estado compartido de todos los repos en memoria.
type Store struct {
	mu         sync.Mutex
	clients    map[string]entity.Client
	quotations map[string]entity.Quotation
	projects   map[string]entity.Project
	workOrders map[string]entity.WorkOrder
	invoices   map[string]entity.Invoice
	payments   map[string]entity.Payment
	users      map[string]entity.User
	sequences  map[string]int64
}

// NewStore construye el estado vacío.
func NewStore() *Store {
	return &Store{
		clients:    make(map[string]entity.Client),
		quotations: make(map[string]entity.Quotation),
		projects:   make(map[string]entity.Project),
		workOrders: make(map[string]entity.WorkOrder),
		invoices:   make(map[string]entity.Invoice),
		payments:   make(map[string]entity.Payment),
		users:      make(map[string]entity.User),
		sequences:  make(map[string]int64),
	}
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// ClientRepo implementación en memoria de ClientRepository.
type ClientRepo struct{ s *Store }

var _ repository.ClientRepository = (*ClientRepo)(nil)

// NewClientRepository construye el adaptador.
func NewClientRepository(s *Store) *ClientRepo { return &ClientRepo{s: s} }

func (r *ClientRepo) Create(c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (r *ClientRepo) List(onlyActive bool, limit, offset int) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Client
	for id := range r.s.clients {
		c := r.s.clients[id]
		if onlyActive && !c.Active {
			continue
		}
		out := c
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (r *ClientRepo) Update(c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) Deactivate(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil
	}
	c.Active = false
	r.s.clients[id] = c
	return nil
}

// ── Cotizaciones ──────────────────────────────────────────────────────────────

// QuotationRepo implementación en memoria de QuotationRepository.
type QuotationRepo struct{ s *Store }

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// NewQuotationRepository construye el adaptador.
func NewQuotationRepository(s *Store) *QuotationRepo { return &QuotationRepo{s: s} }

func (r *QuotationRepo) Create(q *entity.Quotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotations[q.ID] = cloneQuotation(q)
	return nil
}

func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.quotations[id]
	if !ok {
		return nil, nil
	}
	out := cloneQuotation(&q)
	return &out, nil
}

func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Quotation
	for id := range r.s.quotations {
		q := cloneQuotation(ptr(r.s.quotations[id]))
		all = append(all, &q)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Number < all[j].Number })
	return paginate(all, limit, offset), nil
}

func (r *QuotationRepo) Update(q *entity.Quotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotations[q.ID] = cloneQuotation(q)
	return nil
}

func (r *QuotationRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.quotations, id) // las líneas viven dentro de la cotización
	return nil
}

// ── Negocios ──────────────────────────────────────────────────────────────────

// ProjectRepo implementación en memoria de ProjectRepository.
type ProjectRepo struct{ s *Store }

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// NewProjectRepository construye el adaptador.
func NewProjectRepository(s *Store) *ProjectRepo { return &ProjectRepo{s: s} }

func (r *ProjectRepo) Create(p *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects[p.ID] = *p
	return nil
}

func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (r *ProjectRepo) GetByQuotationID(quotationID string) (*entity.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id := range r.s.projects {
		if r.s.projects[id].QuotationID == quotationID {
			out := r.s.projects[id]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Project
	for id := range r.s.projects {
		out := r.s.projects[id]
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (r *ProjectRepo) Update(p *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects[p.ID] = *p
	return nil
}

// RecalculateAdvance replica la sentencia atómica del adaptador PostgreSQL:
// advance = Σ pagos del negocio, balance = total − advance, bajo el mutex
// del store (equivalente al bloqueo de fila).
func (r *ProjectRepo) RecalculateAdvance(projectID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[projectID]
	if !ok {
		return nil
	}
	sum := decimal.Zero
	for id := range r.s.payments {
		if r.s.payments[id].ProjectID == projectID {
			sum = sum.Add(r.s.payments[id].Amount)
		}
	}
	p.Advance = sum
	p.Balance = p.QuotationTotal.Sub(sum)
	r.s.projects[projectID] = p
	return nil
}

// ── Órdenes de trabajo ────────────────────────────────────────────────────────

// WorkOrderRepo implementación en memoria de WorkOrderRepository.
type WorkOrderRepo struct{ s *Store }

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// NewWorkOrderRepository construye el adaptador.
func NewWorkOrderRepository(s *Store) *WorkOrderRepo { return &WorkOrderRepo{s: s} }

func (r *WorkOrderRepo) Create(o *entity.WorkOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.workOrders[o.ID] = *o
	return nil
}

func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.workOrders[id]
	if !ok {
		return nil, nil
	}
	out := o
	return &out, nil
}

func (r *WorkOrderRepo) List(limit, offset int) ([]*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.WorkOrder
	for id := range r.s.workOrders {
		out := r.s.workOrders[id]
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (r *WorkOrderRepo) ListByProject(projectID string) ([]*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.WorkOrder
	for id := range r.s.workOrders {
		if r.s.workOrders[id].ProjectID == projectID {
			out := r.s.workOrders[id]
			all = append(all, &out)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *WorkOrderRepo) Update(o *entity.WorkOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.workOrders[o.ID] = *o
	return nil
}

func (r *WorkOrderRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.workOrders, id)
	return nil
}

// ── Facturas ──────────────────────────────────────────────────────────────────

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct{ s *Store }

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(s *Store) *InvoiceRepo { return &InvoiceRepo{s: s} }

func (r *InvoiceRepo) Create(f *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices[f.ID] = cloneInvoice(f)
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	out := cloneInvoice(&f)
	return &out, nil
}

func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Invoice
	for id := range r.s.invoices {
		f := cloneInvoice(ptr(r.s.invoices[id]))
		all = append(all, &f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Number < all[j].Number })
	return paginate(all, limit, offset), nil
}

func (r *InvoiceRepo) Update(f *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices[f.ID] = cloneInvoice(f)
	return nil
}

func (r *InvoiceRepo) UpdatePDFPath(id, path string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.invoices[id]
	if !ok {
		return nil
	}
	f.PDFPath = path
	r.s.invoices[id] = f
	return nil
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

// PaymentRepo implementación en memoria de PaymentRepository.
type PaymentRepo struct{ s *Store }

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(s *Store) *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) Create(p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments[p.ID] = *p
	return nil
}

func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (r *PaymentRepo) ListByProject(projectID string) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Payment
	for id := range r.s.payments {
		if r.s.payments[id].ProjectID == projectID {
			out := r.s.payments[id]
			all = append(all, &out)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *PaymentRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.payments, id)
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepository construye el adaptador.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id := range r.s.users {
		if r.s.users[id].Username == username {
			out := r.s.users[id]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Upsert(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = *u
	return nil
}

// ── Secuencias ────────────────────────────────────────────────────────────────

// SequenceRepo consecutivos en memoria. El mutex del store cumple el papel
// del upsert atómico de PostgreSQL: dos llamadas concurrentes jamás reciben
// el mismo valor.
type SequenceRepo struct{ s *Store }

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// NewSequenceRepository construye el adaptador.
func NewSequenceRepository(s *Store) *SequenceRepo { return &SequenceRepo{s: s} }

func (r *SequenceRepo) Next(kind string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sequences[kind]++
	return r.s.sequences[kind], nil
}

func (r *SequenceRepo) NextForYear(kind string, year int) (int64, error) {
	key := kind + ":" + strconv.Itoa(year)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sequences[key]++
	return r.s.sequences[key], nil
}

// ── Admin ─────────────────────────────────────────────────────────────────────

// AdminRepo implementación en memoria de AdminRepository.
type AdminRepo struct{ s *Store }

var _ repository.AdminRepository = (*AdminRepo)(nil)

// NewAdminRepository construye el adaptador.
func NewAdminRepository(s *Store) *AdminRepo { return &AdminRepo{s: s} }

// CleanData vacía todas las tablas de negocio excepto usuarios y reinicia
// los consecutivos.
func (r *AdminRepo) CleanData() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients = make(map[string]entity.Client)
	r.s.quotations = make(map[string]entity.Quotation)
	r.s.projects = make(map[string]entity.Project)
	r.s.workOrders = make(map[string]entity.WorkOrder)
	r.s.invoices = make(map[string]entity.Invoice)
	r.s.payments = make(map[string]entity.Payment)
	r.s.sequences = make(map[string]int64)
	return nil
}

func (r *AdminRepo) Stats() (*repository.EntityCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return &repository.EntityCounts{
		Clients:    int64(len(r.s.clients)),
		Quotations: int64(len(r.s.quotations)),
		Projects:   int64(len(r.s.projects)),
		WorkOrders: int64(len(r.s.workOrders)),
		Invoices:   int64(len(r.s.invoices)),
		Payments:   int64(len(r.s.payments)),
	}, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// TxRunner en memoria: no hay transacción real, el mutex del store da la
// exclusión; la función recibe repos atados al mismo store.
type TxRunner struct{ s *Store }

var _ payments.TxRunner = (*TxRunner)(nil)

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (r *TxRunner) RunPayments(_ context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	projectRepo repository.ProjectRepository,
) error) error {
	return fn(NewPaymentRepository(r.s), NewProjectRepository(r.s))
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func paginate[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

func cloneQuotation(q *entity.Quotation) entity.Quotation {
	out := *q
	out.Items = append([]entity.QuotationItem(nil), q.Items...)
	return out
}

func cloneInvoice(f *entity.Invoice) entity.Invoice {
	out := *f
	out.Lines = append([]entity.InvoiceLine(nil), f.Lines...)
	return out
}

func ptr[T any](v T) *T { return &v }
