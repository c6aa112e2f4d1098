package backend

import (
	"context"
	"net/url"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// isoLocal formato LocalDateTime que espera el backend en filtros de fecha.
const isoLocal = "2006-01-02T15:04:05"

// ── Productos / empleados / gastos: CRUD puro ─────────────────────────────────

// NewProductRepository products (listado pesado, LONG_TIMEOUT).
func NewProductRepository(c *Client) *Resource[entity.Product] {
	return NewResource[entity.Product](c, "products").WithLongTimeout()
}

// NewEmployeeRepository employees.
func NewEmployeeRepository(c *Client) *Resource[entity.Employee] {
	return NewResource[entity.Employee](c, "employees")
}

// NewExpenseRepository expenses.
func NewExpenseRepository(c *Client) *Resource[entity.Expense] {
	return NewResource[entity.Expense](c, "expenses")
}

// ── Documentos ────────────────────────────────────────────────────────────────

// DocumentRepository adaptador de documents.
type DocumentRepository struct {
	*Resource[entity.Document]
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(c *Client) *DocumentRepository {
	return &DocumentRepository{Resource: NewResource[entity.Document](c, "documents")}
}

// LifecycleStatus GET documents/lifecycle-status.
func (r *DocumentRepository) LifecycleStatus(ctx context.Context, scope repository.Scope) ([]entity.DocumentLifecycle, error) {
	page, err := listAt[entity.DocumentLifecycle](ctx, r.c, call{
		path:  OrgPath(scope.OrganizationID, r.name, "lifecycle-status"),
		token: scope.Token,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleRepository sales (alta/listado) y sale-history/by-date (histórico).
type SaleRepository struct {
	*Resource[entity.SaleRecord]
}

var _ repository.SaleRepository = (*SaleRepository)(nil)

// NewSaleRepository construye el adaptador.
func NewSaleRepository(c *Client) *SaleRepository {
	return &SaleRepository{Resource: NewResource[entity.SaleRecord](c, "sales")}
}

// ListByDate GET sale-history/by-date?from&to en ISO.
func (r *SaleRepository) ListByDate(ctx context.Context, scope repository.Scope, from, to time.Time) ([]entity.SaleRecord, error) {
	page, err := listAt[entity.SaleRecord](ctx, r.c, call{
		path:    OrgPath(scope.OrganizationID, "sale-history", "by-date"),
		query:   url.Values{"from": {from.Format(isoLocal)}, "to": {to.Format(isoLocal)}},
		token:   scope.Token,
		timeout: r.c.longTimeout,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ── Histórico de inventario ───────────────────────────────────────────────────

// InventoryLogRepository adaptador de inventory-logs.
type InventoryLogRepository struct {
	*Resource[entity.InventoryLog]
}

var _ repository.InventoryLogRepository = (*InventoryLogRepository)(nil)

// NewInventoryLogRepository construye el adaptador.
func NewInventoryLogRepository(c *Client) *InventoryLogRepository {
	return &InventoryLogRepository{Resource: NewResource[entity.InventoryLog](c, "inventory-logs").WithLongTimeout()}
}

// ListByProduct GET inventory-logs/by-product?productId=&from=&to=.
func (r *InventoryLogRepository) ListByProduct(ctx context.Context, scope repository.Scope, productID string, from, to time.Time) ([]entity.InventoryLog, error) {
	q := url.Values{"productId": {productID}}
	if !from.IsZero() {
		q.Set("from", from.Format(isoLocal))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(isoLocal))
	}
	page, err := listAt[entity.InventoryLog](ctx, r.c, call{
		path:    OrgPath(scope.OrganizationID, r.name, "by-product"),
		query:   q,
		token:   scope.Token,
		timeout: r.c.timeout,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ── Clientes a crédito ────────────────────────────────────────────────────────

// CustomerRepository adaptador de customers.
type CustomerRepository struct {
	*Resource[entity.Customer]
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(c *Client) *CustomerRepository {
	return &CustomerRepository{Resource: NewResource[entity.Customer](c, "customers")}
}

// History GET customers/history/all (sobre paginado).
func (r *CustomerRepository) History(ctx context.Context, scope repository.Scope, opts repository.ListOptions) (*repository.Page[entity.CustomerHistory], error) {
	return listAt[entity.CustomerHistory](ctx, r.c, call{
		path:    OrgPath(scope.OrganizationID, r.name, "history", "all"),
		query:   listQuery(opts),
		token:   scope.Token,
		timeout: r.c.longTimeout,
	})
}

// ── Asistencia / tareas / turnos ──────────────────────────────────────────────

// AttendanceRepository adaptador de attendance.
type AttendanceRepository struct {
	*Resource[entity.Attendance]
}

var _ repository.AttendanceRepository = (*AttendanceRepository)(nil)

// NewAttendanceRepository construye el adaptador.
func NewAttendanceRepository(c *Client) *AttendanceRepository {
	return &AttendanceRepository{Resource: NewResource[entity.Attendance](c, "attendance")}
}

// ListByEmployee GET attendance/employee/{empId}.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, scope repository.Scope, empID string) ([]entity.Attendance, error) {
	page, err := listAt[entity.Attendance](ctx, r.c, call{
		path:  OrgPath(scope.OrganizationID, r.name, "employee", empID),
		token: scope.Token,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// TaskRepository adaptador de tasks.
type TaskRepository struct {
	*Resource[entity.Task]
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository construye el adaptador.
func NewTaskRepository(c *Client) *TaskRepository {
	return &TaskRepository{Resource: NewResource[entity.Task](c, "tasks")}
}

// ListByEmployee GET tasks/employee/{empId}?status=.
func (r *TaskRepository) ListByEmployee(ctx context.Context, scope repository.Scope, empID, status string) ([]entity.Task, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	page, err := listAt[entity.Task](ctx, r.c, call{
		path:  OrgPath(scope.OrganizationID, r.name, "employee", empID),
		query: q,
		token: scope.Token,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// DutyRepository adaptador de employee-duties.
type DutyRepository struct {
	*Resource[entity.Duty]
}

var _ repository.DutyRepository = (*DutyRepository)(nil)

// NewDutyRepository construye el adaptador.
func NewDutyRepository(c *Client) *DutyRepository {
	return &DutyRepository{Resource: NewResource[entity.Duty](c, "employee-duties")}
}

// ListByEmployee GET employee-duties/employee/{empId}.
func (r *DutyRepository) ListByEmployee(ctx context.Context, scope repository.Scope, empID string) ([]entity.Duty, error) {
	page, err := listAt[entity.Duty](ctx, r.c, call{
		path:  OrgPath(scope.OrganizationID, r.name, "employee", empID),
		token: scope.Token,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
