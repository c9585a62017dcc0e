package database

import (
	"context"

	"github.com/jesses-code-adventures/cms/internal/models"
)

type DB interface {
	Close() error
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error

	ListClients(ctx context.Context) ([]*models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	CreateEmployee(ctx context.Context, e *models.Employee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	AssignEmployee(ctx context.Context, a *models.Assignment) error
	ListAssignmentsForEmployee(ctx context.Context, employeeID string) ([]*models.Assignment, error)

	ListSuppliers(ctx context.Context) ([]*models.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, sp *models.Supplier) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	ListMaterials(ctx context.Context) ([]*models.Material, error)
	GetMaterial(ctx context.Context, id string) (*models.Material, error)
	CreateMaterial(ctx context.Context, m *models.Material) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, sv *models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error

	ListPayments(ctx context.Context) ([]*models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error

	DashboardCounts(ctx context.Context) (*models.DashboardCounts, error)
}

var _ DB = (*SQLDB)(nil)
