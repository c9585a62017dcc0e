// Package service turns repository calls into the outcomes and documents
// the HTTP surface and the CLI present.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/database"
	"github.com/jesses-code-adventures/cms/internal/logger"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/report"
)

type BackOffice struct {
	db       database.DB
	renderer *report.Renderer
	calc     *billing.Calculator
	log      zerolog.Logger
	now      func() time.Time
}

func NewBackOffice(db database.DB, renderer *report.Renderer, calc *billing.Calculator) *BackOffice {
	return &BackOffice{
		db:       db,
		renderer: renderer,
		calc:     calc,
		log:      logger.WithComponent("service"),
		now:      time.Now,
	}
}

func (s *BackOffice) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *BackOffice) Dashboard(ctx context.Context) (*models.DashboardCounts, error) {
	counts, err := s.db.DashboardCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}
	return counts, nil
}

func (s *BackOffice) added(entity string, err error) Outcome {
	if err != nil {
		s.log.Error().Err(err).Str("entity", entity).Msg("create failed")
		return outcomeFor(entity, "adding", err)
	}
	return succeeded(entity + " added successfully!")
}

func (s *BackOffice) deleted(entity, id string, err error) Outcome {
	if err != nil {
		s.log.Error().Err(err).Str("entity", entity).Str("id", id).Msg("delete failed")
		return outcomeFor(entity, "deleting", err)
	}
	s.log.Info().Str("entity", entity).Str("id", id).Msg("deleted")
	return succeeded(entity + " deleted successfully!")
}

func (s *BackOffice) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.db.ListClients(ctx)
}

func (s *BackOffice) AddClient(ctx context.Context, c *models.Client) (*models.Client, Outcome) {
	created, err := s.db.CreateClient(ctx, c)
	return created, s.added("Client", err)
}

func (s *BackOffice) DeleteClient(ctx context.Context, id string) Outcome {
	return s.deleted("Client", id, s.db.DeleteClient(ctx, id))
}

func (s *BackOffice) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.db.ListProjects(ctx)
}

func (s *BackOffice) AddProject(ctx context.Context, p *models.Project) (*models.Project, Outcome) {
	created, err := s.db.CreateProject(ctx, p)
	return created, s.added("Project", err)
}

func (s *BackOffice) DeleteProject(ctx context.Context, id string) Outcome {
	return s.deleted("Project", id, s.db.DeleteProject(ctx, id))
}

func (s *BackOffice) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.db.ListEmployees(ctx)
}

func (s *BackOffice) AddEmployee(ctx context.Context, e *models.Employee) (*models.Employee, Outcome) {
	created, err := s.db.CreateEmployee(ctx, e)
	return created, s.added("Employee", err)
}

func (s *BackOffice) DeleteEmployee(ctx context.Context, id string) Outcome {
	return s.deleted("Employee", id, s.db.DeleteEmployee(ctx, id))
}

func (s *BackOffice) AssignEmployee(ctx context.Context, a *models.Assignment) Outcome {
	if err := s.db.AssignEmployee(ctx, a); err != nil {
		s.log.Error().Err(err).Str("employee_id", a.EmployeeID).Str("project_id", a.ProjectID).Msg("assignment failed")
		return outcomeFor("Assignment", "assigning", err)
	}
	return succeeded("Employee assigned to project successfully!")
}

func (s *BackOffice) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	return s.db.ListSuppliers(ctx)
}

func (s *BackOffice) AddSupplier(ctx context.Context, sp *models.Supplier) (*models.Supplier, Outcome) {
	created, err := s.db.CreateSupplier(ctx, sp)
	return created, s.added("Supplier", err)
}

func (s *BackOffice) DeleteSupplier(ctx context.Context, id string) Outcome {
	return s.deleted("Supplier", id, s.db.DeleteSupplier(ctx, id))
}

func (s *BackOffice) ListMaterials(ctx context.Context) ([]*models.Material, error) {
	return s.db.ListMaterials(ctx)
}

func (s *BackOffice) AddMaterial(ctx context.Context, m *models.Material) (*models.Material, Outcome) {
	created, err := s.db.CreateMaterial(ctx, m)
	return created, s.added("Material", err)
}

func (s *BackOffice) DeleteMaterial(ctx context.Context, id string) Outcome {
	return s.deleted("Material", id, s.db.DeleteMaterial(ctx, id))
}

func (s *BackOffice) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.db.ListServices(ctx)
}

func (s *BackOffice) AddService(ctx context.Context, sv *models.Service) (*models.Service, Outcome) {
	created, err := s.db.CreateService(ctx, sv)
	return created, s.added("Service", err)
}

func (s *BackOffice) DeleteService(ctx context.Context, id string) Outcome {
	return s.deleted("Service", id, s.db.DeleteService(ctx, id))
}
