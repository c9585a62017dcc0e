package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const projectColumns = "project_id, client_id, project_name, project_location, start_date, end_date, status, budget, actual_cost, contract_value, description"

func scanProject(row scanner) (*models.Project, error) {
	var p models.Project
	var clientID, location, start, end, status, description sql.NullString
	var budget, actualCost, contractValue decimal.NullDecimal
	if err := row.Scan(&p.ID, &clientID, &p.Name, &location, &start, &end, &status, &budget, &actualCost, &contractValue, &description); err != nil {
		return nil, err
	}
	p.ClientID = nullStringToPtr(clientID)
	p.Location = nullStringToPtr(location)
	p.StartDate = nullStringToDate(start)
	p.EndDate = nullStringToDate(end)
	p.Status = nullStringToPtr(status)
	p.Budget = nullDecimalToPtr(budget)
	p.ActualCost = nullDecimalToPtr(actualCost)
	p.ContractValue = nullDecimalToPtr(contractValue)
	p.Description = nullStringToPtr(description)
	return &p, nil
}

func (s *SQLDB) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := listRows(ctx, s, "SELECT "+projectColumns+" FROM projects ORDER BY LENGTH(project_id), project_id", scanProject)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *SQLDB) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := getRow(ctx, s, "SELECT "+projectColumns+" FROM projects WHERE project_id = ?", scanProject, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return project, nil
}

func (s *SQLDB) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	if err := requireFields("project", [2]string{"project_name", p.Name}); err != nil {
		return nil, err
	}
	created := *p
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "projects")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			"INSERT INTO projects ("+projectColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			id,
			ptrToNullString(p.ClientID),
			p.Name,
			ptrToNullString(p.Location),
			dateToNullString(p.StartDate),
			dateToNullString(p.EndDate),
			ptrToNullString(p.Status),
			ptrToNullDecimal(p.Budget),
			ptrToNullDecimal(p.ActualCost),
			ptrToNullDecimal(p.ContractValue),
			ptrToNullString(p.Description),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeleteProject(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "projects", "project_id", id); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return nil
}
