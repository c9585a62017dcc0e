package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const employeeColumns = "employee_id, first_name, last_name, role, experience_years, contact_phone, email, hire_date, salary, status"

func scanEmployee(row scanner) (*models.Employee, error) {
	var e models.Employee
	var role, phone, email, hireDate, status sql.NullString
	var experience sql.NullInt64
	var salary decimal.NullDecimal
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &role, &experience, &phone, &email, &hireDate, &salary, &status); err != nil {
		return nil, err
	}
	e.Role = nullStringToPtr(role)
	e.ExperienceYears = nullInt64ToIntPtr(experience)
	e.ContactPhone = nullStringToPtr(phone)
	e.Email = nullStringToPtr(email)
	e.HireDate = nullStringToDate(hireDate)
	e.Salary = nullDecimalToPtr(salary)
	e.Status = nullStringToPtr(status)
	return &e, nil
}

func (s *SQLDB) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := listRows(ctx, s, "SELECT "+employeeColumns+" FROM employees ORDER BY LENGTH(employee_id), employee_id", scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *SQLDB) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := getRow(ctx, s, "SELECT "+employeeColumns+" FROM employees WHERE employee_id = ?", scanEmployee, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return employee, nil
}

func (s *SQLDB) CreateEmployee(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	if err := requireFields("employee", [2]string{"first_name", e.FirstName}, [2]string{"last_name", e.LastName}); err != nil {
		return nil, err
	}
	created := *e
	created.Assignments = nil
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "employees")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			"INSERT INTO employees ("+employeeColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			id,
			e.FirstName,
			e.LastName,
			ptrToNullString(e.Role),
			intPtrToNullInt64(e.ExperienceYears),
			ptrToNullString(e.ContactPhone),
			ptrToNullString(e.Email),
			dateToNullString(e.HireDate),
			ptrToNullDecimal(e.Salary),
			ptrToNullString(e.Status),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "employees", "employee_id", id); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	return nil
}

func scanAssignment(row scanner) (*models.Assignment, error) {
	var a models.Assignment
	var clientID, role, start, end sql.NullString
	if err := row.Scan(&a.ProjectID, &a.EmployeeID, &clientID, &role, &start, &end); err != nil {
		return nil, err
	}
	a.ClientID = nullStringToPtr(clientID)
	a.Role = nullStringToPtr(role)
	a.StartDate = nullStringToDate(start)
	a.EndDate = nullStringToDate(end)
	return &a, nil
}

func (s *SQLDB) AssignEmployee(ctx context.Context, a *models.Assignment) error {
	if err := required([2]string{"project_id", a.ProjectID}, [2]string{"employee_id", a.EmployeeID}); err != nil {
		return fmt.Errorf("failed to assign employee: %w", err)
	}
	err := s.withTx(ctx, func(q querier) error {
		_, err := s.exec(ctx, q,
			`INSERT INTO project_assignments (project_id, employee_id, assignment_role, assignment_start_date, assignment_end_date)
			VALUES (?, ?, ?, ?, ?)`,
			a.ProjectID,
			a.EmployeeID,
			ptrToNullString(a.Role),
			dateToNullString(a.StartDate),
			dateToNullString(a.EndDate),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to assign employee %s to project %s: %w", a.EmployeeID, a.ProjectID, err)
	}
	return nil
}

// ListAssignmentsForEmployee joins each assignment with its project's client.
func (s *SQLDB) ListAssignmentsForEmployee(ctx context.Context, employeeID string) ([]*models.Assignment, error) {
	assignments, err := listRows(ctx, s, `
		SELECT pa.project_id, pa.employee_id, p.client_id, pa.assignment_role, pa.assignment_start_date, pa.assignment_end_date
		FROM project_assignments pa
		LEFT JOIN projects p ON pa.project_id = p.project_id
		WHERE pa.employee_id = ?
		ORDER BY pa.assignment_start_date, pa.project_id`, scanAssignment, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for employee %s: %w", employeeID, err)
	}
	return assignments, nil
}
