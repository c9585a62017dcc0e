package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

var ErrAlreadySeeded = errors.New("database already contains records")

// SeedResult lists the identifiers assigned to the sample records.
type SeedResult struct {
	ClientID   string
	ProjectID  string
	Employees  []string
	SupplierID string
	ServiceID  string
	MaterialID string
	InvoiceID  string
	PaymentID  string
}

type seedEmployee struct {
	first, last, role, email string
	experience               int
}

var seedEmployees = []seedEmployee{
	{"Bharat", "Gharat", "Project Manager", "bharat.g@omenter.com", 7},
	{"Sushank", "Kirdak", "Civil Engineer", "sushank.k@omenter.com", 7},
	{"Rambhau", "Gharat", "Site Supervisor", "rambhau.g@omenter.com", 10},
	{"Pandurang", "Kirdak", "Site Supervisor", "pandurang.k@omenter.com", 10},
	{"Rupchand", "Gharat", "Site Supervisor", "rupchand.g@omenter.com", 12},
	{"Ashok", "Kirdak", "Site Supervisor", "ashok.k@omenter.com", 10},
	{"Datta", "Ingole", "Site Supervisor", "datta.i@omenter.com", 10},
}

func money(s string) *decimal.Decimal {
	return utils.ToPtr(decimal.RequireFromString(s))
}

func date(year int, month time.Month, day int) *models.Date {
	return utils.ToPtr(models.NewDate(year, month, day))
}

// Seed loads the company's starting records into an empty database.
func (s *BackOffice) Seed(ctx context.Context) (*SeedResult, error) {
	counts, err := s.db.DashboardCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing records: %w", err)
	}
	if counts.Clients+counts.Projects+counts.Employees+counts.Invoices > 0 {
		return nil, ErrAlreadySeeded
	}

	var res SeedResult

	client, err := s.db.CreateClient(ctx, &models.Client{
		Name:          "Shanti Nagar Co-op Housing Society",
		ContactPerson: utils.ToPtr("Ramesh Patil"),
		Phone:         utils.ToPtr("9820012345"),
		Email:         utils.ToPtr("secretary@shantinagarchs.in"),
		Address:       utils.ToPtr("S.V Road, Shanti Nagar, Dahisar (East), Mumbai-400068"),
		ClientType:    utils.ToPtr("Residential"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed client: %w", err)
	}
	res.ClientID = client.ID

	project, err := s.db.CreateProject(ctx, &models.Project{
		ClientID:      &client.ID,
		Name:          "Building Exterior Repainting",
		Location:      utils.ToPtr("Dahisar (East), Mumbai"),
		StartDate:     date(2024, time.February, 1),
		EndDate:       date(2024, time.April, 15),
		Status:        utils.ToPtr("Completed"),
		Budget:        money("150000.00"),
		ActualCost:    money("138500.00"),
		ContractValue: money("160000.00"),
		Description:   utils.ToPtr("Exterior repainting of three wings with weatherproof acrylic emulsion."),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed project: %w", err)
	}
	res.ProjectID = project.ID

	for i, se := range seedEmployees {
		e, err := s.db.CreateEmployee(ctx, &models.Employee{
			FirstName:       se.first,
			LastName:        se.last,
			Role:            utils.ToPtr(se.role),
			ExperienceYears: utils.ToPtr(se.experience),
			ContactPhone:    utils.ToPtr(fmt.Sprintf("98765432%02d", 10+i)),
			Email:           utils.ToPtr(se.email),
			HireDate:        date(2018, time.January, 15),
			Salary:          money("75000.00"),
			Status:          utils.ToPtr("Active"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed employee %s: %w", se.first, err)
		}
		res.Employees = append(res.Employees, e.ID)
	}

	if err := s.db.AssignEmployee(ctx, &models.Assignment{
		ProjectID:  project.ID,
		EmployeeID: res.Employees[0],
		Role:       utils.ToPtr("Project Manager"),
		StartDate:  project.StartDate,
		EndDate:    project.EndDate,
	}); err != nil {
		return nil, fmt.Errorf("failed to seed assignment: %w", err)
	}

	supplier, err := s.db.CreateSupplier(ctx, &models.Supplier{
		Name:          "Bright Paints India",
		ContactPerson: utils.ToPtr("Anil Kumar"),
		Phone:         utils.ToPtr("+918001122334"),
		Email:         utils.ToPtr("sales@brightpaints.in"),
		Address:       utils.ToPtr("7, Industrial Area, Mumbai-400004"),
		SupplierType:  utils.ToPtr("Material"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed supplier: %w", err)
	}
	res.SupplierID = supplier.ID

	service, err := s.db.CreateService(ctx, &models.Service{Name: "Interior Painting", UnitPrice: money("25.00")})
	if err != nil {
		return nil, fmt.Errorf("failed to seed service: %w", err)
	}
	res.ServiceID = service.ID

	material, err := s.db.CreateMaterial(ctx, &models.Material{
		Name:          "Acrylic Emulsion",
		SupplierID:    &supplier.ID,
		Manufacturer:  utils.ToPtr("Paints"),
		UnitPrice:     money("600.00"),
		UnitOfMeasure: utils.ToPtr("Liters"),
		StockQuantity: money("150.00"),
		Description:   utils.ToPtr("Durable exterior paint with weather resistance."),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed material: %w", err)
	}
	res.MaterialID = material.ID

	invoice, err := s.db.CreateInvoice(ctx, &models.Invoice{
		ProjectID:   &project.ID,
		ClientID:    &client.ID,
		InvoiceDate: date(2024, time.April, 16),
		DueDate:     date(2024, time.May, 16),
		BillAmount:  decimal.RequireFromString("160000.00"),
		AmountPaid:  decimal.RequireFromString("160000.00"),
		Status:      utils.ToPtr("Paid"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed invoice: %w", err)
	}
	res.InvoiceID = invoice.ID

	payment, err := s.db.CreatePayment(ctx, &models.Payment{
		InvoiceID:     invoice.ID,
		PaymentDate:   time.Date(2024, time.May, 10, 10, 30, 0, 0, time.UTC),
		Amount:        decimal.RequireFromString("160000.00"),
		Method:        utils.ToPtr("Bank Transfer"),
		TransactionID: utils.ToPtr("TRN123456789"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed payment: %w", err)
	}
	res.PaymentID = payment.ID

	s.log.Info().Int("employees", len(res.Employees)).Str("invoice_id", res.InvoiceID).Msg("sample data seeded")
	return &res, nil
}
