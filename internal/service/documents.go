package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jesses-code-adventures/cms/internal/export"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/report"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Document is a rendered file ready to be sent as an attachment or written to disk.
type Document struct {
	FileName    string
	ContentType string
	Data        []byte
}

// pdf wraps a render result. A nil blob means there was nothing to draw.
func (s *BackOffice) pdf(fileName, emptyMessage string, data []byte, err error) (*Document, Outcome) {
	if err != nil {
		s.log.Error().Err(err).Str("file", fileName).Msg("render failed")
		return nil, failed(KindFailed, msgRenderFailed)
	}
	if data == nil {
		return nil, failed(KindNothingToRender, emptyMessage)
	}
	s.log.Debug().Str("file", fileName).Int("bytes", len(data)).Msg("rendered")
	return &Document{FileName: sanitizeFileName(fileName), ContentType: ContentTypePDF, Data: data}, succeeded("")
}

func (s *BackOffice) listFailed(entity string, err error) Outcome {
	s.log.Error().Err(err).Str("entity", entity).Msg("list failed")
	return outcomeFor(entity, "loading", err)
}

func (s *BackOffice) ClientProfilePDF(ctx context.Context, id string) (*Document, Outcome) {
	c, err := s.db.GetClient(ctx, id)
	if err != nil {
		return nil, outcomeFor("Client", "loading", err)
	}
	data, err := s.renderer.ClientProfile(c)
	return s.pdf(fmt.Sprintf("client_profile_%s.pdf", id), "Client not found.", data, err)
}

func (s *BackOffice) ClientRosterPDF(ctx context.Context) (*Document, Outcome) {
	clients, err := s.db.ListClients(ctx)
	if err != nil {
		return nil, s.listFailed("Client", err)
	}
	data, err := s.renderer.ClientRoster(clients)
	return s.pdf("client_roster_report.pdf", "No clients found to generate a report.", data, err)
}

func (s *BackOffice) ProjectProfilePDF(ctx context.Context, id string) (*Document, Outcome) {
	p, err := s.db.GetProject(ctx, id)
	if err != nil {
		return nil, outcomeFor("Project", "loading", err)
	}
	data, err := s.renderer.ProjectProfile(p)
	return s.pdf(fmt.Sprintf("project_profile_%s.pdf", id), "Project not found.", data, err)
}

func (s *BackOffice) ProjectRosterPDF(ctx context.Context) (*Document, Outcome) {
	projects, err := s.db.ListProjects(ctx)
	if err != nil {
		return nil, s.listFailed("Project", err)
	}
	data, err := s.renderer.ProjectRoster(projects)
	return s.pdf("project_roster_report.pdf", "No projects found to generate a report.", data, err)
}

// EmployeeProfilePDF includes the employee's project assignments.
func (s *BackOffice) EmployeeProfilePDF(ctx context.Context, id string) (*Document, Outcome) {
	e, err := s.db.GetEmployee(ctx, id)
	if err != nil {
		return nil, outcomeFor("Employee", "loading", err)
	}
	assignments, err := s.db.ListAssignmentsForEmployee(ctx, id)
	if err != nil {
		return nil, outcomeFor("Employee", "loading", err)
	}
	e.Assignments = assignments
	data, err := s.renderer.EmployeeProfile(e)
	return s.pdf(fmt.Sprintf("employee_profile_%s.pdf", id), "Employee not found.", data, err)
}

func (s *BackOffice) EmployeeRosterPDF(ctx context.Context) (*Document, Outcome) {
	employees, err := s.db.ListEmployees(ctx)
	if err != nil {
		return nil, s.listFailed("Employee", err)
	}
	data, err := s.renderer.EmployeeRoster(employees)
	name := fmt.Sprintf("Employee_Roster_%s.pdf", s.now().Format("20060102"))
	return s.pdf(name, "No employees found to generate a report.", data, err)
}

func (s *BackOffice) SupplierProfilePDF(ctx context.Context, id string) (*Document, Outcome) {
	sp, err := s.db.GetSupplier(ctx, id)
	if err != nil {
		return nil, outcomeFor("Supplier", "loading", err)
	}
	data, err := s.renderer.SupplierProfile(sp)
	return s.pdf(fmt.Sprintf("supplier_profile_%s.pdf", id), "Supplier not found.", data, err)
}

func (s *BackOffice) SupplierRosterPDF(ctx context.Context) (*Document, Outcome) {
	suppliers, err := s.db.ListSuppliers(ctx)
	if err != nil {
		return nil, s.listFailed("Supplier", err)
	}
	data, err := s.renderer.SupplierRoster(suppliers)
	return s.pdf("supplier_roster_report.pdf", "No suppliers found to generate a report.", data, err)
}

func (s *BackOffice) MaterialProfilePDF(ctx context.Context, id string) (*Document, Outcome) {
	m, err := s.db.GetMaterial(ctx, id)
	if err != nil {
		return nil, outcomeFor("Material", "loading", err)
	}
	data, err := s.renderer.MaterialProfile(m)
	return s.pdf(fmt.Sprintf("material_%s.pdf", id), "Material not found.", data, err)
}

func (s *BackOffice) MaterialRosterPDF(ctx context.Context) (*Document, Outcome) {
	materials, err := s.db.ListMaterials(ctx)
	if err != nil {
		return nil, s.listFailed("Material", err)
	}
	data, err := s.renderer.MaterialRoster(materials)
	return s.pdf("all_materials_data.pdf", "No materials found to generate a report.", data, err)
}

// InvoicePDF prints the invoice with the same breakdown InvoiceSummary reports.
func (s *BackOffice) InvoicePDF(ctx context.Context, id string) (*Document, Outcome) {
	inv, err := s.db.GetInvoice(ctx, id)
	if err != nil {
		return nil, outcomeFor("Invoice", "loading", err)
	}
	data, err := s.renderer.Invoice(inv, s.calc.ForInvoice(inv))
	return s.pdf(fmt.Sprintf("invoice_%s.pdf", id), "Invoice not found.", data, err)
}

func (s *BackOffice) PaymentReceiptPDF(ctx context.Context, id string) (*Document, Outcome) {
	p, err := s.db.GetPayment(ctx, id)
	if err != nil {
		return nil, outcomeFor("Payment", "loading", err)
	}
	data, err := s.renderer.PaymentReceipt(p)
	return s.pdf(fmt.Sprintf("PaymentReceipt_%s.pdf", id), "Payment not found.", data, err)
}

func (s *BackOffice) MasterReportPDF(ctx context.Context) (*Document, Outcome) {
	projects, err := s.db.ListProjects(ctx)
	if err != nil {
		return nil, s.listFailed("Project", err)
	}
	clients, err := s.db.ListClients(ctx)
	if err != nil {
		return nil, s.listFailed("Client", err)
	}
	employees, err := s.db.ListEmployees(ctx)
	if err != nil {
		return nil, s.listFailed("Employee", err)
	}
	data, err := s.renderer.MasterReport(report.MasterData{Projects: projects, Clients: clients, Employees: employees})
	return s.pdf("CMS_Master_Report.pdf", "No data available for the master report.", data, err)
}

// RosterPDF dispatches on the plural entity name used by the CLI.
func (s *BackOffice) RosterPDF(ctx context.Context, entity string) (*Document, Outcome) {
	switch strings.ToLower(entity) {
	case "clients":
		return s.ClientRosterPDF(ctx)
	case "projects":
		return s.ProjectRosterPDF(ctx)
	case "employees":
		return s.EmployeeRosterPDF(ctx)
	case "suppliers":
		return s.SupplierRosterPDF(ctx)
	case "materials":
		return s.MaterialRosterPDF(ctx)
	default:
		return nil, failed(KindInvalid, fmt.Sprintf("Unknown roster %q. Choose one of clients, projects, employees, suppliers, materials.", entity))
	}
}

// Export writes every row of one entity type to an XLSX workbook.
func (s *BackOffice) Export(ctx context.Context, entity string) (*Document, Outcome) {
	entity = strings.ToLower(entity)
	var (
		data []byte
		err  error
	)
	switch entity {
	case "clients":
		var rows []*models.Client
		if rows, err = s.db.ListClients(ctx); err == nil {
			data, err = export.Clients(rows)
		}
	case "projects":
		var rows []*models.Project
		if rows, err = s.db.ListProjects(ctx); err == nil {
			data, err = export.Projects(rows)
		}
	case "employees":
		var rows []*models.Employee
		if rows, err = s.db.ListEmployees(ctx); err == nil {
			data, err = export.Employees(rows)
		}
	case "suppliers":
		var rows []*models.Supplier
		if rows, err = s.db.ListSuppliers(ctx); err == nil {
			data, err = export.Suppliers(rows)
		}
	case "materials":
		var rows []*models.Material
		if rows, err = s.db.ListMaterials(ctx); err == nil {
			data, err = export.Materials(rows)
		}
	case "services":
		var rows []*models.Service
		if rows, err = s.db.ListServices(ctx); err == nil {
			data, err = export.Services(rows)
		}
	case "invoices":
		var rows []*models.Invoice
		if rows, err = s.db.ListInvoices(ctx); err == nil {
			data, err = export.Invoices(rows)
		}
	case "payments":
		var rows []*models.Payment
		if rows, err = s.db.ListPayments(ctx); err == nil {
			data, err = export.Payments(rows)
		}
	default:
		return nil, failed(KindInvalid, fmt.Sprintf("Unknown export %q. Choose one of %s.", entity, strings.Join(export.Entities, ", ")))
	}
	if err != nil {
		s.log.Error().Err(err).Str("entity", entity).Msg("export failed")
		return nil, outcomeFor("Export", "building", err)
	}
	return &Document{FileName: export.FileName(entity), ContentType: ContentTypeXLSX, Data: data}, succeeded("")
}

// sanitizeFileName keeps letters, digits, underscores, hyphens and dots, turning spaces into underscores.
func sanitizeFileName(fileName string) string {
	var b strings.Builder
	for _, r := range fileName {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}
