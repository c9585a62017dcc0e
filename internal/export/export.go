// Package export writes entity lists as XLSX workbooks for spreadsheet users.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jesses-code-adventures/cms/internal/models"
)

// Entities lists the exportable tables in menu order.
var Entities = []string{"clients", "projects", "employees", "suppliers", "materials", "services", "invoices", "payments"}

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

func (s sheet) write() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// rename the default sheet rather than leaving an empty Sheet1 behind
	if err := f.SetSheetName("Sheet1", s.name); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"004D99"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, h := range s.headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(s.name, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", h, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err := f.SetCellStyle(s.name, "A1", last, header); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for r, row := range s.rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(s.name, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", cell, err)
			}
		}
	}

	for i, w := range s.widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(s.name, col, col, w)
	}
	if err := f.SetPanes(s.name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func str(s *string) any {
	if s == nil {
		return ""
	}
	return *s
}

func num(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}

func date(d *models.Date) any {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.String()
}

func Clients(clients []*models.Client) ([]byte, error) {
	s := sheet{
		name:    "Clients",
		headers: []string{"Client ID", "Client Name", "Contact Person", "Phone", "Email", "Address", "Client Type"},
		widths:  []float64{12, 30, 22, 16, 28, 40, 16},
	}
	for _, c := range clients {
		s.rows = append(s.rows, []any{c.ID, c.Name, str(c.ContactPerson), str(c.Phone), str(c.Email), str(c.Address), str(c.ClientType)})
	}
	return s.write()
}

func Projects(projects []*models.Project) ([]byte, error) {
	s := sheet{
		name:    "Projects",
		headers: []string{"Project ID", "Client ID", "Project Name", "Location", "Start Date", "End Date", "Status", "Budget", "Actual Cost", "Contract Value", "Description"},
		widths:  []float64{12, 12, 30, 22, 12, 12, 12, 14, 14, 16, 40},
	}
	for _, p := range projects {
		s.rows = append(s.rows, []any{p.ID, str(p.ClientID), p.Name, str(p.Location), date(p.StartDate), date(p.EndDate), str(p.Status), num(p.Budget), num(p.ActualCost), num(p.ContractValue), str(p.Description)})
	}
	return s.write()
}

func Employees(employees []*models.Employee) ([]byte, error) {
	s := sheet{
		name:    "Employees",
		headers: []string{"Employee ID", "First Name", "Last Name", "Role", "Experience (Years)", "Phone", "Email", "Hire Date", "Salary", "Status"},
		widths:  []float64{12, 16, 16, 22, 12, 16, 28, 12, 14, 12},
	}
	for _, e := range employees {
		var experience any = ""
		if e.ExperienceYears != nil {
			experience = *e.ExperienceYears
		}
		s.rows = append(s.rows, []any{e.ID, e.FirstName, e.LastName, str(e.Role), experience, str(e.ContactPhone), str(e.Email), date(e.HireDate), num(e.Salary), str(e.Status)})
	}
	return s.write()
}

func Suppliers(suppliers []*models.Supplier) ([]byte, error) {
	s := sheet{
		name:    "Suppliers",
		headers: []string{"Supplier ID", "Supplier Name", "Contact Person", "Phone", "Email", "Address", "Supplier Type"},
		widths:  []float64{12, 30, 22, 16, 28, 40, 16},
	}
	for _, sp := range suppliers {
		s.rows = append(s.rows, []any{sp.ID, sp.Name, str(sp.ContactPerson), str(sp.Phone), str(sp.Email), str(sp.Address), str(sp.SupplierType)})
	}
	return s.write()
}

func Materials(materials []*models.Material) ([]byte, error) {
	s := sheet{
		name:    "Materials",
		headers: []string{"Material ID", "Material Name", "Supplier ID", "Manufacturer", "Unit Price", "Unit of Measure", "Stock Quantity", "Description"},
		widths:  []float64{12, 28, 12, 20, 12, 14, 14, 40},
	}
	for _, m := range materials {
		s.rows = append(s.rows, []any{m.ID, m.Name, str(m.SupplierID), str(m.Manufacturer), num(m.UnitPrice), str(m.UnitOfMeasure), num(m.StockQuantity), str(m.Description)})
	}
	return s.write()
}

func Services(services []*models.Service) ([]byte, error) {
	s := sheet{
		name:    "Services",
		headers: []string{"Service ID", "Service Name", "Unit Price"},
		widths:  []float64{12, 30, 12},
	}
	for _, sv := range services {
		s.rows = append(s.rows, []any{sv.ID, sv.Name, num(sv.UnitPrice)})
	}
	return s.write()
}

func Invoices(invoices []*models.Invoice) ([]byte, error) {
	s := sheet{
		name:    "Invoices",
		headers: []string{"Invoice ID", "Project ID", "Client ID", "Client Name", "Invoice Date", "Due Date", "Bill Amount", "Amount Paid", "Status"},
		widths:  []float64{12, 12, 12, 28, 12, 12, 14, 14, 12},
	}
	for _, inv := range invoices {
		paid := inv.Paid()
		s.rows = append(s.rows, []any{inv.ID, str(inv.ProjectID), str(inv.ClientID), str(inv.ClientName), date(inv.InvoiceDate), date(inv.DueDate), inv.BillAmount.InexactFloat64(), paid.InexactFloat64(), str(inv.Status)})
	}
	return s.write()
}

func Payments(payments []*models.Payment) ([]byte, error) {
	s := sheet{
		name:    "Payments",
		headers: []string{"Payment ID", "Invoice ID", "Payment Date", "Amount", "Payment Method", "Transaction ID"},
		widths:  []float64{12, 12, 20, 14, 18, 22},
	}
	for _, p := range payments {
		s.rows = append(s.rows, []any{p.ID, p.InvoiceID, p.PaymentDate.Format(models.TimestampLayout), p.Amount.InexactFloat64(), str(p.Method), str(p.TransactionID)})
	}
	return s.write()
}

// FileName is the download name for an entity export.
func FileName(entity string) string {
	return strings.ToLower(entity) + ".xlsx"
}
