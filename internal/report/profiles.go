package report

import (
	"strconv"
	"strings"

	"github.com/jesses-code-adventures/cms/internal/models"
)

var assignmentsTable = table{
	columns: []column{
		{header: "Project ID", width: 25},
		{header: "Client ID", width: 25},
		{header: "Role", width: 55},
		{header: "Start Date", width: 45, align: "C"},
		{header: "End Date", width: 40, align: "C"},
	},
	rowHeight: 7,
	fontSize:  9,
}

var financialTable = table{
	columns: []column{
		{header: "FINANCIAL METRIC", width: 110},
		{header: "VALUE", width: 80, align: "R"},
	},
	rowHeight: 8,
	fontSize:  10,
}

func (r *Renderer) ClientProfile(c *models.Client) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return r.output(r.clientProfile(c))
}

func (r *Renderer) clientProfile(c *models.Client) *doc {
	d := r.newDoc("Client Profile " + c.ID)
	r.reportFooter(d)
	d.AddPage()
	r.brandHeader(d, "Client Profile Report", 20)

	d.title("CLIENT: "+strings.ToUpper(c.Name), 14)
	d.detailRow("Client ID", c.ID)
	d.detailRow("Contact Person", orNA(c.ContactPerson))
	d.detailRow("Phone", orNA(c.Phone))
	d.detailRow("Email", orNA(c.Email))
	d.detailRow("Client Type", orNA(c.ClientType))
	d.detailBlock("Address", orNA(c.Address))
	return d
}

func (r *Renderer) ProjectProfile(p *models.Project) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return r.output(r.projectProfile(p))
}

func (r *Renderer) projectProfile(p *models.Project) *doc {
	d := r.newDoc("Project Profile " + p.ID)
	r.reportFooter(d)
	d.AddPage()
	r.brandHeader(d, "Project Profile Report", 20)

	d.title("PROJECT: "+strings.ToUpper(p.Name), 14)
	d.detailRow("Project ID", p.ID)
	d.detailRow("Client ID", orNA(p.ClientID))
	d.detailRow("Location", orNA(p.Location))
	d.detailRow("Status", orNA(p.Status))
	d.detailRow("Start Date", dateOrNA(p.StartDate))
	d.detailRow("End Date", dateOrNA(p.EndDate))

	d.Ln(6)
	d.drawTable(financialTable, [][]string{
		{"Contract Value", moneyOrNA(p.ContractValue)},
		{"Budget", moneyOrNA(p.Budget)},
		{"Actual Cost", moneyOrNA(p.ActualCost)},
	})

	d.detailBlock("Description", orNA(p.Description))
	return d
}

func (r *Renderer) EmployeeProfile(e *models.Employee) ([]byte, error) {
	if e == nil {
		return nil, nil
	}
	return r.output(r.employeeProfile(e))
}

func (r *Renderer) employeeProfile(e *models.Employee) *doc {
	d := r.newDoc("Employee Profile " + e.ID)
	r.reportFooter(d)
	d.AddPage()
	r.brandHeader(d, "Employee Profile Report", 20)

	experience := notAvailable
	if e.ExperienceYears != nil {
		experience = strconv.Itoa(*e.ExperienceYears) + " years"
	}

	d.title("EMPLOYEE: "+strings.ToUpper(e.FullName()), 14)
	d.detailRow("Employee ID", e.ID)
	d.detailRow("Role", orNA(e.Role))
	d.detailRow("Status", orNA(e.Status))
	d.detailRow("Experience", experience)
	d.detailRow("Phone", orNA(e.ContactPhone))
	d.detailRow("Email", orNA(e.Email))
	d.detailRow("Hire Date", dateOrNA(e.HireDate))
	d.detailRow("Salary", moneyOrNA(e.Salary))

	d.Ln(8)
	d.title("Project Assignments", 12)
	if len(e.Assignments) == 0 {
		d.SetFont("Arial", "I", 10)
		d.cell(0, 8, "No current or past project assignments found.", "0", 1, "L", false)
		return d
	}
	rows := make([][]string, 0, len(e.Assignments))
	for _, a := range e.Assignments {
		rows = append(rows, []string{a.ProjectID, orNA(a.ClientID), orNA(a.Role), dateOrNA(a.StartDate), dateOrNA(a.EndDate)})
	}
	d.drawTable(assignmentsTable, rows)
	return d
}

func (r *Renderer) SupplierProfile(s *models.Supplier) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return r.output(r.supplierProfile(s))
}

func (r *Renderer) supplierProfile(s *models.Supplier) *doc {
	d := r.newDoc("Supplier Profile " + s.ID)
	r.reportFooter(d)
	d.AddPage()
	r.brandHeader(d, "Supplier Profile Report", 20)

	d.title("SUPPLIER: "+strings.ToUpper(s.Name), 14)
	d.detailRow("Supplier ID", s.ID)
	d.detailRow("Contact Person", orNA(s.ContactPerson))
	d.detailRow("Phone", orNA(s.Phone))
	d.detailRow("Email", orNA(s.Email))
	d.detailRow("Supplier Type", orNA(s.SupplierType))
	d.detailBlock("Address", orNA(s.Address))
	return d
}

func (r *Renderer) MaterialProfile(m *models.Material) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return r.output(r.materialProfile(m))
}

func (r *Renderer) materialProfile(m *models.Material) *doc {
	d := r.newDoc("Material Profile " + m.ID)
	r.reportFooter(d)
	d.AddPage()
	r.brandHeader(d, "Material Profile Report", 20)

	d.title("MATERIAL: "+strings.ToUpper(m.Name), 14)
	d.detailRow("Material ID", m.ID)
	d.detailRow("Supplier ID", orNA(m.SupplierID))
	d.detailRow("Manufacturer", orNA(m.Manufacturer))
	d.detailRow("Unit Price", moneyOrNA(m.UnitPrice))
	d.detailRow("Unit of Measure", orNA(m.UnitOfMeasure))
	d.detailRow("Stock Quantity", decimalOrNA(m.StockQuantity))
	d.detailBlock("Description", orNA(m.Description))
	return d
}
