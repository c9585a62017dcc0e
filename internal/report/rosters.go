package report

import (
	"fmt"

	"github.com/jesses-code-adventures/cms/internal/models"
)

var (
	clientRosterTable = table{
		columns: []column{
			{header: "ID", width: 20, align: "C"},
			{header: "Client Name", width: 50},
			{header: "Contact Person", width: 45},
			{header: "Phone", width: 35},
			{header: "Type", width: 40},
		},
		rowHeight: 7,
		fontSize:  9,
	}

	projectRosterTable = table{
		columns: []column{
			{header: "ID", width: 20, align: "C"},
			{header: "Project Name", width: 55},
			{header: "Client ID", width: 25, align: "C"},
			{header: "Status", width: 25},
			{header: "Start Date", width: 30, align: "C"},
			{header: "Contract Value", width: 35, align: "R"},
		},
		rowHeight: 7,
		fontSize:  9,
	}

	employeeRosterTable = table{
		columns: []column{
			{header: "ID", width: 15, align: "C"},
			{header: "Full Name", width: 30},
			{header: "Role", width: 30},
			{header: "Status", width: 20},
			{header: "Email", width: 40},
			{header: "Hire Date", width: 25, align: "C"},
			{header: "Salary", width: 30, align: "R"},
		},
		rowHeight: 7,
		fontSize:  8,
	}

	supplierRosterTable = table{
		columns: []column{
			{header: "ID", width: 20, align: "C"},
			{header: "Supplier Name", width: 50},
			{header: "Contact Person", width: 40},
			{header: "Phone", width: 35},
			{header: "Type", width: 45},
		},
		rowHeight: 7,
		fontSize:  9,
	}

	materialRosterTable = table{
		columns: []column{
			{header: "ID", width: 20, align: "C"},
			{header: "Material Name", width: 50},
			{header: "Manufacturer", width: 35},
			{header: "Unit Price", width: 30, align: "R"},
			{header: "Stock Qty", width: 25, align: "R"},
			{header: "Supplier ID", width: 30, align: "C"},
		},
		rowHeight: 7,
		fontSize:  9,
	}
)

func (r *Renderer) rosterDoc(title, subtitle string, count int, noun string) *doc {
	d := r.newDoc(title)
	r.reportFooter(d)
	d.AddPage()
	r.brandHeader(d, subtitle, 20)
	d.title(title, 14)
	d.SetFont("Arial", "", 10)
	d.cell(0, 6, fmt.Sprintf("Total %s: %d", noun, count), "0", 1, "L", false)
	d.Ln(2)
	return d
}

func (r *Renderer) ClientRoster(clients []*models.Client) ([]byte, error) {
	if len(clients) == 0 {
		return nil, nil
	}
	return r.output(r.clientRoster(clients))
}

func (r *Renderer) clientRoster(clients []*models.Client) *doc {
	d := r.rosterDoc("Client Roster", "Client Roster Report", len(clients), "clients")
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.ID, c.Name, orNA(c.ContactPerson), orNA(c.Phone), orNA(c.ClientType)})
	}
	d.drawTable(clientRosterTable, rows)
	return d
}

func (r *Renderer) ProjectRoster(projects []*models.Project) ([]byte, error) {
	if len(projects) == 0 {
		return nil, nil
	}
	return r.output(r.projectRoster(projects))
}

func (r *Renderer) projectRoster(projects []*models.Project) *doc {
	d := r.rosterDoc("Project Roster", "Project Roster Report", len(projects), "projects")
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.ID, p.Name, orNA(p.ClientID), orNA(p.Status), dateOrNA(p.StartDate), moneyOrNA(p.ContractValue)})
	}
	d.drawTable(projectRosterTable, rows)
	return d
}

func (r *Renderer) EmployeeRoster(employees []*models.Employee) ([]byte, error) {
	if len(employees) == 0 {
		return nil, nil
	}
	return r.output(r.employeeRoster(employees))
}

func (r *Renderer) employeeRoster(employees []*models.Employee) *doc {
	d := r.rosterDoc("Employee Roster", "Employee Roster Report", len(employees), "employees")
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{e.ID, textOrNA(e.FullName()), orNA(e.Role), orNA(e.Status), orNA(e.Email), dateOrNA(e.HireDate), moneyOrNA(e.Salary)})
	}
	d.drawTable(employeeRosterTable, rows)
	return d
}

func (r *Renderer) SupplierRoster(suppliers []*models.Supplier) ([]byte, error) {
	if len(suppliers) == 0 {
		return nil, nil
	}
	return r.output(r.supplierRoster(suppliers))
}

func (r *Renderer) supplierRoster(suppliers []*models.Supplier) *doc {
	d := r.rosterDoc("Supplier Roster", "Supplier Roster Report", len(suppliers), "suppliers")
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{s.ID, s.Name, orNA(s.ContactPerson), orNA(s.Phone), orNA(s.SupplierType)})
	}
	d.drawTable(supplierRosterTable, rows)
	return d
}

func (r *Renderer) MaterialRoster(materials []*models.Material) ([]byte, error) {
	if len(materials) == 0 {
		return nil, nil
	}
	return r.output(r.materialRoster(materials))
}

func (r *Renderer) materialRoster(materials []*models.Material) *doc {
	d := r.rosterDoc("Materials Inventory", "Material Data Report", len(materials), "materials")
	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, []string{m.ID, m.Name, orNA(m.Manufacturer), moneyOrNA(m.UnitPrice), decimalOrNA(m.StockQuantity), orNA(m.SupplierID)})
	}
	d.drawTable(materialRosterTable, rows)
	return d
}
