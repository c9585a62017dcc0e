package report

import (
	"fmt"

	"github.com/jesses-code-adventures/cms/internal/models"
)

// MasterData is the snapshot summarised by the master report.
type MasterData struct {
	Projects  []*models.Project
	Clients   []*models.Client
	Employees []*models.Employee
}

func (m MasterData) empty() bool {
	return len(m.Projects) == 0 && len(m.Clients) == 0 && len(m.Employees) == 0
}

var (
	masterProjectsTable = table{
		columns: []column{
			{header: "ID", width: 25, align: "C"},
			{header: "Project Name", width: 65},
			{header: "Client ID", width: 30, align: "C"},
			{header: "Status", width: 30},
			{header: "Contract Value", width: 40, align: "R"},
		},
		rowHeight: 7,
		fontSize:  9,
	}

	masterClientsTable = table{
		columns: []column{
			{header: "ID", width: 25, align: "C"},
			{header: "Client Name", width: 65},
			{header: "Contact Person", width: 50},
			{header: "Phone", width: 50},
		},
		rowHeight: 7,
		fontSize:  9,
	}

	masterEmployeesTable = table{
		columns: []column{
			{header: "ID", width: 25, align: "C"},
			{header: "Full Name", width: 65},
			{header: "Role", width: 55},
			{header: "Status", width: 45},
		},
		rowHeight: 7,
		fontSize:  9,
	}
)

func (r *Renderer) MasterReport(data MasterData) ([]byte, error) {
	if data.empty() {
		return nil, nil
	}
	return r.output(r.masterReport(data))
}

func (r *Renderer) masterReport(data MasterData) *doc {
	d := r.newDoc("CMS Master Report")
	r.reportFooter(d)
	d.AddPage()
	r.brandHeader(d, "Comprehensive CMS Master Report", 22)

	d.SetFont("Arial", "", 10)
	d.cell(0, 6, "Generated: "+r.now().Format("02 January 2006 15:04"), "0", 1, "L", false)
	d.cell(0, 6, fmt.Sprintf("Projects: %d    Clients: %d    Employees: %d",
		len(data.Projects), len(data.Clients), len(data.Employees)), "0", 1, "L", false)
	d.Ln(4)

	projectRows := make([][]string, 0, len(data.Projects))
	for _, p := range data.Projects {
		projectRows = append(projectRows, []string{p.ID, p.Name, orNA(p.ClientID), orNA(p.Status), moneyOrNA(p.ContractValue)})
	}
	masterSection(d, "1. Projects Overview", masterProjectsTable, projectRows, "No active project data found.")

	clientRows := make([][]string, 0, len(data.Clients))
	for _, c := range data.Clients {
		clientRows = append(clientRows, []string{c.ID, c.Name, orNA(c.ContactPerson), orNA(c.Phone)})
	}
	masterSection(d, "2. Clients Summary", masterClientsTable, clientRows, "No client data found.")

	employeeRows := make([][]string, 0, len(data.Employees))
	for _, e := range data.Employees {
		employeeRows = append(employeeRows, []string{e.ID, textOrNA(e.FullName()), orNA(e.Role), orNA(e.Status)})
	}
	masterSection(d, "3. Employee Roster", masterEmployeesTable, employeeRows, "No employee data found.")
	return d
}

func masterSection(d *doc, heading string, t table, rows [][]string, emptyText string) {
	// keep a heading together with at least its table header and first row
	if d.GetY()+30 > pageBottom {
		d.AddPage()
	}
	d.Ln(4)
	d.title(heading, 13)
	if len(rows) == 0 {
		d.SetFont("Arial", "I", 10)
		d.cell(0, 8, emptyText, "0", 1, "L", false)
		return
	}
	d.drawTable(t, rows)
}
