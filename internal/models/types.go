package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Client struct {
	ID            string  `json:"client_id" db:"client_id"`
	Name          string  `json:"client_name" db:"client_name"`
	ContactPerson *string `json:"contact_person,omitempty" db:"contact_person"`
	Phone         *string `json:"phone,omitempty" db:"phone"`
	Email         *string `json:"email,omitempty" db:"email"`
	Address       *string `json:"address,omitempty" db:"address"`
	ClientType    *string `json:"client_type,omitempty" db:"client_type"`
}

type Project struct {
	ID            string           `json:"project_id" db:"project_id"`
	ClientID      *string          `json:"client_id,omitempty" db:"client_id"`
	Name          string           `json:"project_name" db:"project_name"`
	Location      *string          `json:"project_location,omitempty" db:"project_location"`
	StartDate     *Date            `json:"start_date,omitempty" db:"start_date"`
	EndDate       *Date            `json:"end_date,omitempty" db:"end_date"`
	Status        *string          `json:"status,omitempty" db:"status"`
	Budget        *decimal.Decimal `json:"budget,omitempty" db:"budget"`
	ActualCost    *decimal.Decimal `json:"actual_cost,omitempty" db:"actual_cost"`
	ContractValue *decimal.Decimal `json:"contract_value,omitempty" db:"contract_value"`
	Description   *string          `json:"description,omitempty" db:"description"`
}

type Employee struct {
	ID              string           `json:"employee_id" db:"employee_id"`
	FirstName       string           `json:"first_name" db:"first_name"`
	LastName        string           `json:"last_name" db:"last_name"`
	Role            *string          `json:"role,omitempty" db:"role"`
	ExperienceYears *int             `json:"experience_years,omitempty" db:"experience_years"`
	ContactPhone    *string          `json:"contact_phone,omitempty" db:"contact_phone"`
	Email           *string          `json:"email,omitempty" db:"email"`
	HireDate        *Date            `json:"hire_date,omitempty" db:"hire_date"`
	Salary          *decimal.Decimal `json:"salary,omitempty" db:"salary"`
	Status          *string          `json:"status,omitempty" db:"status"`

	Assignments []*Assignment `json:"assignments,omitempty" db:"-"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Assignment links an employee to a project. ClientID is joined from the project.
type Assignment struct {
	ProjectID  string  `json:"project_id" db:"project_id"`
	EmployeeID string  `json:"employee_id" db:"employee_id"`
	ClientID   *string `json:"client_id,omitempty" db:"client_id"`
	Role       *string `json:"assignment_role,omitempty" db:"assignment_role"`
	StartDate  *Date   `json:"assignment_start_date,omitempty" db:"assignment_start_date"`
	EndDate    *Date   `json:"assignment_end_date,omitempty" db:"assignment_end_date"`
}

type Supplier struct {
	ID            string  `json:"supplier_id" db:"supplier_id"`
	Name          string  `json:"supplier_name" db:"supplier_name"`
	ContactPerson *string `json:"contact_person,omitempty" db:"contact_person"`
	Phone         *string `json:"phone,omitempty" db:"phone"`
	Email         *string `json:"email,omitempty" db:"email"`
	Address       *string `json:"address,omitempty" db:"address"`
	SupplierType  *string `json:"supplier_type,omitempty" db:"supplier_type"`
}

type Material struct {
	ID            string           `json:"material_id" db:"material_id"`
	Name          string           `json:"material_name" db:"material_name"`
	SupplierID    *string          `json:"supplier_id,omitempty" db:"supplier_id"`
	Manufacturer  *string          `json:"manufacturer,omitempty" db:"manufacturer"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty" db:"unit_price"`
	UnitOfMeasure *string          `json:"unit_of_measure,omitempty" db:"unit_of_measure"`
	StockQuantity *decimal.Decimal `json:"stock_quantity,omitempty" db:"stock_quantity"`
	Description   *string          `json:"description,omitempty" db:"description"`
}

type Service struct {
	ID        string           `json:"service_id" db:"service_id"`
	Name      string           `json:"service_name" db:"service_name"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty" db:"unit_price"`
}

type Invoice struct {
	ID          string          `json:"invoice_id" db:"invoice_id"`
	ProjectID   *string         `json:"project_id,omitempty" db:"project_id"`
	ClientID    *string         `json:"client_id,omitempty" db:"client_id"`
	InvoiceDate *Date           `json:"invoice_date,omitempty" db:"invoice_date"`
	DueDate     *Date           `json:"due_date,omitempty" db:"due_date"`
	BillAmount  decimal.Decimal `json:"bill_amount" db:"bill_amount"`
	AmountPaid  decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	Status      *string         `json:"status,omitempty" db:"status"`

	ClientName    *string          `json:"client_name,omitempty" db:"client_name"`
	ClientAddress *string          `json:"client_address,omitempty" db:"client_address"`
	PaymentsTotal *decimal.Decimal `json:"payments_total,omitempty" db:"payments_total"`
}

// Paid returns the sum of recorded payments when any exist, otherwise the stored amount.
func (i *Invoice) Paid() decimal.Decimal {
	if i.PaymentsTotal != nil {
		return *i.PaymentsTotal
	}
	return i.AmountPaid
}

type Payment struct {
	ID            string          `json:"payment_id" db:"payment_id"`
	InvoiceID     string          `json:"invoice_id" db:"invoice_id"`
	PaymentDate   time.Time       `json:"payment_date" db:"payment_date"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Method        *string         `json:"payment_method,omitempty" db:"payment_method"`
	TransactionID *string         `json:"transaction_id,omitempty" db:"transaction_id"`
}

// StatusSummary counts projects in one status and lists their names.
type StatusSummary struct {
	Count int    `json:"count"`
	Names string `json:"names"`
}

type DashboardCounts struct {
	Clients           int           `json:"clients"`
	Projects          int           `json:"projects"`
	Employees         int           `json:"employees"`
	Invoices          int           `json:"invoices"`
	ProjectsWorking   StatusSummary `json:"projects_working"`
	ProjectsPending   StatusSummary `json:"projects_pending"`
	ProjectsCompleted StatusSummary `json:"projects_completed"`
}

func NewUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}
