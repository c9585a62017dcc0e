package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/database"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/report"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
}

func newTestService(t *testing.T) *BackOffice {
	t.Helper()
	cfg := &config.Config{
		DatabaseURL:    filepath.Join(t.TempDir(), "test.db"),
		DatabaseDriver: "sqlite3",
	}
	db, err := database.NewDB(cfg)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	renderer := report.New(report.Options{
		Company: config.Company{Name: "OM Enterprises", Owner: "LAXMAN A. GHARAT"},
		Now:     fixedNow,
	})
	svc := NewBackOffice(db, renderer, billing.NewCalculator(billing.DefaultTaxRate, decimal.Zero))
	svc.now = fixedNow
	return svc
}

func TestAddAndDeleteOutcomes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	client, outcome := svc.AddClient(ctx, &models.Client{Name: "Gharat Builders"})
	if !outcome.Success || outcome.Kind != KindOK || outcome.Message != "Client added successfully!" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if client.ID != "C_001" {
		t.Errorf("expected C_001, got %s", client.ID)
	}

	outcome = svc.DeleteClient(ctx, "C_001")
	if !outcome.Success || outcome.Message != "Client deleted successfully!" {
		t.Errorf("unexpected outcome: %+v", outcome)
	}

	outcome = svc.DeleteClient(ctx, "C_001")
	if outcome.Success || outcome.Kind != KindNotFound || outcome.Message != "Client not found." {
		t.Errorf("expected not found, got %+v", outcome)
	}
}

func TestMissingRequiredFieldIsInvalid(t *testing.T) {
	svc := newTestService(t)

	_, outcome := svc.AddClient(context.Background(), &models.Client{})
	if outcome.Kind != KindInvalid || outcome.Message != "Client Name is a required field." {
		t.Errorf("unexpected outcome: %+v", outcome)
	}

	_, outcome = svc.AddEmployee(context.Background(), &models.Employee{FirstName: "Datta"})
	if outcome.Kind != KindInvalid || outcome.Message != "Last Name is a required field." {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
}

func TestConstraintErrorPassesDatabaseText(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	outcome := svc.AssignEmployee(ctx, &models.Assignment{ProjectID: "P_404", EmployeeID: "E_404"})
	if outcome.Kind != KindFailed {
		t.Fatalf("expected failure, got %+v", outcome)
	}
	if !strings.Contains(strings.ToLower(outcome.Message), "constraint") {
		t.Errorf("expected database error text, got %q", outcome.Message)
	}
}

func TestGenerateInvoiceDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	client, _ := svc.AddClient(ctx, &models.Client{Name: "Gharat Builders"})
	project, outcome := svc.AddProject(ctx, &models.Project{Name: "Repainting", ClientID: &client.ID})
	if !outcome.Success {
		t.Fatalf("project create failed: %+v", outcome)
	}

	inv, outcome := svc.GenerateInvoice(ctx, &models.Invoice{ProjectID: &project.ID, BillAmount: decimal.RequireFromString("1000")})
	if !outcome.Success || outcome.Message != "Invoice generated successfully!" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if utils.FromPtr(inv.ClientID) != client.ID {
		t.Errorf("expected client from project, got %v", inv.ClientID)
	}
	if utils.FromPtr(inv.Status) != "Pending" {
		t.Errorf("expected Pending, got %v", inv.Status)
	}
	if inv.InvoiceDate.String() != "2026-10-15" || inv.DueDate.String() != "2026-11-14" {
		t.Errorf("unexpected dates %s / %s", inv.InvoiceDate, inv.DueDate)
	}
}

func TestRecordPaymentReconcilesOnRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inv, _ := svc.GenerateInvoice(ctx, &models.Invoice{BillAmount: decimal.RequireFromString("160000")})

	_, outcome := svc.RecordPayment(ctx, &models.Payment{InvoiceID: "INV_404", Amount: decimal.NewFromInt(10)})
	if outcome.Kind != KindNotFound || outcome.Message != "Invoice not found." {
		t.Errorf("expected missing invoice, got %+v", outcome)
	}
	_, outcome = svc.RecordPayment(ctx, &models.Payment{InvoiceID: inv.ID})
	if outcome.Kind != KindInvalid {
		t.Errorf("expected zero amount to be invalid, got %+v", outcome)
	}

	for _, amount := range []string{"100000", "60000"} {
		if _, outcome := svc.RecordPayment(ctx, &models.Payment{InvoiceID: inv.ID, Amount: decimal.RequireFromString(amount)}); !outcome.Success {
			t.Fatalf("payment failed: %+v", outcome)
		}
	}

	summary, outcome := svc.InvoiceSummary(ctx, inv.ID)
	if !outcome.Success {
		t.Fatalf("summary failed: %+v", outcome)
	}
	b := summary.Breakdown
	if !b.FinalTotal.Equal(decimal.RequireFromString("188800")) {
		t.Errorf("expected final total 188800, got %s", b.FinalTotal)
	}
	if !b.AmountPaid.Equal(decimal.RequireFromString("160000")) {
		t.Errorf("expected payments to sum to 160000, got %s", b.AmountPaid)
	}
	if !b.BalanceDue.Equal(decimal.RequireFromString("28800")) {
		t.Errorf("expected balance 28800, got %s", b.BalanceDue)
	}
}

func TestDocuments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("roster with no rows has nothing to render", func(t *testing.T) {
		doc, outcome := svc.ClientRosterPDF(ctx)
		if doc != nil || outcome.Kind != KindNothingToRender {
			t.Errorf("expected nothing to render, got %+v", outcome)
		}
		doc, outcome = svc.MasterReportPDF(ctx)
		if doc != nil || outcome.Kind != KindNothingToRender {
			t.Errorf("expected nothing to render, got %+v", outcome)
		}
	})

	t.Run("missing profile is not found", func(t *testing.T) {
		_, outcome := svc.ClientProfilePDF(ctx, "C_404")
		if outcome.Kind != KindNotFound || outcome.Message != "Client not found." {
			t.Errorf("unexpected outcome: %+v", outcome)
		}
	})

	seeded, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	tests := []struct {
		name   string
		render func() (*Document, Outcome)
		file   string
	}{
		{"client profile", func() (*Document, Outcome) { return svc.ClientProfilePDF(ctx, seeded.ClientID) }, "client_profile_C_001.pdf"},
		{"client roster", func() (*Document, Outcome) { return svc.ClientRosterPDF(ctx) }, "client_roster_report.pdf"},
		{"employee profile", func() (*Document, Outcome) { return svc.EmployeeProfilePDF(ctx, "E_001") }, "employee_profile_E_001.pdf"},
		{"employee roster", func() (*Document, Outcome) { return svc.EmployeeRosterPDF(ctx) }, "Employee_Roster_20261015.pdf"},
		{"material profile", func() (*Document, Outcome) { return svc.MaterialProfilePDF(ctx, seeded.MaterialID) }, "material_M_001.pdf"},
		{"material roster", func() (*Document, Outcome) { return svc.MaterialRosterPDF(ctx) }, "all_materials_data.pdf"},
		{"invoice", func() (*Document, Outcome) { return svc.InvoicePDF(ctx, seeded.InvoiceID) }, "invoice_INV_001.pdf"},
		{"receipt", func() (*Document, Outcome) { return svc.PaymentReceiptPDF(ctx, seeded.PaymentID) }, "PaymentReceipt_PY_001.pdf"},
		{"master", func() (*Document, Outcome) { return svc.MasterReportPDF(ctx) }, "CMS_Master_Report.pdf"},
		{"supplier roster", func() (*Document, Outcome) { return svc.RosterPDF(ctx, "suppliers") }, "supplier_roster_report.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, outcome := tt.render()
			if !outcome.Success {
				t.Fatalf("render failed: %+v", outcome)
			}
			if doc.FileName != tt.file {
				t.Errorf("expected %s, got %s", tt.file, doc.FileName)
			}
			if doc.ContentType != ContentTypePDF || !bytes.HasPrefix(doc.Data, []byte("%PDF-")) {
				t.Error("expected a PDF document")
			}
		})
	}

	t.Run("employee profile lists assignments", func(t *testing.T) {
		doc, _ := svc.EmployeeProfilePDF(ctx, "E_001")
		if !bytes.Contains(doc.Data, []byte("("+seeded.ProjectID+") Tj")) {
			t.Error("expected the seeded assignment in the profile")
		}
	})

	t.Run("unknown roster is invalid", func(t *testing.T) {
		if _, outcome := svc.RosterPDF(ctx, "widgets"); outcome.Kind != KindInvalid {
			t.Errorf("expected invalid, got %+v", outcome)
		}
	})
}

func TestExport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	doc, outcome := svc.Export(ctx, "Employees")
	if !outcome.Success {
		t.Fatalf("export failed: %+v", outcome)
	}
	if doc.FileName != "employees.xlsx" || doc.ContentType != ContentTypeXLSX {
		t.Errorf("unexpected document %s %s", doc.FileName, doc.ContentType)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(doc.Data, []byte("PK")) {
		t.Error("expected a zip container")
	}

	if _, outcome := svc.Export(ctx, "widgets"); outcome.Kind != KindInvalid {
		t.Errorf("expected invalid, got %+v", outcome)
	}
}

func TestSeedOnlyRunsOnEmptyDatabase(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(res.Employees) != 7 || res.Employees[6] != "E_007" {
		t.Errorf("unexpected employees %v", res.Employees)
	}
	if res.SupplierID != "SP_001" || res.ServiceID != "S_001" || res.InvoiceID != "INV_001" || res.PaymentID != "PY_001" {
		t.Errorf("unexpected ids %+v", res)
	}

	counts, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if counts.Employees != 7 || counts.ProjectsCompleted.Count != 1 {
		t.Errorf("unexpected counts %+v", counts)
	}

	if _, err := svc.Seed(ctx); !errors.Is(err, ErrAlreadySeeded) {
		t.Errorf("expected ErrAlreadySeeded, got %v", err)
	}
}

func TestFieldLabel(t *testing.T) {
	tests := map[string]string{
		"client_name": "Client Name",
		"invoice_id":  "Invoice ID",
		"first_name":  "First Name",
	}
	for in, want := range tests {
		if got := fieldLabel(in); got != want {
			t.Errorf("fieldLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	if got := sanitizeFileName("client profile/C_001?.pdf"); got != "client_profileC_001.pdf" {
		t.Errorf("unexpected sanitized name %q", got)
	}
}

func TestOutcomeForClassifiesErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    Kind
		message string
	}{
		{"unavailable", fmt.Errorf("failed to connect: %w", database.ErrUnavailable), KindUnavailable, "Database connection failed."},
		{"not found", fmt.Errorf("failed to delete: %w", database.ErrNotFound), KindNotFound, "Supplier not found."},
		{"missing field", fmt.Errorf("failed to create supplier: %w", &database.FieldError{Field: "supplier_name"}), KindInvalid, "Supplier Name is a required field."},
		{"constraint", errors.New("UNIQUE constraint failed: suppliers.supplier_name"), KindFailed, "Error adding supplier: UNIQUE constraint failed: suppliers.supplier_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outcomeFor("Supplier", "adding", tt.err)
			if o.Success {
				t.Fatal("expected a failed outcome")
			}
			if o.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, o.Kind)
			}
			if o.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, o.Message)
			}
		})
	}
}
