package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

func newTestDB(t *testing.T) *SQLDB {
	t.Helper()
	cfg := &config.Config{
		DatabaseURL:    filepath.Join(t.TempDir(), "test.db"),
		DatabaseDriver: "sqlite3",
	}
	db, err := NewDB(cfg)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestClientLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, err := db.CreateClient(ctx, &models.Client{Name: "Gharat Builders", ContactPerson: utils.ToPtr("Suresh")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := db.CreateClient(ctx, &models.Client{Name: "Shanti Housing"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID != "C_001" || second.ID != "C_002" {
		t.Fatalf("expected C_001 and C_002, got %s and %s", first.ID, second.ID)
	}

	got, err := db.GetClient(ctx, "C_001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Gharat Builders" || utils.FromPtr(got.ContactPerson) != "Suresh" || got.Phone != nil {
		t.Errorf("unexpected client: %+v", got)
	}

	if err := db.DeleteClient(ctx, "C_001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := db.GetClient(ctx, "C_001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// ids are never reused after a delete
	third, err := db.CreateClient(ctx, &models.Client{Name: "Third"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if third.ID != "C_003" {
		t.Errorf("expected C_003, got %s", third.ID)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.CreateClient(ctx, &models.Client{Name: "Keep Me"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deletes := map[string]func(context.Context, string) error{
		"client":   db.DeleteClient,
		"project":  db.DeleteProject,
		"employee": db.DeleteEmployee,
		"supplier": db.DeleteSupplier,
		"material": db.DeleteMaterial,
		"service":  db.DeleteService,
		"invoice":  db.DeleteInvoice,
		"payment":  db.DeletePayment,
	}
	for name, del := range deletes {
		t.Run(name, func(t *testing.T) {
			if err := del(ctx, "X_999"); !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}

	clients, err := db.ListClients(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(clients) != 1 {
		t.Errorf("expected 1 client to remain, got %d", len(clients))
	}
}

func TestConstraintErrorIsNotNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	client, err := db.CreateClient(ctx, &models.Client{Name: "Referenced"})
	if err != nil {
		t.Fatalf("create client failed: %v", err)
	}
	if _, err := db.CreateProject(ctx, &models.Project{Name: "Tower", ClientID: &client.ID}); err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	err = db.DeleteClient(ctx, client.ID)
	if err == nil {
		t.Fatal("expected foreign key error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("constraint failure reported as not found: %v", err)
	}
	if _, err := db.GetClient(ctx, client.ID); err != nil {
		t.Errorf("client should survive failed delete: %v", err)
	}
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	const n = 20
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := db.CreateService(ctx, &models.Service{Name: fmt.Sprintf("service %d", i)})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			ids <- s.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d ids, got %d", n, len(seen))
	}
}

func TestInvoicePaidAmountIsDerivedFromPayments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	client, err := db.CreateClient(ctx, &models.Client{Name: "Gharat Builders", Address: utils.ToPtr("Dahisar")})
	if err != nil {
		t.Fatalf("create client failed: %v", err)
	}
	project, err := db.CreateProject(ctx, &models.Project{Name: "Painting", ClientID: &client.ID})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	invoiceDate := models.NewDate(2024, time.April, 16)
	inv, err := db.CreateInvoice(ctx, &models.Invoice{
		ProjectID:   &project.ID,
		ClientID:    &client.ID,
		InvoiceDate: &invoiceDate,
		BillAmount:  decimal.RequireFromString("160000.00"),
		AmountPaid:  decimal.RequireFromString("5000.00"),
		Status:      utils.ToPtr("Pending"),
	})
	if err != nil {
		t.Fatalf("create invoice failed: %v", err)
	}
	if inv.ID != "INV_001" {
		t.Errorf("expected INV_001, got %s", inv.ID)
	}

	got, err := db.GetInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get invoice failed: %v", err)
	}
	if got.PaymentsTotal != nil {
		t.Errorf("expected no payments total, got %s", got.PaymentsTotal)
	}
	if !got.Paid().Equal(decimal.RequireFromString("5000")) {
		t.Errorf("expected stored paid amount, got %s", got.Paid())
	}
	if utils.FromPtr(got.ClientName) != "Gharat Builders" || utils.FromPtr(got.ClientAddress) != "Dahisar" {
		t.Errorf("expected joined client details, got %+v", got)
	}
	if got.InvoiceDate == nil || got.InvoiceDate.String() != "2024-04-16" {
		t.Errorf("unexpected invoice date %v", got.InvoiceDate)
	}

	for _, amount := range []string{"100000.00", "60000.00"} {
		if _, err := db.CreatePayment(ctx, &models.Payment{
			InvoiceID:   inv.ID,
			PaymentDate: time.Date(2024, time.May, 10, 10, 30, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString(amount),
			Method:      utils.ToPtr("Bank Transfer"),
		}); err != nil {
			t.Fatalf("record payment failed: %v", err)
		}
	}

	got, err = db.GetInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get invoice failed: %v", err)
	}
	if !got.Paid().Equal(decimal.RequireFromString("160000")) {
		t.Errorf("expected derived paid 160000, got %s", got.Paid())
	}
	if !got.AmountPaid.Equal(decimal.RequireFromString("5000")) {
		t.Errorf("stored amount_paid should be untouched, got %s", got.AmountPaid)
	}

	payment, err := db.GetPayment(ctx, "PY_002")
	if err != nil {
		t.Fatalf("get payment failed: %v", err)
	}
	if payment.PaymentDate.Format(models.TimestampLayout) != "2024-05-10 10:30:00" {
		t.Errorf("unexpected payment date %s", payment.PaymentDate)
	}
}

func TestEmployeeAssignmentsJoinClient(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	client, _ := db.CreateClient(ctx, &models.Client{Name: "Client"})
	project, err := db.CreateProject(ctx, &models.Project{Name: "Site", ClientID: &client.ID})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	hire := models.NewDate(2018, time.January, 15)
	emp, err := db.CreateEmployee(ctx, &models.Employee{
		FirstName: "Bharat",
		LastName:  "Gharat",
		Role:      utils.ToPtr("Project Manager"),
		HireDate:  &hire,
		Salary:    utils.ToPtr(decimal.NewFromInt(75000)),
	})
	if err != nil {
		t.Fatalf("create employee failed: %v", err)
	}

	start := models.NewDate(2024, time.March, 1)
	if err := db.AssignEmployee(ctx, &models.Assignment{
		ProjectID:  project.ID,
		EmployeeID: emp.ID,
		Role:       utils.ToPtr("Lead"),
		StartDate:  &start,
	}); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	assignments, err := db.ListAssignmentsForEmployee(ctx, emp.ID)
	if err != nil {
		t.Fatalf("list assignments failed: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(assignments))
	}
	a := assignments[0]
	if utils.FromPtr(a.ClientID) != client.ID || a.EndDate != nil || a.StartDate.String() != "2024-03-01" {
		t.Errorf("unexpected assignment %+v", a)
	}

	got, err := db.GetEmployee(ctx, emp.ID)
	if err != nil {
		t.Fatalf("get employee failed: %v", err)
	}
	if got.HireDate.String() != "2018-01-15" || !got.Salary.Equal(decimal.NewFromInt(75000)) {
		t.Errorf("unexpected employee %+v", got)
	}
}

func TestDashboardCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	client, _ := db.CreateClient(ctx, &models.Client{Name: "Client"})
	for _, p := range []struct{ name, status string }{
		{"Tower A", "Working"},
		{"Tower B", "Working"},
		{"Villa", "Completed"},
	} {
		if _, err := db.CreateProject(ctx, &models.Project{Name: p.name, ClientID: &client.ID, Status: utils.ToPtr(p.status)}); err != nil {
			t.Fatalf("create project failed: %v", err)
		}
	}

	counts, err := db.DashboardCounts(ctx)
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if counts.Clients != 1 || counts.Projects != 3 || counts.Employees != 0 || counts.Invoices != 0 {
		t.Errorf("unexpected totals %+v", counts)
	}
	if counts.ProjectsWorking.Count != 2 || counts.ProjectsWorking.Names != "Tower A; Tower B" {
		t.Errorf("unexpected working summary %+v", counts.ProjectsWorking)
	}
	if counts.ProjectsPending.Count != 0 || counts.ProjectsPending.Names != "None" {
		t.Errorf("unexpected pending summary %+v", counts.ProjectsPending)
	}
	if counts.ProjectsCompleted.Names != "Villa" {
		t.Errorf("unexpected completed summary %+v", counts.ProjectsCompleted)
	}
}

func TestUnreachableDatabaseIsUnavailable(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:    filepath.Join(t.TempDir(), "missing", "dir", "test.db"),
		DatabaseDriver: "sqlite3",
	}
	db, err := NewDB(cfg)
	if err == nil {
		defer db.Close()
		_, err = db.ListClients(context.Background())
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestRebindNumbersPlaceholdersForPostgres(t *testing.T) {
	pg := &SQLDB{dialect: dialectPostgres}
	got := pg.rebind("SELECT * FROM clients WHERE client_id = ? AND client_name = ?")
	want := "SELECT * FROM clients WHERE client_id = $1 AND client_name = $2"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	lite := &SQLDB{dialect: dialectSQLite}
	if q := "SELECT ?"; lite.rebind(q) != q {
		t.Errorf("sqlite query should be unchanged")
	}
}

func TestSplitStatements(t *testing.T) {
	src := "-- comment\nCREATE TABLE a (x INT);\n\nINSERT INTO a VALUES (1),\n  (2);\n-- trailing note\n"
	stmts := splitStatements(src)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(stmts), stmts)
	}
	if stmts[0] != "CREATE TABLE a (x INT)" {
		t.Errorf("unexpected first statement %q", stmts[0])
	}
}

func TestFormatID(t *testing.T) {
	tests := map[string]struct {
		prefix string
		n      int64
	}{
		"C_001":    {"C", 1},
		"SP_042":   {"SP", 42},
		"INV_1000": {"INV", 1000},
	}
	for want, tt := range tests {
		if got := FormatID(tt.prefix, tt.n); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.CreateClient(ctx, &models.Client{Name: "  "})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "client_name" {
		t.Errorf("expected client_name field error, got %v", err)
	}

	if _, err := db.CreateEmployee(ctx, &models.Employee{FirstName: "Datta"}); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for missing last name, got %v", err)
	}

	// the rejected insert must not consume a sequence value
	created, err := db.CreateClient(ctx, &models.Client{Name: "Gharat Builders"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != "C_001" {
		t.Errorf("expected C_001, got %s", created.ID)
	}
}

func TestServiceGetByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := db.CreateService(ctx, &models.Service{Name: "Interior Painting", UnitPrice: utils.ToPtr(decimal.RequireFromString("25.00"))})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != "S_001" {
		t.Fatalf("expected S_001, got %s", created.ID)
	}

	got, err := db.GetService(ctx, "S_001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Interior Painting" || got.UnitPrice == nil || !got.UnitPrice.Equal(decimal.RequireFromString("25")) {
		t.Errorf("unexpected service: %+v", got)
	}

	if _, err := db.GetService(ctx, "S_404"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	tests := []struct {
		driver, dsn, want string
	}{
		{"sqlite3", "./cms.db", "./cms.db?_foreign_keys=on"},
		{"sqlite3", "file:cms.db?cache=shared", "file:cms.db?cache=shared&_foreign_keys=on"},
		{"sqlite3", "cms.db?_foreign_keys=on", "cms.db?_foreign_keys=on"},
		{"sqlite", "./cms.db", "./cms.db?_pragma=foreign_keys(1)"},
		{"libsql", "libsql://db.example.turso.io", "libsql://db.example.turso.io"},
		{"pgx", "postgres://localhost/cms", "postgres://localhost/cms"},
	}
	for _, tt := range tests {
		if got := sqliteDSN(tt.driver, tt.dsn); got != tt.want {
			t.Errorf("sqliteDSN(%s, %s) = %q, want %q", tt.driver, tt.dsn, got, tt.want)
		}
	}
}

func TestForeignKeysSurviveConnectionRecycling(t *testing.T) {
	for _, driver := range []string{"sqlite3", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			db, err := NewDB(&config.Config{
				DatabaseURL:    filepath.Join(t.TempDir(), "test.db"),
				DatabaseDriver: driver,
			})
			if err != nil {
				t.Fatalf("Failed to create database: %v", err)
			}
			defer db.Close()

			// No idle connections: every query below runs on a fresh one.
			db.conn.SetMaxIdleConns(0)
			for i := 0; i < 3; i++ {
				var enabled int
				if err := db.conn.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
					t.Fatalf("pragma query failed: %v", err)
				}
				if enabled != 1 {
					t.Fatalf("connection %d has foreign keys off", i)
				}
			}
		})
	}
}
