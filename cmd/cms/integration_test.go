package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/database"
	"github.com/jesses-code-adventures/cms/internal/logger"
	"github.com/jesses-code-adventures/cms/internal/report"
	"github.com/jesses-code-adventures/cms/internal/service"
)

func TestIntegrationCmsCommands(t *testing.T) {
	logger.Disable()
	tempDir := t.TempDir()

	cfg := &config.Config{
		DatabaseURL:    filepath.Join(tempDir, "test.db"),
		DatabaseDriver: "sqlite3",
		DatabaseName:   "test",
		TaxRate:        billing.DefaultTaxRate,
		RoundOff:       decimal.Zero,
		DevMode:        true,
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	renderer := report.New(report.Options{
		Company: config.Company{Name: "OM Enterprises"},
		Now:     func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) },
	})
	a := &app{
		cfg: cfg,
		db:  db,
		svc: service.NewBackOffice(db, renderer, billing.NewCalculator(cfg.TaxRate, cfg.RoundOff)),
	}

	t.Run("Cms Seed", func(t *testing.T) {
		output := execute(t, a, ctx, nil, "seed")
		if !strings.Contains(output, "Seeded sample records") || !strings.Contains(output, "INV_001") {
			t.Errorf("Expected seed summary in output, got: %s", output)
		}

		output = execute(t, a, ctx, nil, "seed")
		if !strings.Contains(output, "nothing seeded") {
			t.Errorf("Expected second seed to be skipped, got: %s", output)
		}
	})

	t.Run("Cms Status", func(t *testing.T) {
		output := execute(t, a, ctx, nil, "status")
		if !strings.Contains(output, "Employees: 7") {
			t.Errorf("Expected seven employees, got: %s", output)
		}
		if !strings.Contains(output, "Completed projects: 1 (Building Exterior Repainting)") {
			t.Errorf("Expected the completed project, got: %s", output)
		}
	})

	t.Run("Cms Clients", func(t *testing.T) {
		output := execute(t, a, ctx, nil, "clients", "add", "--name", "Gharat Builders", "--contact", "Suresh")
		if !strings.Contains(output, "Client added successfully! (ID: C_002)") {
			t.Errorf("Expected client to be added, got: %s", output)
		}

		output = execute(t, a, ctx, nil, "clients", "list")
		if !strings.Contains(output, "C_001 - Shanti Nagar Co-op Housing Society") || !strings.Contains(output, "C_002 - Gharat Builders - Suresh") {
			t.Errorf("Expected both clients listed, got: %s", output)
		}

		if err := executeErr(a, ctx, nil, "clients", "add", "--contact", "Nobody"); err == nil || err.Error() != "Client Name is a required field." {
			t.Errorf("Expected required field error, got: %v", err)
		}
		if err := executeErr(a, ctx, nil, "clients", "delete", "C_404"); err == nil || err.Error() != "Client not found." {
			t.Errorf("Expected not found error, got: %v", err)
		}

		output = execute(t, a, ctx, nil, "clients", "delete", "C_002")
		if !strings.Contains(output, "Client deleted successfully!") {
			t.Errorf("Expected delete message, got: %s", output)
		}
	})

	t.Run("Cms Invoices", func(t *testing.T) {
		output := execute(t, a, ctx, nil, "invoices", "summary", "INV_001")
		for _, want := range []string{"Final Total: 188800.00", "Amount Paid: 160000.00", "Balance Due: 28800.00", "CGST:        14400.00"} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected %q in summary, got: %s", want, output)
			}
		}

		pdfPath := filepath.Join(tempDir, "invoice.pdf")
		execute(t, a, ctx, nil, "invoices", "pdf", "INV_001", "--output", pdfPath)
		assertFilePrefix(t, pdfPath, "%PDF")

		output = execute(t, a, ctx, nil, "invoices", "generate", "--project", "P_001", "--amount", "50,000", "--date", "2026-10-01")
		if !strings.Contains(output, "Invoice generated successfully! (ID: INV_002)") {
			t.Errorf("Expected invoice to be generated, got: %s", output)
		}
		output = execute(t, a, ctx, nil, "invoices", "list")
		if !strings.Contains(output, "INV_002 - 2026-10-01 - Shanti Nagar Co-op Housing Society - bill 50000.00 - paid 0.00 - Pending") {
			t.Errorf("Expected new invoice in list, got: %s", output)
		}
	})

	t.Run("Cms Payments", func(t *testing.T) {
		output := execute(t, a, ctx, nil, "payments", "record", "-i", "INV_002", "-a", "20000", "--date", "2026-10-10 11:00:00", "-m", "Cheque")
		if !strings.Contains(output, "Payment recorded successfully! (ID: PY_002)") {
			t.Errorf("Expected payment to be recorded, got: %s", output)
		}
		if err := executeErr(a, ctx, nil, "payments", "record", "-i", "INV_002", "-a", "0"); err == nil || err.Error() != "Amount must be greater than zero." {
			t.Errorf("Expected amount error, got: %v", err)
		}

		output = execute(t, a, ctx, nil, "payments", "list")
		if !strings.Contains(output, "PY_002 - INV_002 - 2026-10-10 11:00:00 - 20000.00 - Cheque") {
			t.Errorf("Expected payment in list, got: %s", output)
		}

		execute(t, a, ctx, nil, "payments", "receipt", "PY_001", "-o", tempDir)
		assertFilePrefix(t, filepath.Join(tempDir, "PaymentReceipt_PY_001.pdf"), "%PDF")
	})

	t.Run("Cms Reports", func(t *testing.T) {
		execute(t, a, ctx, nil, "report", "master", "-o", tempDir)
		assertFilePrefix(t, filepath.Join(tempDir, "CMS_Master_Report.pdf"), "%PDF")

		rosterPath := filepath.Join(tempDir, "employees.pdf")
		execute(t, a, ctx, nil, "report", "roster", "employees", "-o", rosterPath)
		assertFilePrefix(t, rosterPath, "%PDF")

		if err := executeErr(a, ctx, nil, "report", "roster", "widgets"); err == nil {
			t.Error("Expected unknown roster to fail")
		}
	})

	t.Run("Cms Export", func(t *testing.T) {
		execute(t, a, ctx, nil, "export", "payments", "-o", tempDir)
		// XLSX files are zip archives.
		assertFilePrefix(t, filepath.Join(tempDir, "payments.xlsx"), "PK")
	})

	t.Run("Cms Config", func(t *testing.T) {
		dbPath := filepath.Join(tempDir, "other.db")
		output := execute(t, a, ctx, nil, "config", "--db-driver", "sqlite", "--db-url", dbPath)
		if !strings.Contains(output, "Database Driver: sqlite") || !strings.Contains(output, "Database URL: "+dbPath) {
			t.Errorf("Expected flag overrides in config dump, got: %s", output)
		}
	})

	t.Run("Cms Hash Password", func(t *testing.T) {
		output := execute(t, a, ctx, nil, "hash-password", "s3cret")
		if !strings.HasPrefix(output, "$argon2id$v=19$") {
			t.Errorf("Expected an argon2id hash, got: %s", output)
		}
	})

	t.Run("Cms Db Reset", func(t *testing.T) {
		output := execute(t, a, ctx, strings.NewReader("n\n"), "db-reset")
		if !strings.Contains(output, "Database reset cancelled.") {
			t.Errorf("Expected reset to be cancelled, got: %s", output)
		}

		output = execute(t, a, ctx, nil, "db-reset", "--yes")
		if !strings.Contains(output, "Successfully recreated database") {
			t.Errorf("Expected reset message, got: %s", output)
		}
		output = execute(t, a, ctx, nil, "clients", "list")
		if !strings.Contains(output, "No clients found.") {
			t.Errorf("Expected empty database after reset, got: %s", output)
		}
	})
}

func TestServeAddrFlagIsAnOverride(t *testing.T) {
	a := &app{}
	serveCmd, _, err := newRootCmd(a).Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}
	if err := serveCmd.ParseFlags([]string{"--addr", ":9090"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if a.overrides.HTTPAddr != ":9090" {
		t.Errorf("Expected --addr to set the override, got %q", a.overrides.HTTPAddr)
	}
	if a.cfg != nil {
		t.Error("Expected config to stay unloaded until the command runs")
	}
}

// execute runs one command line on a fresh root so flag values never leak between runs.
func execute(t *testing.T, a *app, ctx context.Context, in io.Reader, args ...string) string {
	t.Helper()
	var err error
	output := captureOutput(func() {
		err = executeErr(a, ctx, in, args...)
	})
	if err != nil {
		t.Errorf("cms %s failed: %v", strings.Join(args, " "), err)
	}
	return output
}

func executeErr(a *app, ctx context.Context, in io.Reader, args ...string) error {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetErr(io.Discard)
	if in != nil {
		rootCmd.SetIn(in)
	}
	return rootCmd.ExecuteContext(ctx)
}

func assertFilePrefix(t *testing.T, path, prefix string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected %s to be written: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte(prefix)) {
		t.Errorf("Expected %s to start with %q", path, prefix)
	}
}

// Helper function to capture stdout
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf strings.Builder
	io.Copy(&buf, r)
	return buf.String()
}
