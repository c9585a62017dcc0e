package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
}

func testCompany() config.Company {
	return config.Company{
		Name:         "OM Enterprises",
		Owner:        "LAXMAN A. GHARAT",
		AddressLines: []string{"S.V Road, Shanti Nagar,", "Dahisar (East), Mumbai- 400068"},
		Phone:        "9594105903",
		Email:        "accounts@example.com",
		BankName:     "Apna Sahakari Bank Ltd",
		BankAccount:  "014012xxxx177",
		BankIFSC:     "ASBI0000014",
		PaymentTerms: "Payment within 7 days of submission of bill.",
	}
}

func newTestRenderer(logoPath string) *Renderer {
	return New(Options{
		Company:  testCompany(),
		LogoPath: logoPath,
		Now:      fixedNow,
	})
}

// shown reports whether txt was drawn as a text run in an uncompressed PDF.
func shown(pdf []byte, txt string) bool {
	return bytes.Contains(pdf, []byte("("+txt+") Tj"))
}

func testInvoice() *models.Invoice {
	paid := decimal.RequireFromString("160000.00")
	return &models.Invoice{
		ID:            "INV_001",
		ProjectID:     utils.ToPtr("P_001"),
		ClientID:      utils.ToPtr("C_001"),
		InvoiceDate:   &models.Date{Time: time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC)},
		DueDate:       &models.Date{Time: time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)},
		BillAmount:    decimal.RequireFromString("160000.00"),
		AmountPaid:    paid,
		Status:        utils.ToPtr("Paid"),
		ClientName:    utils.ToPtr("Gharat Builders"),
		ClientAddress: utils.ToPtr("12, Station Road, Thane"),
		PaymentsTotal: &paid,
	}
}

func TestEmptyInputRendersNothing(t *testing.T) {
	r := newTestRenderer("")
	b := billing.NewCalculator(billing.DefaultTaxRate, decimal.Zero).Calculate(decimal.Zero, decimal.Zero)

	renders := map[string]func() ([]byte, error){
		"client profile":   func() ([]byte, error) { return r.ClientProfile(nil) },
		"project profile":  func() ([]byte, error) { return r.ProjectProfile(nil) },
		"employee profile": func() ([]byte, error) { return r.EmployeeProfile(nil) },
		"supplier profile": func() ([]byte, error) { return r.SupplierProfile(nil) },
		"material profile": func() ([]byte, error) { return r.MaterialProfile(nil) },
		"client roster":    func() ([]byte, error) { return r.ClientRoster(nil) },
		"project roster":   func() ([]byte, error) { return r.ProjectRoster(nil) },
		"employee roster":  func() ([]byte, error) { return r.EmployeeRoster([]*models.Employee{}) },
		"supplier roster":  func() ([]byte, error) { return r.SupplierRoster(nil) },
		"material roster":  func() ([]byte, error) { return r.MaterialRoster(nil) },
		"invoice":          func() ([]byte, error) { return r.Invoice(nil, b) },
		"receipt":          func() ([]byte, error) { return r.PaymentReceipt(nil) },
		"master":           func() ([]byte, error) { return r.MasterReport(MasterData{}) },
	}
	for name, render := range renders {
		t.Run(name, func(t *testing.T) {
			out, err := render()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != nil {
				t.Errorf("expected no document, got %d bytes", len(out))
			}
		})
	}
}

func TestTableWidthsFillPrintableArea(t *testing.T) {
	tables := map[string]table{
		"clients":          clientRosterTable,
		"projects":         projectRosterTable,
		"employees":        employeeRosterTable,
		"suppliers":        supplierRosterTable,
		"materials":        materialRosterTable,
		"assignments":      assignmentsTable,
		"line items":       lineItemTable,
		"master projects":  masterProjectsTable,
		"master clients":   masterClientsTable,
		"master employees": masterEmployeesTable,
		"financials":       financialTable,
	}
	for name, tbl := range tables {
		if tbl.width() != printableWidth {
			t.Errorf("%s table is %.1fmm wide, expected %.1fmm", name, tbl.width(), printableWidth)
		}
	}
}

func TestRosterPaginatesAndRepeatsHeader(t *testing.T) {
	r := newTestRenderer("")

	clients := make([]*models.Client, 100)
	for i := range clients {
		clients[i] = &models.Client{
			ID:   fmt.Sprintf("C_%03d", i+1),
			Name: fmt.Sprintf("Client %03d", i+1),
		}
	}

	d := r.clientRoster(clients)
	pages := d.PageCount()
	if pages < 2 {
		t.Fatalf("expected the roster to span several pages, got %d", pages)
	}
	out, err := r.output(d)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if headers := bytes.Count(out, []byte("(Contact Person) Tj")); headers != pages {
		t.Errorf("expected a header row on each of %d pages, found %d", pages, headers)
	}

	last := -1
	for i := range clients {
		idx := bytes.Index(out, []byte("("+clients[i].Name+") Tj"))
		if idx < 0 {
			t.Fatalf("row %s missing from output", clients[i].Name)
		}
		if idx < last {
			t.Fatalf("row %s printed out of order", clients[i].Name)
		}
		last = idx
	}
}

func TestAbsentValuesRenderAsNA(t *testing.T) {
	r := newTestRenderer("")
	out, err := r.ClientProfile(&models.Client{ID: "C_001", Name: "Gharat Builders"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
	if !shown(out, "C_001") {
		t.Error("expected client id in profile")
	}
	if n := bytes.Count(out, []byte("(N/A) Tj")); n < 5 {
		t.Errorf("expected every absent field to print N/A, found %d", n)
	}
}

func TestEmployeeProfileAssignments(t *testing.T) {
	r := newTestRenderer("")
	employee := &models.Employee{ID: "E_001", FirstName: "Bharat", LastName: "Gharat", Role: utils.ToPtr("Project Manager")}

	t.Run("without assignments", func(t *testing.T) {
		out, err := r.EmployeeProfile(employee)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if !shown(out, "No current or past project assignments found.") {
			t.Error("expected empty assignments message")
		}
	})

	t.Run("with assignments", func(t *testing.T) {
		withAssignments := *employee
		withAssignments.Assignments = []*models.Assignment{
			{ProjectID: "P_001", EmployeeID: "E_001", ClientID: utils.ToPtr("C_001"), Role: utils.ToPtr("Site Lead")},
		}
		out, err := r.EmployeeProfile(&withAssignments)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if !shown(out, "P_001") || !shown(out, "Site Lead") {
			t.Error("expected assignment row")
		}
		if shown(out, "No current or past project assignments found.") {
			t.Error("did not expect empty assignments message")
		}
	})
}

func TestInvoicePrintsCalculatedSummary(t *testing.T) {
	r := newTestRenderer(filepath.Join(t.TempDir(), "missing.jpg"))
	inv := testInvoice()
	b := billing.NewCalculator(billing.DefaultTaxRate, decimal.Zero).ForInvoice(inv)

	out, err := r.Invoice(inv, b)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"INV_001",
		"PAID",
		"Bill To Party",
		"Add: CGST @9.00% Rs.",
		"14400.00",
		"28800.00",
		"188800.00",
		"BALANCE DUE",
		"AUTHORISED SIGNATORY.",
	} {
		if !shown(out, want) {
			t.Errorf("expected %q in invoice", want)
		}
	}
	if !bytes.Contains(out, []byte("LOGO PLACEHOLDER")) {
		t.Error("expected logo placeholder when the logo file is missing")
	}
}

func TestInvoiceLogo(t *testing.T) {
	dir := t.TempDir()
	inv := testInvoice()
	b := billing.NewCalculator(billing.DefaultTaxRate, decimal.Zero).ForInvoice(inv)

	t.Run("undecodable logo falls back", func(t *testing.T) {
		path := filepath.Join(dir, "broken.png")
		if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
			t.Fatal(err)
		}
		out, err := newTestRenderer(path).Invoice(inv, b)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if !bytes.Contains(out, []byte("LOGO PLACEHOLDER")) {
			t.Error("expected placeholder for an undecodable logo")
		}
	})

	t.Run("valid logo is embedded", func(t *testing.T) {
		path := filepath.Join(dir, "logo.png")
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		for x := 0; x < 8; x++ {
			for y := 0; y < 8; y++ {
				img.Set(x, y, color.NRGBA{R: 0, G: 77, B: 153, A: 255})
			}
		}
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()

		out, err := newTestRenderer(path).Invoice(inv, b)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if bytes.Contains(out, []byte("LOGO PLACEHOLDER")) {
			t.Error("did not expect placeholder with a valid logo")
		}
		if !bytes.Contains(out, []byte("/Subtype /Image")) {
			t.Error("expected an embedded image")
		}
	})
}

func TestRenderingIsDeterministic(t *testing.T) {
	inv := testInvoice()
	b := billing.NewCalculator(billing.DefaultTaxRate, decimal.RequireFromString("0.58")).ForInvoice(inv)

	for _, compress := range []bool{false, true} {
		r := New(Options{Company: testCompany(), Now: fixedNow, Compress: compress})
		first, err := r.Invoice(inv, b)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		second, err := r.Invoice(inv, b)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("compress=%v: renders differ", compress)
		}
	}
}

func TestPaymentReceipt(t *testing.T) {
	r := newTestRenderer("")
	out, err := r.PaymentReceipt(&models.Payment{
		ID:            "PY_001",
		InvoiceID:     "INV_001",
		PaymentDate:   time.Date(2024, 5, 10, 10, 30, 0, 0, time.UTC),
		Amount:        decimal.RequireFromString("160000"),
		Method:        utils.ToPtr("Bank Transfer"),
		TransactionID: utils.ToPtr("TRN123456789"),
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"PAYMENT RECEIPT",
		"Receipt Date: 15 October 2026",
		"2024-05-10 10:30:00",
		"TRN123456789",
		"Rs. 160,000.00",
		"Finance Department",
		receiptFooterText,
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("expected %q in receipt", want)
		}
	}
}

func TestMasterReportSections(t *testing.T) {
	r := newTestRenderer("")
	out, err := r.MasterReport(MasterData{
		Clients: []*models.Client{{ID: "C_001", Name: "Gharat Builders", Phone: utils.ToPtr("9820000000")}},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"1. Projects Overview",
		"No active project data found.",
		"2. Clients Summary",
		"Gharat Builders",
		"3. Employee Roster",
		"No employee data found.",
	} {
		if !shown(out, want) {
			t.Errorf("expected %q in master report", want)
		}
	}
	if shown(out, "No client data found.") {
		t.Error("client section should list rows")
	}
}

func TestFitTruncatesLongText(t *testing.T) {
	r := newTestRenderer("")
	d := r.newDoc("fit")
	d.AddPage()
	d.SetFont("Arial", "", 9)

	if got := d.fit("Short", 40); got != "Short" {
		t.Errorf("expected short text untouched, got %q", got)
	}
	long := strings.Repeat("Acrylic Emulsion ", 10)
	got := d.fit(long, 40)
	if !strings.HasSuffix(got, "..") {
		t.Errorf("expected truncation marker, got %q", got)
	}
	if w := d.GetStringWidth(got); w > 40 {
		t.Errorf("truncated text is %.1fmm wide", w)
	}
}

func TestGroupedMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"160000", "Rs. 160,000.00"},
		{"999.5", "Rs. 999.50"},
		{"1234567.891", "Rs. 1,234,567.89"},
		{"12345678901234567.89", "Rs. 12,345,678,901,234,567.89"},
		{"-28800.005", "Rs. -28,800.01"},
		{"0", "Rs. 0.00"},
	}
	for _, tt := range tests {
		if got := groupedMoney(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("groupedMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProjectProfileFinancialsCarryCurrency(t *testing.T) {
	r := newTestRenderer("")
	out, err := r.ProjectProfile(&models.Project{
		ID:            "P_001",
		Name:          "Building Exterior Repainting",
		ContractValue: utils.ToPtr(decimal.RequireFromString("160000")),
		Budget:        utils.ToPtr(decimal.RequireFromString("150000.5")),
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"Rs. 160000.00", "Rs. 150000.50", "N/A"} {
		if !shown(out, want) {
			t.Errorf("expected %q in project profile", want)
		}
	}
	if shown(out, "160000.00") {
		t.Error("contract value printed without currency prefix")
	}
}
