// Package report renders the back office's PDF documents: single-record
// profiles, paginated rosters, invoices, payment receipts and the master report.
//
// Every entry point returns (nil, nil) when given nothing to render.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/logger"
)

// Page geometry in millimetres for portrait A4 with 10mm side margins.
const (
	marginLeft     = 10.0
	printableWidth = 190.0
	pageBottom     = 270.0
)

const (
	footerText  = "Report Generated by CMS System"
	logoImageID = "company-logo"
)

type Options struct {
	Company  config.Company
	LogoPath string
	// Now stamps the document creation date and any printed dates.
	Now func() time.Time
	// Compress deflates page streams. Disable to inspect content in tests.
	Compress bool
}

type Renderer struct {
	opts Options
	log  zerolog.Logger
}

func New(opts Options) *Renderer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Renderer{
		opts: opts,
		log:  logger.WithComponent("report"),
	}
}

func (r *Renderer) now() time.Time {
	return r.opts.Now()
}

// doc wraps gofpdf with the UTF-8 to cp1252 translation the core fonts need.
type doc struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func (r *Renderer) newDoc(title string) *doc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 10, marginLeft)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.opts.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(r.now())
	pdf.SetTitle(title, true)
	pdf.SetAuthor(r.opts.Company.Name, true)
	pdf.SetCreator("cms", true)

	return &doc{
		Fpdf: pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (r *Renderer) output(d *doc) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *doc) cell(w, h float64, txt, border string, ln int, align string, fill bool) {
	d.CellFormat(w, h, d.tr(txt), border, ln, align, fill, 0, "")
}

func (d *doc) multi(w, h float64, txt, border, align string, fill bool) {
	d.MultiCell(w, h, d.tr(txt), border, align, fill)
}

// fit shortens txt with a trailing ".." until it fits inside a cell of width w.
func (d *doc) fit(txt string, w float64) string {
	limit := w - 2*d.GetCellMargin()
	if d.GetStringWidth(d.tr(txt)) <= limit {
		return txt
	}
	runes := []rune(txt)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimSpace(string(runes)) + ".."
		if d.GetStringWidth(d.tr(candidate)) <= limit {
			return candidate
		}
	}
	return ""
}

// brandHeader draws the blue company banner used by profiles, rosters and the master report.
func (r *Renderer) brandHeader(d *doc, subtitle string, size float64) {
	d.SetFillColor(0, 77, 153)
	d.SetTextColor(255, 255, 255)
	d.SetFont("Arial", "B", size)
	d.cell(0, 15, r.opts.Company.Name, "0", 1, "C", true)

	d.SetTextColor(0, 77, 153)
	d.SetFont("Arial", "", 10)
	d.cell(0, 6, subtitle, "0", 1, "C", false)
	d.SetTextColor(0, 0, 0)
	d.Ln(6)
}

// title prints a heading with a blue rule underneath.
func (d *doc) title(txt string, size float64) {
	d.SetTextColor(0, 0, 0)
	d.SetFont("Arial", "B", size)
	d.cell(0, 10, txt, "0", 1, "L", false)
	d.SetLineWidth(0.5)
	d.SetDrawColor(0, 77, 153)
	d.Line(marginLeft, d.GetY(), marginLeft+printableWidth, d.GetY())
	d.SetLineWidth(0.2)
	d.SetDrawColor(0, 0, 0)
	d.Ln(4)
}

func (r *Renderer) reportFooter(d *doc) {
	d.SetFooterFunc(func() {
		d.SetY(-15)
		d.SetFont("Arial", "I", 9)
		d.SetTextColor(100, 100, 100)
		d.cell(0, 10, fmt.Sprintf("%s on %s  |  Page %d", footerText, r.now().Format("2006-01-02"), d.PageNo()), "0", 0, "C", false)
		d.SetTextColor(0, 0, 0)
	})
}

// drawLogo places the configured logo. It returns false, leaving the
// document usable, when the file is missing or not a supported image.
func (r *Renderer) drawLogo(d *doc, x, y, w float64) bool {
	if r.opts.LogoPath == "" {
		return false
	}
	imageType := imageTypeFor(r.opts.LogoPath)
	if imageType == "" {
		return false
	}
	data, err := os.ReadFile(r.opts.LogoPath)
	if err != nil {
		r.log.Debug().Err(err).Str("path", r.opts.LogoPath).Msg("logo unavailable, using placeholder")
		return false
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	d.RegisterImageOptionsReader(logoImageID, opts, bytes.NewReader(data))
	if !d.Ok() {
		r.log.Warn().Err(d.Error()).Str("path", r.opts.LogoPath).Msg("logo could not be decoded, using placeholder")
		d.ClearError()
		return false
	}
	d.ImageOptions(logoImageID, x, y, w, 0, false, opts, 0, "")
	return true
}

func imageTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".png":
		return "PNG"
	case ".gif":
		return "GIF"
	default:
		return ""
	}
}
