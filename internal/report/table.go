package report

type column struct {
	header string
	width  float64
	align  string
}

type table struct {
	columns   []column
	rowHeight float64
	fontSize  float64
}

func (t table) width() float64 {
	var w float64
	for _, c := range t.columns {
		w += c.width
	}
	return w
}

func (d *doc) tableHeader(t table) {
	d.SetFont("Arial", "B", t.fontSize)
	d.SetFillColor(200, 220, 255)
	d.SetTextColor(0, 0, 0)
	for i, c := range t.columns {
		d.cell(c.width, t.rowHeight+1, c.header, "1", lineBreak(i, len(t.columns)), "C", true)
	}
}

// drawTable writes rows in order, starting a new page and repeating the
// header whenever the next row would cross the page-bottom threshold.
func (d *doc) drawTable(t table, rows [][]string) {
	d.tableHeader(t)
	d.SetFont("Arial", "", t.fontSize)
	for _, row := range rows {
		if d.GetY()+t.rowHeight > pageBottom {
			d.AddPage()
			d.tableHeader(t)
			d.SetFont("Arial", "", t.fontSize)
		}
		for i, c := range t.columns {
			var value string
			if i < len(row) {
				value = row[i]
			}
			align := c.align
			if align == "" {
				align = "L"
			}
			d.cell(c.width, t.rowHeight, d.fit(value, c.width), "1", lineBreak(i, len(t.columns)), align, false)
		}
	}
}

func lineBreak(i, n int) int {
	if i == n-1 {
		return 1
	}
	return 0
}

// detailRow prints a shaded label cell beside its value.
func (d *doc) detailRow(label, value string) {
	d.SetFont("Arial", "B", 10)
	d.SetFillColor(240, 240, 240)
	d.cell(50, 8, label, "1", 0, "L", true)
	d.SetFont("Arial", "", 10)
	d.cell(printableWidth-50, 8, d.fit(value, printableWidth-50), "1", 1, "L", false)
}

// detailBlock prints a label with wrapped free text underneath.
func (d *doc) detailBlock(label, value string) {
	d.Ln(4)
	d.SetFont("Arial", "B", 10)
	d.cell(0, 7, label, "0", 1, "L", false)
	d.SetFont("Arial", "", 10)
	d.multi(printableWidth, 6, value, "1", "L", false)
}
