package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableFormatter renders report rows as a monospace table. Widths are
// display widths (runewidth), since author names can carry wide runes.
type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Month", "Morning", "Evening", "Proper",
			"Missed", "Infractions", "Alternate",
		},
	}
}

// Render serializes the rows. When full is false and the result exceeds
// budget characters, rows are dropped from the front, oldest month first,
// until the table fits or no rows remain. Whole rows only; remaining rows
// keep their order.
func (f *TableFormatter) Render(rows []Row, full bool, budget int) string {
	for {
		out := f.render(rows)
		if full || len(out) <= budget || len(rows) == 0 {
			return out
		}
		rows = rows[1:]
	}
}

func (f *TableFormatter) render(rows []Row) string {
	widths := f.calculateColumnWidths(rows)

	var b strings.Builder
	f.writeRow(&b, f.headers, widths)
	f.writeSeparator(&b, widths)
	for _, row := range rows {
		f.writeRow(&b, f.cells(row), widths)
	}
	return b.String()
}

// cells flattens a row into its column values. Header rows carry the month
// label in the first column and leave the counters blank.
func (f *TableFormatter) cells(row Row) []string {
	if row.IsHeader() {
		return []string{row.Month, "", "", "", "", "", ""}
	}
	return []string{
		row.Name,
		fmt.Sprintf("%d", row.Morning),
		fmt.Sprintf("%d", row.Evening),
		fmt.Sprintf("%d", row.Proper),
		fmt.Sprintf("%d", row.MissedDays),
		fmt.Sprintf("%d", row.Infractions),
		fmt.Sprintf("%d", row.Alternate),
	}
}

func (f *TableFormatter) calculateColumnWidths(rows []Row) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range f.cells(row) {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		pad := widths[i] - runewidth.StringWidth(cell)
		if i == 0 {
			// Month/name column is left-aligned, counters right-aligned.
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		} else {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		}
	}
	b.WriteString("\n")
}

func (f *TableFormatter) writeSeparator(b *strings.Builder, widths []int) {
	for i, width := range widths {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", width))
	}
	b.WriteString("\n")
}
