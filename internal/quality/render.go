package quality

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// RenderSummary returns a colored terminal summary of the report:
// aggregate counts followed by a per-column statistics table.
func RenderSummary(r *Report) string {
	var b strings.Builder

	b.WriteString(color.Bold.Render("Data Quality Summary") + "\n")
	b.WriteString(fmt.Sprintf("  Rows: %d  Columns: %d  Duplicate rows: %d\n",
		r.TotalRows, r.TotalColumns, r.DuplicateRows))
	b.WriteString(fmt.Sprintf("  Missing values: %d (%.2f%%) across %d columns\n\n",
		r.TotalMissingValues, r.MissingPercentage, r.ColumnsWithMissing))

	header := []string{"column", "dtype", "missing", "missing%", "unique", "mean", "median", "std", "min", "max"}
	table := [][]string{}
	for _, name := range r.ColumnOrder() {
		cs := r.ColumnStats[name]
		table = append(table, []string{
			name,
			cs.DType,
			strconv.Itoa(cs.MissingCount),
			fmt.Sprintf("%.1f", cs.MissingPercentage),
			strconv.Itoa(cs.UniqueValues),
			formatStat(cs.Mean),
			formatStat(cs.Median),
			formatStat(cs.Std),
			formatStat(cs.Min),
			formatStat(cs.Max),
		})
	}

	widths := columnWidths(header, table)
	b.WriteString("  " + color.Cyan.Render(padRow(header, widths)) + "\n")
	for _, row := range table {
		b.WriteString("  " + padRow(row, widths) + "\n")
	}
	return b.String()
}

func formatStat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}

// columnWidths computes display widths per column, wide runes included.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func padRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
