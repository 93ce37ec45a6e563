package export

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Workbook defaults.
const (
	DefaultSheetName = "Dados"
	DefaultSubject   = "Dados exportados do Painel Port VR"
	DefaultAuthor    = "Port VR Sistema"

	// MinColumnWidth is the narrowest column, in character units.
	MinColumnWidth = 10.0

	// columnWidthFactor converts a character count into a column width.
	columnWidthFactor = 1.2

	// dateTimeNumFmt is the built-in "m/d/yy h:mm" number format.
	dateTimeNumFmt = 22
)

// Cell colors, as RRGGBB.
const (
	headerFillColor = "0077B3"
	headerFontColor = "FFFFFF"
	borderColor     = "000000"
	evenRowColor    = "F2F2F2"
	oddRowColor     = "FFFFFF"
)

// WorkbookOptions carries the workbook metadata and sheet name.
type WorkbookOptions struct {
	Title     string
	Subject   string
	Author    string
	SheetName string
	Created   time.Time
}

func (o WorkbookOptions) withDefaults() WorkbookOptions {
	if o.SheetName == "" {
		o.SheetName = DefaultSheetName
	}
	if o.Subject == "" {
		o.Subject = DefaultSubject
	}
	if o.Author == "" {
		o.Author = DefaultAuthor
	}
	if o.Created.IsZero() {
		o.Created = time.Now()
	}
	return o
}

// EncodeXLSX renders records as a single-sheet workbook.
//
// Column headers are the keys of the first record. Columns are sized to
// their longest cell text, header bold white on blue, data rows banded gray
// and white starting with gray. The returned bytes are a complete .xlsx
// package.
func EncodeXLSX(data []Record, opts WorkbookOptions) ([]byte, error) {
	opts = opts.withDefaults()

	grid, err := buildGrid(data)
	if err != nil {
		return nil, err
	}
	plan := newStylePlan(grid)

	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for r, row := range grid {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := applyStyles(f, sheet, plan); err != nil {
		return nil, err
	}

	// The dimension spans the header and every record, blank trailing rows
	// included.
	if len(grid) > 0 && len(grid[0]) > 0 {
		last, err := excelize.CoordinatesToCellName(len(grid[0]), len(grid))
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetDimension(sheet, "A1:"+last); err != nil {
			return nil, fmt.Errorf("failed to set sheet dimension: %w", err)
		}
	}

	for c, width := range columnWidths(grid) {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:          opts.Title,
		Subject:        opts.Subject,
		Creator:        opts.Author,
		LastModifiedBy: opts.Author,
		Created:        opts.Created.UTC().Format(time.RFC3339),
		Modified:       opts.Created.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ColumnWidths returns the width of every column EncodeXLSX would produce.
func ColumnWidths(data []Record) ([]float64, error) {
	grid, err := buildGrid(data)
	if err != nil {
		return nil, err
	}
	return columnWidths(grid), nil
}

// buildGrid lays records out as sheet rows: the header row followed by one
// row of normalized values per record.
func buildGrid(data []Record) ([][]any, error) {
	if len(data) == 0 {
		return nil, nil
	}

	headers := data[0].Keys()
	grid := make([][]any, 0, len(data)+1)

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	grid = append(grid, header)

	for row, rec := range data {
		values := make([]any, len(headers))
		for col, name := range headers {
			v, err := fieldValue(rec, row, name)
			if err != nil {
				return nil, err
			}
			values[col] = v
		}
		grid = append(grid, values)
	}
	return grid, nil
}

func columnWidths(grid [][]any) []float64 {
	if len(grid) == 0 {
		return nil
	}
	widths := make([]float64, len(grid[0]))
	for c := range widths {
		widths[c] = MinColumnWidth
	}
	for _, row := range grid {
		for c, v := range row {
			w := float64(utf8.RuneCountInString(cellText(v))) * columnWidthFactor
			if w > widths[c] {
				widths[c] = math.Min(w, excelize.MaxColumnWidth)
			}
		}
	}
	return widths
}

type styleKind int

const (
	styleHeader styleKind = iota
	styleEvenRow
	styleOddRow
)

// cellStyle identifies one registered workbook style.
type cellStyle struct {
	kind styleKind
	date bool
}

// stylePlan is the style of every cell of the sheet, keyed by sheet
// coordinates (row 0 is the header). It is built once and never modified.
type stylePlan struct {
	cells [][]cellStyle
}

func newStylePlan(grid [][]any) stylePlan {
	cells := make([][]cellStyle, len(grid))
	for r, row := range grid {
		cells[r] = make([]cellStyle, len(row))
		for c, v := range row {
			_, isDate := v.(time.Time)
			cells[r][c] = cellStyle{kind: rowStyle(r), date: isDate}
		}
	}
	return stylePlan{cells: cells}
}

// rowStyle returns the style kind of sheet row r. Data rows are banded by
// their 0-based index below the header: even rows gray, odd rows white.
func rowStyle(r int) styleKind {
	if r == 0 {
		return styleHeader
	}
	if (r-1)%2 == 0 {
		return styleEvenRow
	}
	return styleOddRow
}

// At returns the style of the cell at sheet row r, column c.
func (p stylePlan) At(r, c int) cellStyle {
	return p.cells[r][c]
}

func (s cellStyle) definition() *excelize.Style {
	var style *excelize.Style
	switch s.kind {
	case styleHeader:
		thin := func(side string) excelize.Border {
			return excelize.Border{Type: side, Color: borderColor, Style: 1}
		}
		style = &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: headerFontColor},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    []excelize.Border{thin("top"), thin("bottom"), thin("left"), thin("right")},
		}
	case styleEvenRow:
		style = &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{evenRowColor}},
		}
	default:
		style = &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{oddRowColor}},
		}
	}
	if s.date {
		style.NumFmt = dateTimeNumFmt
	}
	return style
}

// applyStyles registers each distinct style once and applies it to runs of
// equally styled cells.
func applyStyles(f *excelize.File, sheet string, plan stylePlan) error {
	ids := make(map[cellStyle]int)
	styleID := func(s cellStyle) (int, error) {
		if id, ok := ids[s]; ok {
			return id, nil
		}
		id, err := f.NewStyle(s.definition())
		if err != nil {
			return 0, fmt.Errorf("failed to create style: %w", err)
		}
		ids[s] = id
		return id, nil
	}

	for r, row := range plan.cells {
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && plan.At(r, c) == plan.At(r, start) {
				continue
			}
			id, err := styleID(plan.At(r, start))
			if err != nil {
				return err
			}
			from, _ := excelize.CoordinatesToCellName(start+1, r+1)
			to, _ := excelize.CoordinatesToCellName(c, r+1)
			if err := f.SetCellStyle(sheet, from, to, id); err != nil {
				return fmt.Errorf("failed to style %s:%s: %w", from, to, err)
			}
			start = c
		}
	}
	return nil
}
