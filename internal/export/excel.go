// Package export writes estimates and mixing instructions to Excel workbooks.
package export

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/piwi3910/mixcalc/internal/engine"
	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in exported workbooks.
const (
	EstimateSheet = "Estimate"
	MixSheet      = "Mix"
)

// MixLine is one row of the optional mixing sheet.
type MixLine struct {
	Chemical string
	Inputs   model.MixInputs
	Result   model.MixResult
}

// EstimateWorkbook builds an xlsx workbook for a quoted estimate. Surface
// names are resolved through the coverage table. When mix is non-empty a
// second sheet lists the mixing instructions.
func EstimateWorkbook(summary engine.EstimateSummary, table model.CoverageTable, mix []MixLine) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), EstimateSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeEstimateSheet(f, st, summary, table); err != nil {
		return nil, err
	}

	if len(mix) > 0 {
		if _, err := f.NewSheet(MixSheet); err != nil {
			return nil, fmt.Errorf("create mix sheet: %w", err)
		}
		if err := writeMixSheet(f, st, mix); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteEstimateWorkbook builds the workbook and saves it to path.
func WriteEstimateWorkbook(path string, summary engine.EstimateSummary, table model.CoverageTable, mix []MixLine) error {
	data, err := EstimateWorkbook(summary, table, mix)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Number formats applied to numeric cells.
var (
	moneyNumFmt   = "$#,##0.00;-$#,##0.00"
	areaNumFmt    = `#,##0" sq ft"`
	gallonsNumFmt = `0.00" gal"`
)

type styles struct {
	title, header, cell, money, label   int
	moneyValue, areaValue, gallonsValue int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return st, fmt.Errorf("create title style: %w", err)
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return st, fmt.Errorf("create header style: %w", err)
	}

	st.cell, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return st, fmt.Errorf("create cell style: %w", err)
	}

	st.money, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &moneyNumFmt,
	})
	if err != nil {
		return st, fmt.Errorf("create money style: %w", err)
	}

	st.label, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return st, fmt.Errorf("create summary label style: %w", err)
	}

	for _, v := range []struct {
		dst    *int
		numFmt *string
	}{
		{&st.moneyValue, &moneyNumFmt},
		{&st.areaValue, &areaNumFmt},
		{&st.gallonsValue, &gallonsNumFmt},
	} {
		*v.dst, err = f.NewStyle(&excelize.Style{
			Font:         &excelize.Font{Bold: true, Size: 11},
			CustomNumFmt: v.numFmt,
		})
		if err != nil {
			return st, fmt.Errorf("create summary number style: %w", err)
		}
	}
	return st, nil
}

var estimateHeaders = []string{"#", "Surface", "Condition", "Sq Ft", "Gallons", "SH Cost", "Surfactant", "Material", "Price"}

func writeEstimateSheet(f *excelize.File, st styles, summary engine.EstimateSummary, table model.CoverageTable) error {
	sheet := EstimateSheet
	est := summary.Estimate
	lastCol := colName(len(estimateHeaders))

	widths := []float64{5, 28, 11, 12, 10, 12, 12, 12, 12}
	for i, w := range widths {
		col := colName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	title := est.Name
	if title == "" {
		title = "Estimate"
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheet, "A1", lastCol+"1", st.title)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Pricing: %s", summary.Price.Model))
	f.SetCellValue(sheet, "A3", "Date: "+est.CreatedAt)

	for i, h := range estimateHeaders {
		f.SetCellValue(sheet, fmt.Sprintf("%s5", colName(i+1)), h)
	}
	f.SetCellStyle(sheet, "A5", lastCol+"5", st.header)

	row := 6
	for i, line := range summary.ItemLines() {
		r := fmt.Sprintf("%d", row)
		surface := line.Item.Surface
		if s, ok := table.Lookup(line.Item.Surface); ok {
			surface = s.Name
		}

		f.SetCellValue(sheet, "A"+r, i+1)
		f.SetCellValue(sheet, "B"+r, sanitizeExcelCell(surface))
		f.SetCellValue(sheet, "C"+r, string(line.Item.Condition))
		f.SetCellValue(sheet, "D"+r, line.Item.SquareFootage)
		f.SetCellValue(sheet, "E"+r, round2(line.Cost.GallonsNeeded))
		f.SetCellValue(sheet, "F"+r, round2(line.Cost.SHCost))
		f.SetCellValue(sheet, "G"+r, round2(line.Cost.SurfactantCost))
		f.SetCellValue(sheet, "H"+r, round2(line.Cost.Cost))
		f.SetCellValue(sheet, "I"+r, round2(line.Price))
		f.SetCellStyle(sheet, "A"+r, "E"+r, st.cell)
		f.SetCellStyle(sheet, "F"+r, lastCol+r, st.money)
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
		style int
	}{
		{"Total Area:", est.TotalSquareFootage(), st.areaValue},
		{"Total Mix:", round2(summary.Cost.TotalGallonsNeeded), st.gallonsValue},
		{fmt.Sprintf("Additives (%d):", summary.Cost.AdditiveCount), round2(summary.Cost.AdditiveCost), st.moneyValue},
		{"Material Cost:", round2(summary.Cost.MaterialCost), st.moneyValue},
		{"Total Price:", round2(summary.Price.TotalPrice), st.moneyValue},
		{fmt.Sprintf("Profit (%.1f%%):", summary.Price.MarginPercent), round2(summary.Price.Profit), st.moneyValue},
	}
	for _, t := range totals {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "H"+r, t.label)
		f.SetCellStyle(sheet, "H"+r, "H"+r, st.label)
		f.SetCellValue(sheet, "I"+r, t.value)
		f.SetCellStyle(sheet, "I"+r, "I"+r, t.style)
		row++
	}
	return nil
}

var mixHeaders = []string{"Chemical", "Strategy", "Mode", "Instructions"}

func writeMixSheet(f *excelize.File, st styles, mix []MixLine) error {
	sheet := MixSheet
	widths := []float64{28, 16, 12, 60}
	for i, w := range widths {
		col := colName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	for i, h := range mixHeaders {
		f.SetCellValue(sheet, fmt.Sprintf("%s1", colName(i+1)), h)
	}
	f.SetCellStyle(sheet, "A1", "D1", st.header)

	for i, m := range mix {
		r := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(m.Chemical))
		f.SetCellValue(sheet, "B"+r, m.Result.Strategy.String())
		f.SetCellValue(sheet, "C"+r, m.Result.Mode.String())
		f.SetCellValue(sheet, "D"+r, MixInstructions(m.Result, m.Inputs))
		f.SetCellStyle(sheet, "A"+r, "D"+r, st.cell)
	}
	return nil
}

func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
