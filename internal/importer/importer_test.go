package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/xuri/excelize/v2"
)

var table = model.DefaultCoverageTable()

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Surface,Sq Ft,Condition\nBrick,1500,heavy\nConcrete Driveway,600,average\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Surface;Sq Ft;Condition\nBrick;1500;heavy\nConcrete Driveway;600;average\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Surface\tSq Ft\tCondition\nBrick\t1500\theavy\nStucco\t900\tlight\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Surface|Sq Ft|Condition\nBrick|1500|heavy\nStucco|900|light\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Surface", "Square Footage", "Condition"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Surface != 0 || mapping.Area != 1 || mapping.Condition != 2 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"SQFT", "SOIL", "MATERIAL"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Area != 0 {
		t.Errorf("expected Area at 0, got %d", mapping.Area)
	}
	if mapping.Condition != 1 {
		t.Errorf("expected Condition at 1, got %d", mapping.Condition)
	}
	if mapping.Surface != 2 {
		t.Errorf("expected Surface at 2, got %d", mapping.Surface)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Brick", "1500", "heavy"})

	if isHeader {
		t.Error("expected no header")
	}
	if mapping.Surface != 0 || mapping.Area != 1 || mapping.Condition != 2 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	input := "Surface,Sq Ft,Condition\nVinyl Siding,2000,average\nconcrete,600,heavy\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	first := result.Items[0]
	if first.Surface != "vinyl-siding" {
		t.Errorf("expected surface vinyl-siding, got %s", first.Surface)
	}
	if first.SquareFootage != 2000 {
		t.Errorf("expected 2000 sq ft, got %f", first.SquareFootage)
	}
	if first.ID == "" {
		t.Error("expected generated item ID")
	}
	if result.Items[1].Surface != "concrete" || result.Items[1].Condition != model.ConditionHeavy {
		t.Errorf("unexpected second item %+v", result.Items[1])
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	input := "Brick,1500,light\nStucco,800,heavy\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].Condition != model.ConditionLight {
		t.Errorf("expected light, got %s", result.Items[0].Condition)
	}
}

func TestImportCSVFromReader_UnrecognizedHeaderSkipped(t *testing.T) {
	input := "Where,How Big,How Dirty\nBrick,1500,light\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
}

func TestImportCSVFromReader_ReorderedColumns(t *testing.T) {
	input := "Condition,Area,Surface\nheavy,1200,Wood Deck\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
	it := result.Items[0]
	if it.Surface != "wood-deck" || it.SquareFootage != 1200 || it.Condition != model.ConditionHeavy {
		t.Errorf("unexpected item %+v", it)
	}
}

func TestImportCSVFromReader_MissingConditionDefaultsToAverage(t *testing.T) {
	input := "Surface,Sq Ft\nBrick,1500\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d (errors %v)", len(result.Items), result.Errors)
	}
	if result.Items[0].Condition != model.ConditionAverage {
		t.Errorf("expected average, got %s", result.Items[0].Condition)
	}
}

func TestImportCSVFromReader_UnknownConditionWarns(t *testing.T) {
	input := "Brick,1500,filthy\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
	if result.Items[0].Condition != model.ConditionAverage {
		t.Errorf("expected average fallback, got %s", result.Items[0].Condition)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unknown condition 'filthy'") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown condition warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_UnknownSurface(t *testing.T) {
	input := "Brick,1500,light\nMoon Rock,300,light\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Items) != 1 {
		t.Errorf("expected 1 valid item, got %d", len(result.Items))
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Line 2") {
		t.Errorf("expected one error on line 2, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_InvalidArea(t *testing.T) {
	input := "Surface,Sq Ft\nBrick,lots\nStucco,-5\nPavers,0\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 errors, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_FormattedArea(t *testing.T) {
	input := "Surface;Sq Ft\nBrick;2,400\nStucco;900 sq ft\nPavers;1250.5\n"
	result := ImportCSVFromReader(strings.NewReader(input), ';', table)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := []float64{2400, 900, 1250.5}
	for i, w := range want {
		if result.Items[i].SquareFootage != w {
			t.Errorf("item %d: expected %f, got %f", i, w, result.Items[i].SquareFootage)
		}
	}
}

func TestParseArea_UnitSuffixes(t *testing.T) {
	tests := map[string]float64{
		"2400 sq. ft.":     2400,
		"2,400 Sq.Ft.":     2400,
		"900 sq ft":        900,
		"900sqft":          900,
		"600 SF":           600,
		"1200 square feet": 1200,
		" 75.5 ":           75.5,
	}
	for in, want := range tests {
		got, err := parseArea(in)
		if err != nil {
			t.Errorf("parseArea(%q) error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseArea(%q): expected %f, got %f", in, want, got)
		}
	}
}

func TestImportCSVFromReader_DottedUnitSuffix(t *testing.T) {
	input := "Surface,Sq. Ft.\nBrick,2400 sq. ft.\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 1 || result.Items[0].SquareFootage != 2400 {
		t.Errorf("expected one 2400 sq ft item, got %+v", result.Items)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',', table)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func TestImportCSVFromReader_EmptyRows(t *testing.T) {
	input := "Surface,Sq Ft\nBrick,100\n,\n\nStucco,200\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Items) != 2 {
		t.Errorf("expected 2 items, got %d (errors %v)", len(result.Items), result.Errors)
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	input := "Surface,Condition\nBrick,light\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',', table)

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Square Footage") {
		t.Errorf("expected missing square footage error, got %q", result.Errors[0])
	}
}

func TestImportCSVFromReader_OnlyHeaders(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Surface,Sq Ft,Condition\n"), ',', table)

	if len(result.Items) != 0 {
		t.Errorf("expected 0 items, got %d", len(result.Items))
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
}

func TestImportCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.csv")
	content := "Surface,Sq Ft,Condition\nVinyl Siding,2000,average\nAsphalt Shingle Roof,1800,heavy\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path, table)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[1].Surface != "asphalt-roof" {
		t.Errorf("expected asphalt-roof, got %s", result.Items[1].Surface)
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.csv")
	content := "Surface;Sq Ft;Condition\nBrick;1500;heavy\nStucco;900;light\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path, table)
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d (errors %v)", len(result.Items), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"), table)
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("   \n"), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path, table)
	if len(result.Errors) == 0 || result.Errors[0] != "File is empty" {
		t.Errorf("expected 'File is empty', got %v", result.Errors)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Surface", "Square Footage", "Condition"},
		{"Vinyl Siding", 2000, "average"},
		{"Pavers", 750, "Heavy"},
	})

	result := ImportExcel(path, table)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[1].Surface != "pavers" || result.Items[1].SquareFootage != 750 {
		t.Errorf("unexpected item %+v", result.Items[1])
	}
	if result.Items[1].Condition != model.ConditionHeavy {
		t.Errorf("expected heavy, got %s", result.Items[1].Condition)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Brick", 1500, "light"},
	})

	result := ImportExcel(path, table)
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d (errors %v)", len(result.Items), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"), table)
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportFile_DispatchesOnExtension(t *testing.T) {
	xlsx := createTestExcel(t, [][]interface{}{
		{"Surface", "Sq Ft"},
		{"Stucco", 400},
	})
	if result := ImportFile(xlsx, table); len(result.Items) != 1 {
		t.Errorf("expected 1 item from xlsx, got %d (errors %v)", len(result.Items), result.Errors)
	}

	csvPath := filepath.Join(t.TempDir(), "job.csv")
	if err := os.WriteFile(csvPath, []byte("Stucco,400\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if result := ImportFile(csvPath, table); len(result.Items) != 1 {
		t.Errorf("expected 1 item from csv, got %d (errors %v)", len(result.Items), result.Errors)
	}
}
