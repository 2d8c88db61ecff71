// Package importer provides CSV and Excel import of job surface lists.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Items    []model.EstimateItem
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Surface   int
	Area      int
	Condition int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"surface":   {"surface", "surface type", "type", "material", "substrate", "item", "description"},
	"area":      {"area", "sq ft", "sqft", "sq. ft.", "square feet", "square footage", "sf", "size"},
	"condition": {"condition", "cond", "soil", "soiling", "dirt level"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (surface, area, condition) and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Surface: -1, Area: -1, Condition: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "surface":
					if mapping.Surface == -1 {
						mapping.Surface = i
					}
				case "area":
					if mapping.Area == -1 {
						mapping.Area = i
					}
				case "condition":
					if mapping.Condition == -1 {
						mapping.Condition = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Surface: 0, Area: 1, Condition: 2}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// areaSuffixes are unit suffixes stripped from area values, longest first.
var areaSuffixes = []string{"square footage", "square feet", "sq. ft.", "sq.ft.", "sq ft", "sqft", "sf"}

// parseArea accepts plain numbers as well as "2,400", "2400 sq ft" and
// "2400 sq. ft.".
func parseArea(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, suffix := range areaSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseRow extracts an EstimateItem from a row using the given column mapping.
// Returns the item, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, table model.CoverageTable, rowLabel string) (model.EstimateItem, string, string) {
	surfaceStr := getCell(row, mapping.Surface)
	if surfaceStr == "" {
		return model.EstimateItem{}, fmt.Sprintf("%s: Missing surface", rowLabel), ""
	}
	surface, ok := table.FindByName(surfaceStr)
	if !ok {
		return model.EstimateItem{}, fmt.Sprintf("%s: Unknown surface '%s'", rowLabel, surfaceStr), ""
	}

	areaStr := getCell(row, mapping.Area)
	if areaStr == "" {
		return model.EstimateItem{}, fmt.Sprintf("%s: Missing square footage", rowLabel), ""
	}
	area, err := parseArea(areaStr)
	if err != nil {
		return model.EstimateItem{}, fmt.Sprintf("%s: Invalid square footage '%s'", rowLabel, areaStr), ""
	}
	if area <= 0 {
		return model.EstimateItem{}, fmt.Sprintf("%s: Square footage must be positive", rowLabel), ""
	}

	var warning string
	condStr := getCell(row, mapping.Condition)
	cond, ok := model.ParseCondition(condStr)
	if !ok {
		warning = fmt.Sprintf("%s: Unknown condition '%s', defaulting to average", rowLabel, condStr)
	}

	return model.NewEstimateItem(surface.ID, area, cond), "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports job items from a CSV file, resolving surfaces against
// the coverage table. It detects the delimiter and maps columns by header
// names. Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, table model.CoverageTable) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, table, "Line", result.Warnings)
}

// ImportCSVFromReader imports job items from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, table model.CoverageTable) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, table, "Line", nil)
}

// ImportExcel imports job items from the first sheet of an Excel file.
func ImportExcel(path string, table model.CoverageTable) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, table, "Row", nil)
}

// ImportFile dispatches on the file extension: .xlsx and .xlsm go to
// ImportExcel, everything else is read as CSV.
func ImportFile(path string, table model.CoverageTable) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path, table)
	}
	return ImportCSV(path, table)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, table model.CoverageTable, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Surface == -1 {
			missing = append(missing, "Surface")
		}
		if mapping.Area == -1 {
			missing = append(missing, "Square Footage")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// An unrecognized header still has a non-numeric area column
		if _, err := parseArea(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		item, errMsg, warning := parseRow(row, mapping, table, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Items = append(result.Items, item)
	}

	return result
}
