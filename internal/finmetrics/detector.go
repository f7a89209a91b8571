package finmetrics

import (
	"fmt"
	"strings"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
)

// Detect scans extracted content for the metric vocabulary. It is permissive:
// a metric with no match simply has no entry, and detection never fails.
// Entries come out in vocabulary order, matches in document order.
func Detect(content docModel.ExtractedContent) docModel.MetricRecord {
	var record docModel.MetricRecord
	for _, rule := range Vocabulary() {
		var matches []docModel.MetricMatch
		switch content.Kind {
		case docModel.ContentTable:
			matches = detectInTables(rule, content.Tables)
		default:
			matches = detectInText(rule, content.Text)
		}
		if len(matches) > 0 {
			record.Entries = append(record.Entries, docModel.MetricEntry{
				Metric:  rule.Metric,
				Matches: matches,
			})
		}
	}
	return record
}

// detectInText collects every non-overlapping occurrence of the rule across
// the text. Repeated mentions are kept - they may refer to different
// reporting periods.
func detectInText(rule Rule, text string) []docModel.MetricMatch {
	idxs := rule.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(idxs) == 0 {
		return nil
	}

	matches := make([]docModel.MetricMatch, 0, len(idxs))
	for _, m := range idxs {
		raw := strings.TrimSpace(text[m[2]:m[3]])
		match := docModel.MetricMatch{
			Raw:     raw,
			Context: lineAround(text, m[0]),
		}
		if n, ok := parseAmount(raw); ok {
			match.Value = n
			match.IsNumber = true
		}
		matches = append(matches, match)
	}
	return matches
}

// lineAround returns the full line containing byte offset pos.
func lineAround(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += pos
	}
	return strings.TrimSpace(text[start:end])
}

// detectInTables matches the metric name as a case-insensitive substring of
// the label column (or of any cell when no label column is identifiable) and
// takes the first parseable numeric among the row's other cells. A matched
// row whose values all fail numeric parsing keeps the first non-empty cell as
// a raw string.
func detectInTables(rule Rule, tables []docModel.Table) []docModel.MetricMatch {
	needle := strings.ToLower(rule.Metric)

	var matches []docModel.MetricMatch
	for _, table := range tables {
		labelCol := findLabelColumn(table.Headers)
		for rowIdx, row := range table.Rows {
			cellIdx, found := matchRow(row, labelCol, needle)
			if !found {
				continue
			}

			match, ok := rowValue(row, cellIdx)
			if !ok {
				continue
			}
			match.Context = fmt.Sprintf("%s!row %d: %s", table.Sheet, rowIdx+2, strings.TrimSpace(row[cellIdx].Raw))
			matches = append(matches, match)
		}
	}
	return matches
}

// label column headers commonly seen in financial exports
var labelHeaderHints = []string{"label", "item", "account", "description", "metric", "name", "particular"}

func findLabelColumn(headers []string) int {
	for i, h := range headers {
		lower := strings.ToLower(h)
		for _, hint := range labelHeaderHints {
			if strings.Contains(lower, hint) {
				return i
			}
		}
	}
	return -1
}

func matchRow(row []docModel.Cell, labelCol int, needle string) (int, bool) {
	if labelCol >= 0 {
		if labelCol < len(row) && strings.Contains(strings.ToLower(row[labelCol].Raw), needle) {
			return labelCol, true
		}
		return 0, false
	}
	for i, cell := range row {
		if strings.Contains(strings.ToLower(cell.Raw), needle) {
			return i, true
		}
	}
	return 0, false
}

func rowValue(row []docModel.Cell, labelIdx int) (docModel.MetricMatch, bool) {
	firstRaw := ""
	for i, cell := range row {
		if i == labelIdx {
			continue
		}
		raw := strings.TrimSpace(cell.Raw)
		if raw == "" {
			continue
		}
		if n, ok := parseAmount(raw); ok {
			return docModel.MetricMatch{Raw: raw, Value: n, IsNumber: true}, true
		}
		if firstRaw == "" {
			firstRaw = raw
		}
	}
	if firstRaw != "" {
		return docModel.MetricMatch{Raw: firstRaw}, true
	}
	return docModel.MetricMatch{}, false
}
