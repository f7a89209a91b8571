package finmetrics

import (
	"reflect"
	"testing"
	"time"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
)

func textContent(text string) docModel.ExtractedContent {
	return docModel.ExtractedContent{
		Kind:     docModel.ContentText,
		Text:     text,
		LoadedAt: time.Now(),
	}
}

func TestDetect_TextValues(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		metric   string
		expected float64
	}{
		{"Currency_And_Separators", "Revenue: $1,200,000", "Revenue", 1200000},
		{"Parenthesized_Negative", "Expenses (500,000)", "Expenses", -500000},
		{"Label_With_Of", "Net income of 75,500.25 this quarter", "Net Income", 75500.25},
		{"Plural_Label", "Total liabilities: 830,000", "Liabilities", 830000},
		{"Plain_Integer", "Profit 42", "Profit", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Detect(textContent(tt.text))
			entry, ok := record.Get(tt.metric)
			if !ok {
				t.Fatalf("metric %s not detected in %q", tt.metric, tt.text)
			}
			if len(entry.Matches) != 1 {
				t.Fatalf("expected 1 match, got %d", len(entry.Matches))
			}
			m := entry.Matches[0]
			if !m.IsNumber {
				t.Fatalf("match should be numeric, got raw %q", m.Raw)
			}
			if m.Value != tt.expected {
				t.Errorf("value got %v, want %v", m.Value, tt.expected)
			}
		})
	}
}

func TestDetect_AbsentMetricHasNoEntry(t *testing.T) {
	record := Detect(textContent("Revenue: 100"))

	if _, ok := record.Get("Liabilities"); ok {
		t.Error("Liabilities must not have an entry when absent from the document")
	}
	if _, ok := record.Get("Revenue"); !ok {
		t.Error("Revenue entry missing")
	}
	if record.Len() != 1 {
		t.Errorf("expected exactly 1 entry, got %d", record.Len())
	}
}

func TestDetect_AllOccurrencesKeptInOrder(t *testing.T) {
	text := "Revenue: 100\nsome filler\nRevenue: 100\nRevenue: 250"
	record := Detect(textContent(text))

	entry, ok := record.Get("Revenue")
	if !ok {
		t.Fatal("Revenue not detected")
	}
	if len(entry.Matches) != 3 {
		t.Fatalf("duplicates must not be collapsed: got %d matches, want 3", len(entry.Matches))
	}
	if entry.Matches[0].Value != 100 || entry.Matches[1].Value != 100 || entry.Matches[2].Value != 250 {
		t.Errorf("matches out of document order: %+v", entry.Matches)
	}
}

func TestDetect_VocabularyOrdering(t *testing.T) {
	text := "Liabilities: 5\nRevenue: 1\nAssets: 4"
	record := Detect(textContent(text))

	got := make([]string, 0, record.Len())
	for _, e := range record.Entries {
		got = append(got, e.Metric)
	}
	want := []string{"Revenue", "Assets", "Liabilities"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("entry order got %v, want %v", got, want)
	}
}

func TestDetect_ContextLine(t *testing.T) {
	text := "Annual report\nGross profit: $300,000 (unaudited)\nEnd"
	record := Detect(textContent(text))

	entry, ok := record.Get("Gross Profit")
	if !ok {
		t.Fatal("Gross Profit not detected")
	}
	if entry.Matches[0].Context != "Gross profit: $300,000 (unaudited)" {
		t.Errorf("context got %q", entry.Matches[0].Context)
	}
}

func tableContent(tables ...docModel.Table) docModel.ExtractedContent {
	return docModel.ExtractedContent{
		Kind:     docModel.ContentTable,
		Tables:   tables,
		LoadedAt: time.Now(),
	}
}

func cells(values ...string) []docModel.Cell {
	row := make([]docModel.Cell, len(values))
	for i, v := range values {
		row[i] = docModel.Cell{Raw: v}
	}
	return row
}

func TestDetect_TableSkipsEmptyCells(t *testing.T) {
	table := docModel.Table{
		Sheet:   "Sheet1",
		Headers: []string{"Item", "Q1", "Q2"},
		Rows: [][]docModel.Cell{
			cells("Total Assets", "", "2,400,000"),
		},
	}

	record := Detect(tableContent(table))
	entry, ok := record.Get("Assets")
	if !ok {
		t.Fatal("Assets not detected")
	}
	m := entry.Matches[0]
	if !m.IsNumber || m.Value != 2400000 {
		t.Errorf("Assets got %+v, want 2400000", m)
	}
}

func TestDetect_TableWithoutLabelColumn(t *testing.T) {
	table := docModel.Table{
		Sheet:   "Data",
		Headers: []string{"A", "B"},
		Rows: [][]docModel.Cell{
			cells("Revenue", "$9,100"),
			cells("unrelated", "77"),
		},
	}

	record := Detect(tableContent(table))
	entry, ok := record.Get("Revenue")
	if !ok {
		t.Fatal("Revenue not detected without a label column")
	}
	if entry.Matches[0].Value != 9100 {
		t.Errorf("value got %v, want 9100", entry.Matches[0].Value)
	}
	if record.Len() != 1 {
		t.Errorf("unrelated rows must not produce entries, got %d", record.Len())
	}
}

func TestDetect_TableUnparseableValueKeptRaw(t *testing.T) {
	table := docModel.Table{
		Sheet:   "Sheet1",
		Headers: []string{"Account", "Value"},
		Rows: [][]docModel.Cell{
			cells("Equity", "see note 4"),
		},
	}

	record := Detect(tableContent(table))
	entry, ok := record.Get("Equity")
	if !ok {
		t.Fatal("Equity row must still be reported")
	}
	m := entry.Matches[0]
	if m.IsNumber {
		t.Error("unparseable value must not be numeric")
	}
	if m.Raw != "see note 4" {
		t.Errorf("raw got %q, want %q", m.Raw, "see note 4")
	}
}

func TestDetect_Deterministic(t *testing.T) {
	content := textContent("Revenue: $1,200,000\nExpenses (500,000)\nAssets 2,400,000")
	first := Detect(content)
	second := Detect(content)
	if !reflect.DeepEqual(first, second) {
		t.Error("Detect must be deterministic for identical input")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		ok       bool
	}{
		{"$1,200,000", 1200000, true},
		{"(500,000)", -500000, true},
		{"( $250 )", -250, true},
		{"€99.50", 99.5, true},
		{"12.5", 12.5, true},
		{"n/a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseAmount(tt.raw)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("parseAmount(%q) = (%v, %v); want (%v, %v)", tt.raw, got, ok, tt.expected, tt.ok)
		}
	}
}
