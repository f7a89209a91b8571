package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
)

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected docModel.DocKind
	}{
		{"report.pdf", docModel.PDF},
		{"Q3.XLSX", docModel.Spreadsheet},
		{"ledger.xls", docModel.Spreadsheet},
		{"notes.txt", docModel.TextDoc},
		{"summary.docx", docModel.TextDoc},
		{"image.png", docModel.ERR},
	}

	for _, tt := range tests {
		if got := KindFromPath(tt.path); got != tt.expected {
			t.Errorf("KindFromPath(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := Extract(docModel.UploadedDocument{Name: "x.png", Kind: docModel.ERR, Path: "x.png"})
	if !errors.Is(err, docModel.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtract_PlaintextDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	content := "Revenue: $1,200,000\nExpenses (500,000)\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Extract(docModel.UploadedDocument{Name: "statement.txt", Kind: docModel.TextDoc, Path: path})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got.Kind != docModel.ContentText {
		t.Errorf("Kind got %v, want %v", got.Kind, docModel.ContentText)
	}
	if got.Text != content {
		t.Errorf("Text got %q, want %q", got.Text, content)
	}
}

func TestExtract_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Extract(docModel.UploadedDocument{Name: "broken.pdf", Kind: docModel.PDF, Path: path})
	if !errors.Is(err, docModel.ErrCorruptDocument) {
		t.Errorf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestBuildTable(t *testing.T) {
	rows := [][]string{
		{"Item", "Q1", "Q2"},
		{"Total Assets", "", "2,400,000"},
		{"Notes", "pending", "n/a"},
	}

	table := buildTable("Sheet1", rows)

	if len(table.Headers) != 3 || table.Headers[0] != "Item" {
		t.Fatalf("Headers mismatch: %v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(table.Rows))
	}

	assets := table.Rows[0]
	if assets[1].IsNumber {
		t.Error("empty cell should not parse as a number")
	}
	if !assets[2].IsNumber || assets[2].Number != 2400000 {
		t.Errorf("cell got %+v, want numeric 2400000", assets[2])
	}
	if assets[2].Raw != "2,400,000" {
		t.Errorf("raw value must be retained, got %q", assets[2].Raw)
	}

	notes := table.Rows[1]
	if notes[1].IsNumber || notes[2].IsNumber {
		t.Error("text cells must stay non-numeric")
	}
}

func TestBuildTable_EmptySheet(t *testing.T) {
	table := buildTable("Empty", nil)
	if len(table.Headers) != 0 || len(table.Rows) != 0 {
		t.Errorf("empty sheet should produce an empty table, got %+v", table)
	}
}
