package mcptool

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/extract"
	"github.com/akolanti/FinDocAPI/internal/finmetrics"
	"github.com/akolanti/FinDocAPI/internal/qa"
)

// MetadataExtractFinancialDocument describes the extract_financial_document tool.
var MetadataExtractFinancialDocument = &mcp.Tool{
	Name: "extract_financial_document",
	Description: "Extract the textual or tabular content of a financial document on disk. " +
		"Supported formats: pdf, xlsx, xlsm, xls, docx, txt, rtf, odt. " +
		"The result carries the rendered content plus every financial metric value " +
		"detected in it (Revenue, Expenses, Profit, Net Income, Gross Profit, Assets, " +
		"Liabilities, Equity), each with its raw text, parsed number and source context.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"path"},
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Filesystem path of the document to extract",
			},
			"all_sheets": map[string]interface{}{
				"type":        "boolean",
				"description": "For spreadsheets: scan every sheet instead of only the first one.",
			},
		},
	},
}

// InputExtractFinancialDocument is the input for the ExtractFinancialDocument tool.
type InputExtractFinancialDocument struct {
	Path      string `json:"path"`
	AllSheets bool   `json:"all_sheets"`
}

// MetricValue is one detected occurrence of a financial metric.
type MetricValue struct {
	Raw      string  `json:"raw"`
	Value    float64 `json:"value,omitempty"`
	IsNumber bool    `json:"is_number"`
	Context  string  `json:"context"`
}

// MetricEntry groups every occurrence of one vocabulary metric, in document order.
type MetricEntry struct {
	Metric  string        `json:"metric"`
	Matches []MetricValue `json:"matches"`
}

// OutputExtractFinancialDocument is the output for the ExtractFinancialDocument tool.
type OutputExtractFinancialDocument struct {
	// SourceName is the file name the content came from.
	SourceName string `json:"source_name"`
	// Kind is "text" or "table".
	Kind string `json:"kind"`
	// Content is the rendered document content.
	Content string `json:"content"`
	// PageCount is set for paginated documents.
	PageCount int `json:"page_count,omitempty"`
	// Metrics holds the detected metric entries in vocabulary order.
	Metrics []MetricEntry `json:"metrics"`
}

// ExtractFinancialDocument extracts a document from disk and scans it for
// financial metrics in one call.
func ExtractFinancialDocument(ctx context.Context, _ *mcp.CallToolRequest, input InputExtractFinancialDocument) (*mcp.CallToolResult, OutputExtractFinancialDocument, error) {
	if input.Path == "" {
		return nil, OutputExtractFinancialDocument{}, fmt.Errorf("path is required")
	}
	if _, err := os.Stat(input.Path); err != nil {
		return nil, OutputExtractFinancialDocument{}, fmt.Errorf("cannot read %q: %w", input.Path, err)
	}

	kind := extract.KindFromPath(input.Path)
	if kind == docModel.ERR {
		return nil, OutputExtractFinancialDocument{}, fmt.Errorf("unsupported document format: %q", input.Path)
	}

	doc := docModel.UploadedDocument{
		Name: input.Path,
		Kind: kind,
		Path: input.Path,
	}
	content, err := extract.ExtractWithOptions(doc, input.AllSheets)
	if err != nil {
		return nil, OutputExtractFinancialDocument{}, err
	}

	record := finmetrics.Detect(content)
	return nil, OutputExtractFinancialDocument{
		SourceName: content.SourceName,
		Kind:       string(content.Kind),
		Content:    qa.RenderContent(content),
		PageCount:  content.PageCount,
		Metrics:    toEntries(record),
	}, nil
}

// MetadataDetectFinancialMetrics describes the detect_financial_metrics tool.
var MetadataDetectFinancialMetrics = &mcp.Tool{
	Name: "detect_financial_metrics",
	Description: "Scan a plain-text financial statement for metric values. " +
		"Detects Revenue, Expenses, Profit, Net Income, Gross Profit, Assets, " +
		"Liabilities and Equity. Currency symbols and thousands separators are " +
		"stripped, parenthesized amounts are negative, and values that cannot " +
		"be parsed are kept as raw text.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw text of the financial statement to scan",
			},
		},
	},
}

// InputDetectFinancialMetrics is the input for the DetectFinancialMetrics tool.
type InputDetectFinancialMetrics struct {
	Content string `json:"content"`
}

// OutputDetectFinancialMetrics is the output for the DetectFinancialMetrics tool.
type OutputDetectFinancialMetrics struct {
	// Metrics holds the detected metric entries in vocabulary order. Metrics
	// that never appear in the text produce no entry.
	Metrics []MetricEntry `json:"metrics"`
}

// DetectFinancialMetrics scans free text for financial metric values.
func DetectFinancialMetrics(ctx context.Context, _ *mcp.CallToolRequest, input InputDetectFinancialMetrics) (*mcp.CallToolResult, OutputDetectFinancialMetrics, error) {
	if input.Content == "" {
		return nil, OutputDetectFinancialMetrics{}, fmt.Errorf("content is required")
	}

	record := finmetrics.Detect(docModel.ExtractedContent{
		Kind: docModel.ContentText,
		Text: input.Content,
	})
	return nil, OutputDetectFinancialMetrics{Metrics: toEntries(record)}, nil
}

func toEntries(record docModel.MetricRecord) []MetricEntry {
	entries := make([]MetricEntry, 0, record.Len())
	for _, e := range record.Entries {
		matches := make([]MetricValue, 0, len(e.Matches))
		for _, m := range e.Matches {
			matches = append(matches, MetricValue{
				Raw:      m.Raw,
				Value:    m.Value,
				IsNumber: m.IsNumber,
				Context:  m.Context,
			})
		}
		entries = append(entries, MetricEntry{Metric: e.Metric, Matches: matches})
	}
	return entries
}
