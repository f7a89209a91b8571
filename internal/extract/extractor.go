package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("Extractor")

// KindFromPath maps a file extension to a document kind.
func KindFromPath(path string) docModel.DocKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return docModel.PDF
	case ".xlsx", ".xlsm", ".xls":
		return docModel.Spreadsheet
	case ".docx", ".txt", ".rtf", ".odt":
		return docModel.TextDoc
	default:
		return docModel.ERR
	}
}

// Extract converts an uploaded document into its normalized content. It fails
// with ErrUnsupportedFormat for an unknown kind and ErrCorruptDocument when
// the bytes do not parse as the declared kind. Nothing is retained on failure.
func Extract(doc docModel.UploadedDocument) (docModel.ExtractedContent, error) {
	return ExtractWithOptions(doc, config.ScanAllSheets)
}

// ExtractWithOptions is Extract with an explicit sheet policy for spreadsheets.
func ExtractWithOptions(doc docModel.UploadedDocument, allSheets bool) (docModel.ExtractedContent, error) {
	logger.Debug("Extract", "name", doc.Name, "kind", doc.Kind)

	switch doc.Kind {
	case docModel.PDF:
		text, pageCount, err := extractPDF(doc.Path)
		if err != nil {
			return docModel.ExtractedContent{}, err
		}
		return docModel.ExtractedContent{
			Kind:       docModel.ContentText,
			SourceName: doc.Name,
			Text:       text,
			PageCount:  pageCount,
			LoadedAt:   time.Now(),
		}, nil

	case docModel.Spreadsheet:
		tables, err := extractSpreadsheet(doc.Path, allSheets)
		if err != nil {
			return docModel.ExtractedContent{}, err
		}
		return docModel.ExtractedContent{
			Kind:       docModel.ContentTable,
			SourceName: doc.Name,
			Tables:     tables,
			LoadedAt:   time.Now(),
		}, nil

	case docModel.TextDoc:
		text, err := extractTextDoc(doc.Path)
		if err != nil {
			return docModel.ExtractedContent{}, err
		}
		return docModel.ExtractedContent{
			Kind:       docModel.ContentText,
			SourceName: doc.Name,
			Text:       text,
			PageCount:  1,
			LoadedAt:   time.Now(),
		}, nil

	default:
		return docModel.ExtractedContent{}, fmt.Errorf("%w: %q", docModel.ErrUnsupportedFormat, doc.Kind)
	}
}
