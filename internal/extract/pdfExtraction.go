package extract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/dslipak/pdf"
)

// extractPDF concatenates the plain text of every page in page order. Layout
// is whatever the library returns; no column or table reconstruction.
func extractPDF(path string) (string, int, error) {
	logger.Debug("extractPDF", "attempting extraction", path)
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("failed opening of pdf file", "error", err)
		return "", 0, fmt.Errorf("%w: %v", docModel.ErrCorruptDocument, err)
	}

	var sb strings.Builder
	numPages := f.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			logger.Debug("extractPDF", "null page", i)
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// keep going with the remaining pages
			logger.Error("Error parsing page content", "page", i, "Error", err)
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), numPages, nil
}

// protectExtract guards a single page extraction with a timeout; a malformed
// page can make GetPlainText spin.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PDFPageTimeout):
		logger.Error("pageExtract", "timeout", config.PDFPageTimeout)
		return "", errors.New("timeout")
	}
}
