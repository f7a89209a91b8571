package extract

import (
	"fmt"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/lu4p/cat"
)

// extractTextDoc reads a .docx, .odt, .rtf or plaintext file into one string.
func extractTextDoc(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc", "error", err)
		return "", fmt.Errorf("%w: %v", docModel.ErrCorruptDocument, err)
	}
	return text, nil
}
