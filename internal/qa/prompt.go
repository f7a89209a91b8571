package qa

import (
	"fmt"
	"strings"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
)

const promptTemplate = `Based on the following financial data:
%s

Answer this question: %s

Provide a concise and accurate response. If the information is not available in the data, say so.`

// BuildPrompt embeds the document context (bounded excerpt when it exceeds
// the configured limit) followed by the literal question text.
func BuildPrompt(content docModel.ExtractedContent, question string) string {
	context := RenderContent(content)
	if len(context) > config.MaxPromptContextChars {
		context = context[:config.MaxPromptContextChars] + "\n[document truncated]"
	}
	return fmt.Sprintf(promptTemplate, context, question)
}

// RenderContent flattens extracted content to plain text: the text variant
// as-is, tables as tab-separated rows under a sheet heading.
func RenderContent(content docModel.ExtractedContent) string {
	if content.Kind != docModel.ContentTable {
		return content.Text
	}

	var sb strings.Builder
	for i, table := range content.Tables {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("### ")
		sb.WriteString(table.Sheet)
		sb.WriteString("\n")
		sb.WriteString(strings.Join(table.Headers, "\t"))
		sb.WriteString("\n")
		for _, row := range table.Rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = cell.Raw
			}
			sb.WriteString(strings.Join(cells, "\t"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
