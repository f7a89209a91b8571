package adapter

import (
	"github.com/akolanti/FinDocAPI/internal/api"
	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
)

func ToMetricSummaries(record docModel.MetricRecord) []api.MetricSummary {
	summaries := make([]api.MetricSummary, 0, record.Len())
	for _, entry := range record.Entries {
		values := make([]api.MetricValue, 0, len(entry.Matches))
		for _, m := range entry.Matches {
			values = append(values, api.MetricValue{
				Raw:      m.Raw,
				Value:    m.Value,
				IsNumber: m.IsNumber,
				Context:  m.Context,
			})
		}
		summaries = append(summaries, api.MetricSummary{Metric: entry.Metric, Matches: values})
	}
	return summaries
}

func ToUploadResponse(sessionId string, content docModel.ExtractedContent, record docModel.MetricRecord, preview string) api.UploadResponse {
	return api.UploadResponse{
		SessionId:      sessionId,
		DocumentName:   content.SourceName,
		Kind:           string(content.Kind),
		Metrics:        ToMetricSummaries(record),
		ContentPreview: preview,
	}
}

func ToContentResponse(sessionId string, content docModel.ExtractedContent) api.ContentResponse {
	resp := api.ContentResponse{
		SessionId:  sessionId,
		SourceName: content.SourceName,
		Kind:       string(content.Kind),
		Text:       content.Text,
		PageCount:  content.PageCount,
	}
	for _, table := range content.Tables {
		view := api.TableView{Sheet: table.Sheet, Headers: table.Headers}
		for _, row := range table.Rows {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = cell.Raw
			}
			view.Rows = append(view.Rows, cells)
		}
		resp.Tables = append(resp.Tables, view)
	}
	return resp
}

func ToTranscriptResponse(sessionId string, turns []docModel.ConversationTurn) api.TranscriptResponse {
	resp := api.TranscriptResponse{SessionId: sessionId, Turns: make([]api.Turn, 0, len(turns))}
	for _, t := range turns {
		resp.Turns = append(resp.Turns, api.Turn{Question: t.Question, Answer: t.Answer, AskedAt: t.AskedAt})
	}
	return resp
}

// Preview bounds the raw content shown back to the uploader.
func Preview(rendered string) string {
	if len(rendered) > config.ContentPreviewChars {
		return rendered[:config.ContentPreviewChars]
	}
	return rendered
}

func BadRequest(sessionId string, message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		SessionId: sessionId,
		Code:      code,
		Message:   message,
	}
}
