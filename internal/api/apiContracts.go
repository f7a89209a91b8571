package api

import "time"

type SessionResponse struct {
	SessionId string `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type ErrorResponse struct {
	SessionId string `json:"session_id,omitempty"`
	Code      int    `json:"code" example:"400"`
	Message   string `json:"message" example:"Bad Request"`
}

type MetricValue struct {
	Raw      string  `json:"raw" example:"$1,200,000"`
	Value    float64 `json:"value,omitempty" example:"1200000"`
	IsNumber bool    `json:"is_number"`
	Context  string  `json:"context" example:"Revenue: $1,200,000"`
}

type MetricSummary struct {
	Metric  string        `json:"metric" example:"Revenue"`
	Matches []MetricValue `json:"matches"`
}

type UploadResponse struct {
	SessionId      string          `json:"session_id"`
	DocumentName   string          `json:"document_name"`
	Kind           string          `json:"kind" example:"text"`
	Metrics        []MetricSummary `json:"metrics"`
	ContentPreview string          `json:"content_preview"`
}

type MetricsResponse struct {
	SessionId string          `json:"session_id"`
	Metrics   []MetricSummary `json:"metrics"`
}

type TableView struct {
	Sheet   string     `json:"sheet"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type ContentResponse struct {
	SessionId  string      `json:"session_id"`
	SourceName string      `json:"source_name"`
	Kind       string      `json:"kind"`
	Text       string      `json:"text,omitempty"`
	Tables     []TableView `json:"tables,omitempty"`
	PageCount  int         `json:"page_count,omitempty"`
}

type Turn struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

type TranscriptResponse struct {
	SessionId string `json:"session_id"`
	Turns     []Turn `json:"turns"`
}

// requests---------------------

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

type AskResponse struct {
	SessionId string `json:"session_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}
