package docModel

import "time"

type DocKind string

var (
	PDF         DocKind = "PDF"
	Spreadsheet DocKind = "SPREADSHEET"
	TextDoc     DocKind = "TEXT"
	ERR         DocKind = "ERROR"
)

// UploadedDocument is consumed by a single extraction call and not retained.
type UploadedDocument struct {
	Name string  `json:"doc_name"`
	Kind DocKind `json:"kind"`
	Path string  `json:"-"`
}

type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentTable ContentKind = "table"
)

// ExtractedContent is the normalized form of an uploaded document, either a
// flat text string (PDF, plaintext docs) or one table per scanned sheet.
// Immutable once produced.
type ExtractedContent struct {
	Kind       ContentKind `json:"kind"`
	SourceName string      `json:"source_name"`
	Text       string      `json:"text,omitempty"`
	Tables     []Table     `json:"tables,omitempty"`
	PageCount  int         `json:"page_count,omitempty"`
	LoadedAt   time.Time   `json:"loaded_at"`
}

type Table struct {
	Sheet   string   `json:"sheet"`
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// Cell keeps the raw formatted value and caches the numeric parse when the
// value parses as a number.
type Cell struct {
	Raw      string  `json:"raw"`
	Number   float64 `json:"number,omitempty"`
	IsNumber bool    `json:"is_number,omitempty"`
}

// MetricMatch is one detected occurrence of a metric. Raw is always kept so an
// unparseable value is still shown to the user; Context is the surrounding
// line or cell reference.
type MetricMatch struct {
	Raw      string  `json:"raw"`
	Value    float64 `json:"value,omitempty"`
	IsNumber bool    `json:"is_number"`
	Context  string  `json:"context"`
}

type MetricEntry struct {
	Metric  string        `json:"metric"`
	Matches []MetricMatch `json:"matches"`
}

// MetricRecord holds entries in fixed vocabulary order. A metric absent from
// the document has no entry, so absence stays distinguishable from zero.
type MetricRecord struct {
	Entries []MetricEntry `json:"entries"`
}

// Get reports the entry for a metric name and whether one exists.
func (r MetricRecord) Get(metric string) (MetricEntry, bool) {
	for _, e := range r.Entries {
		if e.Metric == metric {
			return e, true
		}
	}
	return MetricEntry{}, false
}

func (r MetricRecord) Len() int {
	return len(r.Entries)
}

// ConversationTurn is one question/answer exchange; order within the
// transcript is the timestamp.
type ConversationTurn struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}
