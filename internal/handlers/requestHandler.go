package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/akolanti/FinDocAPI/internal/adapter"
	"github.com/akolanti/FinDocAPI/internal/adapter/utils"
	"github.com/akolanti/FinDocAPI/internal/api"
	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/extract"
	"github.com/akolanti/FinDocAPI/internal/metrics"
	"github.com/akolanti/FinDocAPI/internal/qa"
	"github.com/akolanti/FinDocAPI/internal/session"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

var logRH *logger_i.Logger
var initOnce sync.Once

var sessionManager *session.Manager
var qaService qa.Service

// InitHandlers wires the session manager and the question answering
// service into the http layer. Must run before the server starts.
func InitHandlers(manager *session.Manager, service qa.Service) {
	initOnce.Do(func() {
		logRH = logger_i.NewLogger("RequestHandler")
		sessionManager = manager
		qaService = service
	})
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// CreateSessionHandler godoc
// @Summary      Create a new analysis session
// @Description  Allocates a session with an empty transcript and returns its ID. Documents and questions are scoped to this session.
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  api.SessionResponse  "Session created"
// @Failure      500  {object}  api.ErrorResponse    "Session store unavailable"
// @Router       /sessions [post]
func CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sess, err := sessionManager.Create(r.Context())
		if err != nil {
			logRH.Error("Couldn't create session :", "err", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "", "Could not create session")
			return
		}
		writeJsonResponse(w, http.StatusCreated, api.SessionResponse{SessionId: sess.ID()})
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// UploadDocumentHandler godoc
// @Summary      Upload a financial document
// @Description  Receives a PDF, spreadsheet or text file via multipart/form-data, extracts its content, scans it for financial metrics and binds it to the session.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id             path      string  true  "Session ID"
// @Param        document_name  formData  string  true  "The display name of the document"
// @Param        document       formData  file    true  "The file to analyse"
// @Success      200  {object}  api.UploadResponse  "Document extracted and scanned"
// @Failure      400  {object}  api.ErrorResponse   "Missing fields or file too large"
// @Failure      404  {object}  api.ErrorResponse   "Session not found"
// @Failure      415  {object}  api.ErrorResponse   "Unsupported document format"
// @Failure      422  {object}  api.ErrorResponse   "Document could not be parsed"
// @Router       /sessions/{id}/document [post]
func UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		sess, sessionId, ok := lookupSession(w, r)
		if !ok {
			return
		}

		targetDir, errString := getTargetDirectory()
		if errString != "" {
			logRH.Error("Couldn't get target directory :", "err", errString)
			WriteErrorResponse(w, http.StatusInternalServerError, sessionId, errString)
			return
		}

		if err := r.ParseMultipartForm(config.MaxUploadSizeBytes); err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, sessionId, "File too large or bad request")
			return
		}

		docName := r.FormValue("document_name")
		if docName == "" {
			WriteErrorResponse(w, http.StatusBadRequest, sessionId, "document_name is required")
			return
		}

		fileReader, fileMetadata, err := r.FormFile("document")
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, sessionId, "Could not retrieve file")
			return
		}
		defer fileReader.Close()

		kind := extract.KindFromPath(fileMetadata.Filename)
		if kind == docModel.ERR {
			WriteErrorResponse(w, http.StatusUnsupportedMediaType, sessionId,
				fmt.Sprintf("Unsupported document format: %s", filepath.Ext(fileMetadata.Filename)))
			return
		}

		filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
		tempFilePath := filepath.Join(targetDir, filename)
		destinationFileWriter, err := os.Create(tempFilePath)
		if err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, sessionId, "Storage error")
			return
		}

		if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
			destinationFileWriter.Close()
			WriteErrorResponse(w, http.StatusInternalServerError, sessionId, "Write error")
			return
		}
		destinationFileWriter.Close()
		defer os.Remove(tempFilePath)

		started := time.Now()
		err = sess.Load(r.Context(), docModel.UploadedDocument{
			Name: docName,
			Kind: kind,
			Path: tempFilePath,
		})
		if err != nil {
			logRH.Warn("Document load failed: ", "session:", sessionId, "error:", err)
			WriteErrorResponse(w, statusFromError(err), sessionId, err.Error())
			return
		}
		metrics.CaptureExtractionMetrics(string(kind), time.Since(started))

		content, _ := sess.Content()
		record, _ := sess.Metrics()
		for _, entry := range record.Entries {
			metrics.CountDetectedMetric(entry.Metric, len(entry.Matches))
		}

		preview := adapter.Preview(qa.RenderContent(content))
		writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(sessionId, content, record, preview))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// AskHandler godoc
// @Summary      Ask a question about the loaded document
// @Description  Sends the question with the document content to the language model and records the exchange in the session transcript.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Session ID"
// @Param        request  body      api.AskRequest  true  "The question to answer"
// @Success      200  {object}  api.AskResponse    "Model answer"
// @Failure      400  {object}  api.ErrorResponse  "Invalid request body"
// @Failure      404  {object}  api.ErrorResponse  "Session not found"
// @Failure      409  {object}  api.ErrorResponse  "No document loaded yet"
// @Failure      502  {object}  api.ErrorResponse  "Language model unavailable"
// @Router       /sessions/{id}/ask [post]
func AskHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		sess, sessionId, ok := lookupSession(w, r)
		if !ok {
			return
		}

		var requestData api.AskRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Ask handler reader :", err)
			}
		}(r.Body)
		if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || strings.TrimSpace(requestData.Question) == "" {
			logRH.Warn("Bad Ask Request: ", "error:", err, "session:", sessionId)
			WriteErrorResponse(w, http.StatusBadRequest, sessionId, "question is required")
			return
		}

		answer, err := qaService.Ask(r.Context(), sess, requestData.Question)
		if err != nil {
			logRH.Warn("Ask failed: ", "session:", sessionId, "error:", err)
			WriteErrorResponse(w, statusFromError(err), sessionId, err.Error())
			return
		}

		writeJsonResponse(w, http.StatusOK, api.AskResponse{
			SessionId: sessionId,
			Question:  requestData.Question,
			Answer:    answer,
		})
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// GetMetricsHandler godoc
// @Summary      Get detected financial metrics
// @Description  Returns the metric entries detected during the last upload, in vocabulary order.
// @Tags         Documents
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  api.MetricsResponse  "Detected metrics"
// @Failure      404  {object}  api.ErrorResponse    "Session not found"
// @Failure      409  {object}  api.ErrorResponse    "No document loaded yet"
// @Router       /sessions/{id}/metrics [get]
func GetMetricsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sess, sessionId, ok := lookupSession(w, r)
		if !ok {
			return
		}

		record, err := sess.Metrics()
		if err != nil {
			WriteErrorResponse(w, statusFromError(err), sessionId, err.Error())
			return
		}
		writeJsonResponse(w, http.StatusOK, api.MetricsResponse{
			SessionId: sessionId,
			Metrics:   adapter.ToMetricSummaries(record),
		})
	}
}

// GetContentHandler godoc
// @Summary      Get extracted document content
// @Description  Returns the full extracted text or tables of the document bound to the session.
// @Tags         Documents
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  api.ContentResponse  "Extracted content"
// @Failure      404  {object}  api.ErrorResponse    "Session not found"
// @Failure      409  {object}  api.ErrorResponse    "No document loaded yet"
// @Router       /sessions/{id}/content [get]
func GetContentHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sess, sessionId, ok := lookupSession(w, r)
		if !ok {
			return
		}

		content, err := sess.Content()
		if err != nil {
			WriteErrorResponse(w, statusFromError(err), sessionId, err.Error())
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToContentResponse(sessionId, content))
	}
}

// GetTranscriptHandler godoc
// @Summary      Get the session transcript
// @Description  Returns every question and answer recorded for the session, oldest first.
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  api.TranscriptResponse  "Conversation turns"
// @Failure      404  {object}  api.ErrorResponse       "Session not found"
// @Router       /sessions/{id}/transcript [get]
func GetTranscriptHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sess, sessionId, ok := lookupSession(w, r)
		if !ok {
			return
		}

		turns, err := sess.Transcript(r.Context())
		if err != nil {
			logRH.Error("Transcript read failed: ", "session:", sessionId, "error:", err)
			WriteErrorResponse(w, http.StatusInternalServerError, sessionId, "Could not read transcript")
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToTranscriptResponse(sessionId, turns))
	}
}

func lookupSession(w http.ResponseWriter, r *http.Request) (*session.Context, string, bool) {
	sessionId := utils.GetChiURLParam(r, "id")
	if sessionId == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "session id is required")
		return nil, "", false
	}

	sess, found := sessionManager.Get(sessionId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, sessionId, "Session not found")
		return nil, sessionId, false
	}
	return sess, sessionId, true
}
