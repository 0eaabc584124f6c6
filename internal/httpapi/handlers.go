package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type summarizeRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// summarizeHandler accepts {"url"} or {"text"} as JSON, or a multipart form
// with a "file" PDF upload (or "url"/"text" fields).
func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := logger.RequestID(ctx)

	in, err := s.decodeInput(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:     err.Error(),
			Reason:    "invalid_request",
			RequestID: requestID,
		})
		return
	}

	res, err := s.pipeline.Run(ctx, in)
	if err != nil {
		msg := err.Error()
		var fe *failure.Error
		if errors.As(err, &fe) && fe.Message != "" {
			msg = fe.Message
		}
		writeJSON(w, failure.HTTPStatus(err), errorResponse{
			Error:     msg,
			Reason:    failure.ReasonOf(err).String(),
			RequestID: requestID,
		})
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Summary:   res.Summary,
		Source:    res.Source,
		Model:     res.Model,
		Words:     res.Words,
		RequestID: requestID,
	})
}

func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (input.Spec, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return s.decodeMultipart(r)
	}

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return input.Spec{}, fmt.Errorf("invalid request body: %w", err)
	}
	return fromFields(req.URL, req.Text)
}

func (s *Server) decodeMultipart(r *http.Request) (input.Spec, error) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return input.Spec{}, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return fromFields(r.FormValue("url"), r.FormValue("text"))
	}
	if err != nil {
		return input.Spec{}, fmt.Errorf("read upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return input.Spec{}, fmt.Errorf("read upload: %w", err)
	}
	return input.Document(data, header.Filename), nil
}

func fromFields(url, text string) (input.Spec, error) {
	if strings.TrimSpace(url) != "" && strings.TrimSpace(text) != "" {
		return input.Spec{}, errors.New("provide either url or text, not both")
	}
	if strings.TrimSpace(url) != "" {
		return input.YouTubeURL(url), nil
	}
	return input.Text(text), nil
}
