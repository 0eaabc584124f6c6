package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

type stubPipeline struct {
	res    *pipeline.Result
	err    error
	inputs []input.Spec
}

func (s *stubPipeline) Run(ctx context.Context, in input.Spec) (*pipeline.Result, error) {
	s.inputs = append(s.inputs, in)
	if _, ok := ctx.Deadline(); !ok {
		return nil, failure.New(failure.Unknown, "test", nil, "request context has no deadline")
	}
	return s.res, s.err
}

func newTestServer(t *testing.T, p pipeline.Pipeline, mutate func(*config.ServerConfig)) http.Handler {
	t.Helper()
	cfg := config.Config{}
	require.NoError(t, cfg.Validate())
	if mutate != nil {
		mutate(&cfg.Server)
	}
	return New(cfg.Server, p, logger.Nop()).Routes()
}

func okPipeline() *stubPipeline {
	return &stubPipeline{res: &pipeline.Result{Summary: "A short summary.", Source: "passthrough", Model: "stub", Words: 3}}
}

func postJSON(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, okPipeline(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestSummarizeText(t *testing.T) {
	p := okPipeline()
	h := newTestServer(t, p, nil)

	rec := postJSON(h, `{"text":"The quick brown fox"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A short summary.", resp.Summary)
	assert.Equal(t, "passthrough", resp.Source)
	assert.Equal(t, 3, resp.Words)
	assert.Equal(t, rec.Header().Get(requestIDHeader), resp.RequestID)

	require.Len(t, p.inputs, 1)
	assert.Equal(t, input.KindText, p.inputs[0].Kind())
	assert.Equal(t, "The quick brown fox", p.inputs[0].Text())
}

func TestSummarizeURLKeepsRequestID(t *testing.T) {
	p := okPipeline()
	h := newTestServer(t, p, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", strings.NewReader(`{"url":"https://youtu.be/abc"}`))
	req.Header.Set(requestIDHeader, "fixed-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fixed-id", rec.Header().Get(requestIDHeader))
	assert.Contains(t, rec.Body.String(), `"request_id":"fixed-id"`)
	assert.Equal(t, "https://youtu.be/abc", p.inputs[0].URL())
}

func TestSummarizeUpload(t *testing.T) {
	p := okPipeline()
	h := newTestServer(t, p, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "paper.pdf")
	require.NoError(t, err)
	fw.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, p.inputs, 1)
	assert.Equal(t, input.KindDocument, p.inputs[0].Kind())
	assert.Equal(t, "paper.pdf", p.inputs[0].Filename())
	assert.Equal(t, []byte("%PDF-1.4 fake"), p.inputs[0].Data())
}

func TestSummarizeErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"malformed json", `{"text":`, nil, http.StatusBadRequest, "invalid_request"},
		{"both fields", `{"text":"a","url":"https://youtu.be/abc"}`, nil, http.StatusBadRequest, "invalid_request"},
		{"empty input", `{"text":""}`, failure.New(failure.EmptyInput, "t", nil, "please provide some text to summarize"), http.StatusBadRequest, "empty_input"},
		{"no captions", `{"url":"https://youtu.be/abc"}`, failure.New(failure.TranscriptionFailed, "t", nil, "failed"), http.StatusUnprocessableEntity, "transcription_failed"},
		{"auth", `{"text":"x"}`, failure.New(failure.AuthError, "t", nil, "API key is not configured"), http.StatusBadGateway, "auth_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubPipeline{err: tt.err}
			h := newTestServer(t, p, nil)

			rec := postJSON(h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantReason, resp.Reason)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestSummarizeRateLimited(t *testing.T) {
	h := newTestServer(t, okPipeline(), func(c *config.ServerConfig) {
		c.RateLimitRPM = 1
		c.RateLimitBurst = 1
	})

	assert.Equal(t, http.StatusOK, postJSON(h, `{"text":"one"}`).Code)
	rec := postJSON(h, `{"text":"two"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limited")
}

func TestSummarizeMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, okPipeline(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/summarize", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
