package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "manualrag/handler/http"
	"manualrag/src/core/manual"
	"manualrag/src/core/manualqa"
	"manualrag/src/core/retriever"
)

func intPtr(v int) *int { return &v }

type stubQueryService struct {
	lastQuery string
	answer    retriever.CandidateResult
	search    retriever.Result
	err       error
}

func (s *stubQueryService) Answer(_ context.Context, query string) (retriever.CandidateResult, error) {
	s.lastQuery = query
	return s.answer, s.err
}

func (s *stubQueryService) Search(_ context.Context, query string) (retriever.Result, error) {
	s.lastQuery = query
	return s.search, s.err
}

type stubSystemService struct {
	status *manualqa.HealthStatus
}

func (s *stubSystemService) CheckHealth(context.Context) (*manualqa.HealthStatus, error) {
	return s.status, nil
}

func newTestRouter(q manualqa.QueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	status := &manualqa.HealthStatus{Status: "healthy", IndexSize: 2}
	status.Components.Index = manualqa.StatusUp
	status.Components.Metadata = manualqa.StatusUp
	return handler.NewRouter(handler.NewHandler(q, &stubSystemService{status: status}))
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuery(t *testing.T) {
	svc := &stubQueryService{
		answer: retriever.CandidateResult{
			Status: retriever.StatusOK,
			Candidates: []retriever.Candidate{{
				Item: retriever.PageMatch{
					ImageURL:    "https://example.com/fig1.png",
					PageNo:      intPtr(7),
					BoundingBox: manual.Region(`[1,2,3,4]`),
					Caption:     "Valve Assembly",
					Context:     "valve assembly",
				},
				Score: 0.5,
			}},
		},
	}
	r := newTestRouter(svc)

	w := do(t, r, http.MethodPost, "/query", `{"query":"valve assembly"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "valve assembly", svc.lastQuery)
	assert.JSONEq(t, `{"results":[{"image_url":"https://example.com/fig1.png","page_no":7,
		"bounding_box":[1,2,3,4],"caption":"Valve Assembly","context":"valve assembly","score":0.5}]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(handler.RequestIDHeader))
}

func TestQueryInsufficient(t *testing.T) {
	svc := &stubQueryService{answer: retriever.CandidateResult{Status: retriever.StatusInsufficient, Reason: retriever.ReasonNoMatches}}
	r := newTestRouter(svc)

	w := do(t, r, http.MethodPost, "/query", `{"query":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", svc.lastQuery)
	assert.JSONEq(t, `{"result":"insufficient_info"}`, w.Body.String())
}

func TestQueryBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing query", body: `{}`},
		{name: "null query", body: `{"query":null}`},
		{name: "wrong type", body: `{"query":42}`},
		{name: "invalid json", body: `{"query":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubQueryService{}
			for _, path := range []string{"/query", "/search"} {
				w := do(t, newTestRouter(svc), http.MethodPost, path, tt.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), `"code":"INVALID_REQUEST"`)
			}
		})
	}
}

func TestQueryServiceErrors(t *testing.T) {
	invalid := &stubQueryService{err: manualqa.ErrInvalidQuery}
	w := do(t, newTestRouter(invalid), http.MethodPost, "/query", `{"query":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	broken := &stubQueryService{err: errors.New("boom")}
	w = do(t, newTestRouter(broken), http.MethodPost, "/search", `{"query":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"boom"}`, w.Body.String())
}

func TestErrorsReachMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	boom := errors.New("boom")

	var recorded error
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			recorded = c.Errors.Last().Err
		}
	})
	handler.NewHandler(&stubQueryService{err: boom}, &stubSystemService{}).RegisterRoutes(r)

	w := do(t, r, http.MethodPost, "/query", `{"query":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.ErrorIs(t, recorded, boom)

	recorded = nil
	w = do(t, r, http.MethodPost, "/search", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Error(t, recorded)
}

func TestSearch(t *testing.T) {
	svc := &stubQueryService{
		search: retriever.Result{
			Status: retriever.StatusOK,
			Items: []retriever.ScoredItem{{
				Item: manual.IndexedItem{
					ContentItem: manual.ContentItem{Type: manual.ContentTable, Raw: "a b", Caption: "Ratings"},
					Page:        intPtr(2),
				},
				Score: 0.25,
			}},
		},
	}

	w := do(t, newTestRouter(svc), http.MethodPost, "/search", `{"query":"ratings"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[{"type":"table","content":"a b","caption":"Ratings",
		"citation":{"page_no":2,"bounding_box":null},"confidence":0.25}]}`, w.Body.String())
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(&stubQueryService{})

	w := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "server is up", w.Body.String())

	w = do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","components":{"index":"up","metadata":"up"},"index_size":2}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	r := newTestRouter(&stubQueryService{})

	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	req.Header.Set("Origin", "https://docs.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://docs.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDPropagates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(handler.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	newTestRouter(&stubQueryService{}).ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(handler.RequestIDHeader))
}
