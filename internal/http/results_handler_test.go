package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/catalog"
	"github.com/mightymouse007/genie-it-pathfinder/internal/llm"
	"github.com/mightymouse007/genie-it-pathfinder/internal/repository"
	"github.com/mightymouse007/genie-it-pathfinder/internal/service"
)

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func setupResultsRouter(t *testing.T, mock *llm.MockClient, limiter service.AnalysisRateLimiter) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	cat := catalog.MustDefault()
	states := repository.NewMemoryStateRepository()

	quizSvc := service.NewQuizService(cat, states, logger)
	analysisSvc := service.NewAnalysisService(mock, logger)
	tokens := service.NewSessionTokenService("test-secret", time.Hour)

	quizH := NewQuizHandler(logger, quizSvc, tokens, cat)
	resultsH := NewResultsHandler(logger, quizSvc, analysisSvc, limiter, cat)
	router := NewRouter(logger, quizH, resultsH, tokens, nil)

	return &testEnv{router: router, tokens: tokens, states: states, mock: mock}
}

func TestAnalysisSuccess(t *testing.T) {
	mock := &llm.MockClient{Response: `{"introduction":"hi there","closing":"good luck"}`}
	env := setupResultsRouter(t, mock, nil)
	token := createSession(t, env)
	completeQuiz(t, env, token)

	rec := performRequest(env.router, http.MethodPost, "/results/analysis", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("analysis: status %d body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Analysis struct {
			Introduction string `json:"introduction"`
			Closing      string `json:"closing"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}
	if resp.Analysis.Introduction != "hi there" {
		t.Fatalf("unexpected analysis: %+v", resp.Analysis)
	}
	if mock.Calls != 1 {
		t.Fatalf("expected one llm call, got %d", mock.Calls)
	}
}

func TestAnalysisWithoutCompletedQuizRedirects(t *testing.T) {
	env := setupResultsRouter(t, &llm.MockClient{}, nil)
	token := createSession(t, env)

	rec := performRequest(env.router, http.MethodPost, "/results/analysis", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without completed quiz, got %d", rec.Code)
	}
	if env.mock.Calls != 0 {
		t.Fatalf("llm must not be called without completed quiz")
	}
}

func TestAnalysisErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"upstream rate limited", llm.ErrRateLimited, http.StatusTooManyRequests},
		{"quota exceeded", llm.ErrQuotaExceeded, http.StatusPaymentRequired},
		{"transport failure", errTransport, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := setupResultsRouter(t, &llm.MockClient{Err: tc.err}, nil)
			token := createSession(t, env)
			completeQuiz(t, env, token)

			rec := performRequest(env.router, http.MethodPost, "/results/analysis", token, nil)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d body %s", tc.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

var errTransport = &transportError{}

type transportError struct{}

func (*transportError) Error() string { return "connection refused" }

// El fallo del colaborador es reintentable: el mismo request se re-emite y
// puede tener éxito sin tocar el estado del quiz.
func TestAnalysisRetryAfterFailure(t *testing.T) {
	mock := &llm.MockClient{Err: llm.ErrRateLimited}
	env := setupResultsRouter(t, mock, nil)
	token := createSession(t, env)
	completeQuiz(t, env, token)

	rec := performRequest(env.router, http.MethodPost, "/results/analysis", token, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 first, got %d", rec.Code)
	}

	mock.Err = nil
	mock.Response = `{"introduction":"second try"}`
	rec = performRequest(env.router, http.MethodPost, "/results/analysis", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected retry to succeed, got %d body %s", rec.Code, rec.Body.String())
	}

	// Los resultados determinísticos siguen disponibles tras el fallo.
	rec = performRequest(env.router, http.MethodGet, "/results", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("deterministic results unavailable after analysis failure: %d", rec.Code)
	}
}

func TestAnalysisRateLimiterDenies(t *testing.T) {
	mock := &llm.MockClient{Response: `{"introduction":"hi"}`}
	env := setupResultsRouter(t, mock, denyAllLimiter{})
	token := createSession(t, env)
	completeQuiz(t, env, token)

	rec := performRequest(env.router, http.MethodPost, "/results/analysis", token, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 from limiter, got %d", rec.Code)
	}
	if mock.Calls != 0 {
		t.Fatalf("llm must not be called when rate limited")
	}
}
