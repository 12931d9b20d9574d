package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/catalog"
	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
	"github.com/mightymouse007/genie-it-pathfinder/internal/llm"
	"github.com/mightymouse007/genie-it-pathfinder/internal/service"
)

// ResultsHandler expone los puntajes determinísticos y la narrativa generada
// por el colaborador externo.
type ResultsHandler struct {
	logger   *zap.Logger
	quiz     *service.QuizService
	analysis *service.AnalysisService
	limiter  service.AnalysisRateLimiter
	catalog  *catalog.Catalog
}

func NewResultsHandler(
	logger *zap.Logger,
	quiz *service.QuizService,
	analysis *service.AnalysisService,
	limiter service.AnalysisRateLimiter,
	cat *catalog.Catalog,
) *ResultsHandler {
	return &ResultsHandler{logger: logger, quiz: quiz, analysis: analysis, limiter: limiter, catalog: cat}
}

// Results maneja GET /results: deriva los puntajes del snapshot finalizado
// sin volver a reproducir la navegación. Sin quiz terminado responde 404 con
// señal de redirección a una sesión nueva.
func (h *ResultsHandler) Results(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	answers, err := h.quiz.CompletedAnswers(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCompletedAnswers) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no completed quiz", "redirect": "/quiz"})
			return
		}
		h.logger.Error("load completed answers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load results"})
		return
	}

	scores := service.CalculateScores(answers, h.catalog)
	dominant := service.DominantCategory(scores)
	percentages := service.TraitPercentages(scores)
	topTraits := service.TopTraits(scores, 3)

	meta, _ := h.catalog.CategoryMeta(dominant)

	c.JSON(http.StatusOK, gin.H{
		"personality_type": dominant,
		"personality": gin.H{
			"name":    meta.Name,
			"icon":    meta.Icon,
			"tagline": meta.Tagline,
		},
		"scores":      scores,
		"percentages": percentages,
		"top_traits":  topTraits,
	})
}

// Analysis maneja POST /results/analysis: pide la narrativa al LLM. Los
// fallos del upstream se mapean a códigos distintos para que el cliente
// muestre el retry correcto; los puntajes determinísticos no dependen de
// este endpoint.
func (h *ResultsHandler) Analysis(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	answers, err := h.quiz.CompletedAnswers(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCompletedAnswers) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no completed quiz", "redirect": "/quiz"})
			return
		}
		h.logger.Error("load completed answers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load results"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(sessionID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many analysis requests, try again in a moment"})
		return
	}

	dominant := service.DominantCategory(service.CalculateScores(answers, h.catalog))

	analysis, err := h.analysis.Generate(c.Request.Context(), dominant, answers)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limits exceeded, please try again in a moment"})
		case errors.Is(err, llm.ErrQuotaExceeded):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "ai credits depleted, please contact support"})
		default:
			h.logger.Error("generate analysis failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate analysis"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
