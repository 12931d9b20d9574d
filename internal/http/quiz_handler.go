package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/catalog"
	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
	"github.com/mightymouse007/genie-it-pathfinder/internal/service"
)

// QuizHandler mantiene dependencias para los endpoints de progresión del quiz.
type QuizHandler struct {
	logger  *zap.Logger
	quiz    *service.QuizService
	tokens  *service.SessionTokenService
	catalog *catalog.Catalog
}

func NewQuizHandler(
	logger *zap.Logger,
	quiz *service.QuizService,
	tokens *service.SessionTokenService,
	cat *catalog.Catalog,
) *QuizHandler {
	return &QuizHandler{logger: logger, quiz: quiz, tokens: tokens, catalog: cat}
}

// CreateSession maneja POST /quiz/session: emite una sesión anónima nueva.
func (h *QuizHandler) CreateSession(c *gin.Context) {
	token, sessionID, err := h.tokens.Issue()
	if err != nil {
		h.logger.Error("issue session token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id":    sessionID,
		"session_token": token,
	})
}

// State maneja GET /quiz/state y devuelve la pregunta activa con el progreso.
func (h *QuizHandler) State(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	progress, err := h.quiz.Restore(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("restore quiz state failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load quiz state"})
		return
	}

	c.JSON(http.StatusOK, h.stateResponse(progress, false))
}

// Answer maneja POST /quiz/answer: registra la opción elegida para la
// pregunta actual, reemplazando cualquier selección anterior.
func (h *QuizHandler) Answer(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	var req struct {
		OptionID string `json:"option_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	progress, err := h.quiz.RecordAnswer(c.Request.Context(), sessionID, req.OptionID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownOption) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "option not in current question"})
			return
		}
		h.logger.Error("record answer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record answer"})
		return
	}

	c.JSON(http.StatusOK, h.stateResponse(progress, false))
}

// Next maneja POST /quiz/next. Sin respuesta en la pregunta actual responde
// 409: es la compuerta de completitud, no una falla del servidor.
func (h *QuizHandler) Next(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	progress, completed, err := h.quiz.Advance(c.Request.Context(), sessionID)
	if err != nil {
		if service.IsAnswerRequired(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "answer required"})
			return
		}
		h.logger.Error("advance failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not advance"})
		return
	}

	c.JSON(http.StatusOK, h.stateResponse(progress, completed))
}

// Previous maneja POST /quiz/previous. En la primera pregunta es un no-op.
func (h *QuizHandler) Previous(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	progress, err := h.quiz.Retreat(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("retreat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not go back"})
		return
	}

	c.JSON(http.StatusOK, h.stateResponse(progress, false))
}

// Reset maneja POST /quiz/reset: borra progreso y respuestas finalizadas.
func (h *QuizHandler) Reset(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	if err := h.quiz.Reset(c.Request.Context(), sessionID); err != nil {
		h.logger.Error("reset failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset"})
		return
	}

	c.Status(http.StatusNoContent)
}

type optionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type questionView struct {
	ID          int          `json:"id"`
	Type        string       `json:"type"`
	Prompt      string       `json:"prompt"`
	Description string       `json:"description,omitempty"`
	Options     []optionView `json:"options"`
}

// stateResponse arma la vista del estado actual. Los pesos de puntaje de cada
// opción no se exponen al cliente.
func (h *QuizHandler) stateResponse(progress domain.Progress, completed bool) gin.H {
	resp := gin.H{
		"current_index":  progress.CurrentIndex,
		"total":          h.catalog.Len(),
		"answered_count": len(progress.Answers),
		"direction":      progress.Direction,
		"completed":      completed,
	}

	question, ok := h.catalog.QuestionAt(progress.CurrentIndex)
	if !ok {
		return resp
	}

	options := make([]optionView, 0, len(question.Options))
	for _, opt := range question.Options {
		options = append(options, optionView{
			ID:    opt.ID,
			Label: opt.Label,
			Icon:  iconAsset(opt.Icon),
		})
	}

	resp["question"] = questionView{
		ID:          question.ID,
		Type:        string(question.Type),
		Prompt:      question.Prompt,
		Description: question.Description,
		Options:     options,
	}
	if selected, answered := progress.Answers[question.ID]; answered {
		resp["selected_option"] = selected
	}
	return resp
}
