package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
	"github.com/mightymouse007/genie-it-pathfinder/internal/llm"
)

// AnalysisService genera la narrativa de enriquecimiento llamando al LLM
// externo. Corre después de la finalización del quiz y nunca muta el estado
// de progresión: los puntajes determinísticos no dependen de este servicio.
type AnalysisService struct {
	llmClient llm.Client
	logger    *zap.Logger
}

func NewAnalysisService(llmClient llm.Client, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{llmClient: llmClient, logger: logger}
}

// Generate pide al colaborador externo el análisis para el tipo dominante y
// las respuestas crudas. Los errores del upstream suben tipados
// (llm.ErrRateLimited, llm.ErrQuotaExceeded) para que el caller los
// distinga; contenido no parseable NO es error, degrada a RawContent.
// La operación es idempotente: reintentar re-emite el mismo request.
func (s *AnalysisService) Generate(ctx context.Context, personalityType domain.Category, answers domain.AnswerMap) (domain.Analysis, error) {
	prompt := buildAnalysisPrompt(personalityType, answers)

	raw, err := s.llmClient.Generate(ctx, analysisSystemPrompt, prompt)
	if err != nil {
		s.logger.Warn("analysis generation failed",
			zap.Error(err),
			zap.String("personality_type", string(personalityType)),
		)
		return domain.Analysis{}, fmt.Errorf("generate analysis: %w", err)
	}

	analysis := ParseAnalysis(raw)
	if analysis.RawContent != "" {
		s.logger.Warn("analysis response was not structured JSON, returning raw content",
			zap.String("personality_type", string(personalityType)),
		)
	}
	if analysis.IsEmpty() {
		return domain.Analysis{}, fmt.Errorf("generate analysis: empty response")
	}

	return analysis, nil
}
