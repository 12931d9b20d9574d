package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/catalog"
	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
	"github.com/mightymouse007/genie-it-pathfinder/internal/repository"
)

// QuizService es la máquina de estados de progresión del quiz. Cada
// transición restaura el Progress persistido de la sesión, aplica el cambio
// sobre el value object y lo vuelve a escribir (write-through, sin batching).
//
// Las transiciones son serializadas por sesión del lado del cliente; dos
// clientes compartiendo una sesión terminan en last-writer-wins sobre el
// almacenamiento, una limitación aceptada.
type QuizService struct {
	catalog *catalog.Catalog
	states  repository.StateRepository
	logger  *zap.Logger
}

func NewQuizService(cat *catalog.Catalog, states repository.StateRepository, logger *zap.Logger) *QuizService {
	return &QuizService{catalog: cat, states: states, logger: logger}
}

// Restore rehidrata el estado de la sesión desde el almacenamiento, o arranca
// fresco en el índice 0 si no hay nada guardado. Un índice persistido fuera
// de rango (catálogo cambiado entre sesiones) se recorta al rango válido.
func (s *QuizService) Restore(ctx context.Context, sessionID string) (domain.Progress, error) {
	progress, found, err := s.states.LoadProgress(ctx, sessionID)
	if err != nil {
		s.logger.Warn("restore progress failed, starting fresh", zap.Error(err), zap.String("session_id", sessionID))
		return domain.NewProgress(), nil
	}
	if !found {
		return domain.NewProgress(), nil
	}

	if progress.Answers == nil {
		progress.Answers = make(domain.AnswerMap)
	}
	if progress.CurrentIndex < 0 {
		progress.CurrentIndex = 0
	}
	if progress.CurrentIndex >= s.catalog.Len() {
		progress.CurrentIndex = s.catalog.Len() - 1
	}
	if progress.Direction == "" {
		progress.Direction = domain.DirectionForward
	}
	return progress, nil
}

// RecordAnswer registra la opción elegida para la pregunta actual. Responder
// de nuevo la misma pregunta reemplaza la selección anterior; las respuestas
// se indexan por id de pregunta, no por orden de visita.
func (s *QuizService) RecordAnswer(ctx context.Context, sessionID, optionID string) (domain.Progress, error) {
	progress, err := s.Restore(ctx, sessionID)
	if err != nil {
		return domain.Progress{}, err
	}

	question, ok := s.catalog.QuestionAt(progress.CurrentIndex)
	if !ok {
		return domain.Progress{}, fmt.Errorf("current index %d out of catalog range", progress.CurrentIndex)
	}
	if _, ok := question.OptionByID(optionID); !ok {
		return progress, domain.ErrUnknownOption
	}

	progress = progress.Clone()
	progress.Answers[question.ID] = optionID

	s.persist(ctx, sessionID, progress)
	return progress, nil
}

// Advance avanza a la siguiente pregunta. Si la pregunta actual no tiene
// respuesta devuelve ErrAnswerRequired sin tocar el estado: es una compuerta,
// no una falla. En la última pregunta finaliza: publica el snapshot inmutable
// de respuestas completas y devuelve completed=true.
func (s *QuizService) Advance(ctx context.Context, sessionID string) (domain.Progress, bool, error) {
	progress, err := s.Restore(ctx, sessionID)
	if err != nil {
		return domain.Progress{}, false, err
	}

	question, ok := s.catalog.QuestionAt(progress.CurrentIndex)
	if !ok {
		return domain.Progress{}, false, fmt.Errorf("current index %d out of catalog range", progress.CurrentIndex)
	}
	if _, answered := progress.Answers[question.ID]; !answered {
		return progress, false, domain.ErrAnswerRequired
	}

	progress = progress.Clone()
	progress.Direction = domain.DirectionForward

	if progress.CurrentIndex < s.catalog.Len()-1 {
		progress.CurrentIndex++
		s.persist(ctx, sessionID, progress)
		return progress, false, nil
	}

	// Última pregunta respondida: el snapshot finalizado queda a disposición
	// del flujo de resultados y del colaborador de narrativa.
	if err := s.states.SaveCompleted(ctx, sessionID, progress.Answers.Clone()); err != nil {
		s.logger.Warn("save completed answers failed", zap.Error(err), zap.String("session_id", sessionID))
	}
	s.persist(ctx, sessionID, progress)
	return progress, true, nil
}

// Retreat vuelve a la pregunta anterior. En el índice 0 es un no-op. No exige
// que la pregunta actual esté respondida.
func (s *QuizService) Retreat(ctx context.Context, sessionID string) (domain.Progress, error) {
	progress, err := s.Restore(ctx, sessionID)
	if err != nil {
		return domain.Progress{}, err
	}

	if progress.CurrentIndex == 0 {
		return progress, nil
	}

	progress = progress.Clone()
	progress.CurrentIndex--
	progress.Direction = domain.DirectionBackward

	s.persist(ctx, sessionID, progress)
	return progress, nil
}

// Reset borra el progreso y el registro de respuestas completas de la sesión.
func (s *QuizService) Reset(ctx context.Context, sessionID string) error {
	if err := s.states.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("clear session state failed", zap.Error(err), zap.String("session_id", sessionID))
	}
	return nil
}

// CompletedAnswers devuelve el snapshot finalizado de la sesión, o
// ErrNoCompletedAnswers si el quiz nunca se terminó. El caller debe tratarlo
// como señal de redirección a una sesión nueva, no como falla.
func (s *QuizService) CompletedAnswers(ctx context.Context, sessionID string) (domain.AnswerMap, error) {
	answers, found, err := s.states.LoadCompleted(ctx, sessionID)
	if err != nil {
		s.logger.Warn("load completed answers failed", zap.Error(err), zap.String("session_id", sessionID))
		return nil, domain.ErrNoCompletedAnswers
	}
	if !found || len(answers) == 0 {
		return nil, domain.ErrNoCompletedAnswers
	}
	return answers, nil
}

// IsAnswerRequired reporta si err es la compuerta de advance sin respuesta.
func IsAnswerRequired(err error) bool {
	return errors.Is(err, domain.ErrAnswerRequired)
}

// persist escribe el progreso con tolerancia: una falla del backend deja la
// sesión sin persistir pero nunca corta la transición en curso.
func (s *QuizService) persist(ctx context.Context, sessionID string, progress domain.Progress) {
	if err := s.states.SaveProgress(ctx, sessionID, progress); err != nil {
		s.logger.Warn("save progress failed, session continues unpersisted", zap.Error(err), zap.String("session_id", sessionID))
	}
}
