package repository

import (
	"context"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// StateRepository persiste los dos registros durables de una sesión de quiz:
// el progreso en curso y el mapa de respuestas finalizado. Ambos se guardan
// como JSON bajo claves independientes; el que falte se reporta con found=false,
// nunca como error.
type StateRepository interface {
	LoadProgress(ctx context.Context, sessionID string) (domain.Progress, bool, error)
	SaveProgress(ctx context.Context, sessionID string, progress domain.Progress) error
	LoadCompleted(ctx context.Context, sessionID string) (domain.AnswerMap, bool, error)
	SaveCompleted(ctx context.Context, sessionID string, answers domain.AnswerMap) error
	// Clear borra ambos registros. Borrar una sesión inexistente no es error.
	Clear(ctx context.Context, sessionID string) error
}

// progressRecord es el layout JSON del registro de progreso. El nombre de los
// campos es parte del contrato de almacenamiento, no cambiarlos.
type progressRecord struct {
	Answers         domain.AnswerMap `json:"answers"`
	CurrentQuestion int              `json:"currentQuestion"`
}

func toRecord(p domain.Progress) progressRecord {
	answers := p.Answers
	if answers == nil {
		answers = make(domain.AnswerMap)
	}
	return progressRecord{Answers: answers, CurrentQuestion: p.CurrentIndex}
}

func fromRecord(rec progressRecord) domain.Progress {
	p := domain.NewProgress()
	p.CurrentIndex = rec.CurrentQuestion
	if rec.Answers != nil {
		p.Answers = rec.Answers
	}
	return p
}

// Claves de almacenamiento: "<app>-quiz-progress" y "<app>-quiz-answers",
// namespaced por sesión.
func progressKey(appPrefix, sessionID string) string {
	return appPrefix + "-quiz-progress:" + sessionID
}

func answersKey(appPrefix, sessionID string) string {
	return appPrefix + "-quiz-answers:" + sessionID
}
