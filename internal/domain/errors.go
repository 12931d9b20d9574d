package domain

import "errors"

var (
	// ErrAnswerRequired bloquea advance() cuando la pregunta actual no tiene
	// respuesta. Es una compuerta para el caller, no una falla.
	ErrAnswerRequired = errors.New("current question has no answer")

	// ErrUnknownOption indica que el option id no pertenece a la pregunta actual.
	ErrUnknownOption = errors.New("option not in current question")

	// ErrNoCompletedAnswers indica que no existe registro de quiz finalizado.
	// El caller debe redirigir a una sesión nueva en lugar de calcular puntajes.
	ErrNoCompletedAnswers = errors.New("no completed answers recorded")
)
