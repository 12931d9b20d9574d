package domain

// AnswerMap asocia cada id de pregunta con el id de la opción elegida.
// A lo sumo una respuesta por pregunta; re-responder reemplaza la anterior.
type AnswerMap map[int]string

// Clone devuelve una copia independiente del mapa.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for qid, optID := range a {
		out[qid] = optID
	}
	return out
}

// Direction es una pista de presentación sobre la última navegación.
// No participa del puntaje.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// Progress es el estado resumible de una sesión de quiz en curso. Es un
// value object: cada transición recibe un Progress y devuelve el siguiente,
// sin estado ambiente.
type Progress struct {
	CurrentIndex int       `json:"current_index"`
	Answers      AnswerMap `json:"answers"`
	Direction    Direction `json:"direction"`
}

// NewProgress crea un estado fresco en la primera pregunta sin respuestas.
func NewProgress() Progress {
	return Progress{
		CurrentIndex: 0,
		Answers:      make(AnswerMap),
		Direction:    DirectionForward,
	}
}

// Clone copia el estado completo, incluido el mapa de respuestas.
func (p Progress) Clone() Progress {
	out := p
	out.Answers = p.Answers.Clone()
	return out
}
