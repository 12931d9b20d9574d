package domain

// QuestionType clasifica cómo se presenta una pregunta.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionRating         QuestionType = "rating"
	QuestionBinary         QuestionType = "binary"
	QuestionImageChoice    QuestionType = "image-choice"
)

// IsValidQuestionType reporta si t es uno de los cuatro tipos soportados.
func IsValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionMultipleChoice, QuestionRating, QuestionBinary, QuestionImageChoice:
		return true
	}
	return false
}

// Question es una pregunta inmutable del catálogo. Los ids son enteros
// 1-based y contiguos en el orden del catálogo.
type Question struct {
	ID          int          `json:"id"`
	Type        QuestionType `json:"type"`
	Prompt      string       `json:"prompt"`
	Description string       `json:"description,omitempty"`
	Options     []Option     `json:"options"`
}

// OptionByID busca una opción por id dentro de la pregunta.
func (q Question) OptionByID(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Option es una alternativa de respuesta con su vector parcial de puntajes.
// Una categoría ausente en Scores aporta cero.
type Option struct {
	ID     string           `json:"id"`
	Label  string           `json:"label"`
	Icon   IconTag          `json:"icon,omitempty"`
	Scores map[Category]int `json:"scores"`
}

// IconTag es una etiqueta cerrada de ícono. El core nunca la resuelve a un
// recurso gráfico; eso ocurre en la capa de presentación vía tabla de lookup.
type IconTag string
