package catalog

import (
	"fmt"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// Catalog expone el conjunto ordenado e inmutable de preguntas del quiz y la
// metadata de cada categoría. Se valida completo al construirse: claves de
// puntaje desconocidas, ids repetidos o pesos negativos se rechazan acá y no
// en tiempo de lectura.
type Catalog struct {
	questions []domain.Question
	byID      map[int]domain.Question
	meta      map[domain.Category]domain.CategoryMeta
}

// New valida las preguntas y la metadata y construye el catálogo.
func New(questions []domain.Question, meta map[domain.Category]domain.CategoryMeta) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog: no questions")
	}

	byID := make(map[int]domain.Question, len(questions))
	for i, q := range questions {
		// Ids 1-based y contiguos para poder indexar por posición.
		if q.ID != i+1 {
			return nil, fmt.Errorf("catalog: question at position %d has id %d, want %d", i, q.ID, i+1)
		}
		if !domain.IsValidQuestionType(q.Type) {
			return nil, fmt.Errorf("catalog: question %d has unknown type %q", q.ID, q.Type)
		}
		if q.Prompt == "" {
			return nil, fmt.Errorf("catalog: question %d has empty prompt", q.ID)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("catalog: question %d has %d options, need at least 2", q.ID, len(q.Options))
		}

		seenOpts := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt.ID == "" {
				return nil, fmt.Errorf("catalog: question %d has option with empty id", q.ID)
			}
			if seenOpts[opt.ID] {
				return nil, fmt.Errorf("catalog: question %d has duplicate option id %q", q.ID, opt.ID)
			}
			seenOpts[opt.ID] = true

			if opt.Icon != "" && !knownIcons[opt.Icon] {
				return nil, fmt.Errorf("catalog: question %d option %q uses unknown icon %q", q.ID, opt.ID, opt.Icon)
			}
			for cat, weight := range opt.Scores {
				if !domain.IsValidCategory(cat) {
					return nil, fmt.Errorf("catalog: question %d option %q scores unknown category %q", q.ID, opt.ID, cat)
				}
				if weight < 0 {
					return nil, fmt.Errorf("catalog: question %d option %q has negative weight %d for %q", q.ID, opt.ID, weight, cat)
				}
			}
		}

		byID[q.ID] = q
	}

	for _, c := range domain.Categories() {
		m, ok := meta[c]
		if !ok {
			return nil, fmt.Errorf("catalog: missing metadata for category %q", c)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("catalog: empty display name for category %q", c)
		}
	}
	for c := range meta {
		if !domain.IsValidCategory(c) {
			return nil, fmt.Errorf("catalog: metadata for unknown category %q", c)
		}
	}

	return &Catalog{questions: questions, byID: byID, meta: meta}, nil
}

// MustDefault construye el catálogo con los datos embebidos del producto.
// Los datos son estáticos; un error acá es un bug de compilación del catálogo.
func MustDefault() *Catalog {
	c, err := New(defaultQuestions(), defaultCategoryMeta())
	if err != nil {
		panic(err)
	}
	return c
}

// Len devuelve la cantidad de preguntas.
func (c *Catalog) Len() int { return len(c.questions) }

// Questions devuelve la lista ordenada completa.
func (c *Catalog) Questions() []domain.Question {
	out := make([]domain.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionAt devuelve la pregunta en la posición 0-based idx.
func (c *Catalog) QuestionAt(idx int) (domain.Question, bool) {
	if idx < 0 || idx >= len(c.questions) {
		return domain.Question{}, false
	}
	return c.questions[idx], true
}

// QuestionByID busca una pregunta por su id estable.
func (c *Catalog) QuestionByID(id int) (domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// CategoryMeta devuelve la metadata de presentación de una categoría.
func (c *Catalog) CategoryMeta(cat domain.Category) (domain.CategoryMeta, bool) {
	m, ok := c.meta[cat]
	return m, ok
}
