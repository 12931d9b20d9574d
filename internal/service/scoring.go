package service

import (
	"math"
	"sort"

	"github.com/mightymouse007/genie-it-pathfinder/internal/catalog"
	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// CalculateScores reduce un mapa de respuestas (posiblemente incompleto) a un
// vector de puntajes absolutos por categoría. Función pura: mismo (answers,
// catálogo) produce siempre el mismo vector, sin importar el orden de
// iteración del mapa porque la suma es conmutativa.
//
// Entradas con ids de pregunta u opción que ya no existen en el catálogo se
// saltean en silencio: un catálogo puede cambiar entre sesiones y dejar
// referencias viejas en el estado persistido.
func CalculateScores(answers domain.AnswerMap, cat *catalog.Catalog) domain.ScoreVector {
	scores := domain.NewScoreVector()

	for questionID, optionID := range answers {
		question, ok := cat.QuestionByID(questionID)
		if !ok {
			continue
		}
		option, ok := question.OptionByID(optionID)
		if !ok {
			continue
		}
		for category, weight := range option.Scores {
			scores[category] += weight
		}
	}

	return scores
}

// DominantCategory devuelve la categoría con el puntaje estrictamente más
// alto. Los empates se resuelven a favor de la primera en el orden canónico
// de enumeración; con todo en cero cae al default fijo.
func DominantCategory(scores domain.ScoreVector) domain.Category {
	maxScore := 0
	dominant := domain.DefaultCategory

	for _, category := range domain.Categories() {
		if scores[category] > maxScore {
			maxScore = scores[category]
			dominant = category
		}
	}

	return dominant
}

// TraitPercentages normaliza el vector a enteros 0-100 por categoría. Cada
// valor se redondea de forma independiente, así que la suma puede no dar 100.
// Con total cero devuelve todo en cero en lugar de dividir por cero.
func TraitPercentages(scores domain.ScoreVector) domain.TraitPercentages {
	total := scores.Total()

	percentages := make(domain.TraitPercentages, len(scores))
	for _, category := range domain.Categories() {
		if total > 0 {
			percentages[category] = int(math.Round(float64(scores[category]) / float64(total) * 100))
		} else {
			percentages[category] = 0
		}
	}

	return percentages
}

// TopTraits devuelve las count categorías de mayor puntaje en orden
// descendente. El sort es estable sobre el orden canónico, así los empates
// quedan en orden de enumeración. Cada llamada recalcula desde cero.
func TopTraits(scores domain.ScoreVector, count int) []domain.TraitScore {
	ranked := make([]domain.TraitScore, 0, len(scores))
	for _, category := range domain.Categories() {
		ranked = append(ranked, domain.TraitScore{Category: category, Score: scores[category]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if count < 0 {
		count = 0
	}
	if count > len(ranked) {
		count = len(ranked)
	}
	return ranked[:count]
}
