package service

import (
	"testing"

	"github.com/mightymouse007/genie-it-pathfinder/internal/catalog"
	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// testCatalog arma un catálogo chico con los pesos del escenario de empate:
// Q1 opción "A" suma architect:3, Q2 opción "B" suma architect:1 codeWizard:4.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	questions := []domain.Question{
		{
			ID:     1,
			Type:   domain.QuestionBinary,
			Prompt: "first",
			Options: []domain.Option{
				{ID: "A", Label: "a", Scores: map[domain.Category]int{domain.CategoryArchitect: 3}},
				{ID: "X", Label: "x", Scores: map[domain.Category]int{domain.CategoryUIUX: 5}},
			},
		},
		{
			ID:     2,
			Type:   domain.QuestionBinary,
			Prompt: "second",
			Options: []domain.Option{
				{ID: "B", Label: "b", Scores: map[domain.Category]int{domain.CategoryArchitect: 1, domain.CategoryCodeWizard: 4}},
				{ID: "Y", Label: "y", Scores: map[domain.Category]int{domain.CategoryDevOps: 2}},
			},
		},
	}

	cat, err := catalog.New(questions, fullMeta())
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return cat
}

func fullMeta() map[domain.Category]domain.CategoryMeta {
	meta := make(map[domain.Category]domain.CategoryMeta)
	for _, c := range domain.Categories() {
		meta[c] = domain.CategoryMeta{Name: string(c), Icon: "Sparkles", Tagline: string(c)}
	}
	return meta
}

func TestCalculateScoresEmptyAnswers(t *testing.T) {
	cat := testCatalog(t)

	scores := CalculateScores(domain.AnswerMap{}, cat)

	if len(scores) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(scores))
	}
	for _, c := range domain.Categories() {
		if scores[c] != 0 {
			t.Fatalf("expected zero score for %s, got %d", c, scores[c])
		}
	}
}

func TestCalculateScoresTotalConservation(t *testing.T) {
	cat := testCatalog(t)

	answers := domain.AnswerMap{1: "A", 2: "B"}
	scores := CalculateScores(answers, cat)

	// A aporta 3 y B aporta 1+4: el total del vector debe conservar la suma.
	if got := scores.Total(); got != 8 {
		t.Fatalf("expected total 8, got %d", got)
	}
}

func TestCalculateScoresTieScenario(t *testing.T) {
	cat := testCatalog(t)

	scores := CalculateScores(domain.AnswerMap{1: "A", 2: "B"}, cat)

	if scores[domain.CategoryArchitect] != 4 {
		t.Fatalf("expected architect 4, got %d", scores[domain.CategoryArchitect])
	}
	if scores[domain.CategoryCodeWizard] != 4 {
		t.Fatalf("expected codeWizard 4, got %d", scores[domain.CategoryCodeWizard])
	}
	for _, c := range domain.Categories() {
		if c == domain.CategoryArchitect || c == domain.CategoryCodeWizard {
			continue
		}
		if scores[c] != 0 {
			t.Fatalf("expected zero for %s, got %d", c, scores[c])
		}
	}

	// Empate 4-4: gana la categoría anterior en el orden de enumeración.
	if got := DominantCategory(scores); got != domain.CategoryArchitect {
		t.Fatalf("expected architect to win the tie, got %s", got)
	}
}

func TestCalculateScoresSkipsStaleReferences(t *testing.T) {
	cat := testCatalog(t)

	answers := domain.AnswerMap{
		1:  "A",
		2:  "no-such-option",
		99: "A",
	}
	scores := CalculateScores(answers, cat)

	// Solo la entrada válida aporta; las referencias viejas se saltean.
	if got := scores.Total(); got != 3 {
		t.Fatalf("expected total 3, got %d", got)
	}
}

func TestCalculateScoresIsDeterministic(t *testing.T) {
	cat := testCatalog(t)
	answers := domain.AnswerMap{1: "X", 2: "Y"}

	first := CalculateScores(answers, cat)
	for i := 0; i < 20; i++ {
		again := CalculateScores(answers, cat)
		for _, c := range domain.Categories() {
			if first[c] != again[c] {
				t.Fatalf("run %d: score for %s changed from %d to %d", i, c, first[c], again[c])
			}
		}
	}
}

func TestDominantCategoryAllZeroFallsBack(t *testing.T) {
	scores := domain.NewScoreVector()

	if got := DominantCategory(scores); got != domain.DefaultCategory {
		t.Fatalf("expected default %s, got %s", domain.DefaultCategory, got)
	}
}

func TestDominantCategoryDeterministic(t *testing.T) {
	scores := domain.NewScoreVector()
	scores[domain.CategoryDevOps] = 7
	scores[domain.CategoryUIUX] = 7
	scores[domain.CategoryQADetective] = 3

	first := DominantCategory(scores)
	if first != domain.CategoryDevOps {
		t.Fatalf("expected devOps (earlier in enumeration order), got %s", first)
	}
	for i := 0; i < 20; i++ {
		if got := DominantCategory(scores); got != first {
			t.Fatalf("run %d: dominant changed from %s to %s", i, first, got)
		}
	}
}

func TestTraitPercentagesSingleCategory(t *testing.T) {
	scores := domain.NewScoreVector()
	scores[domain.CategoryUIUX] = 5

	percentages := TraitPercentages(scores)

	if percentages[domain.CategoryUIUX] != 100 {
		t.Fatalf("expected uiUx 100%%, got %d", percentages[domain.CategoryUIUX])
	}
	for _, c := range domain.Categories() {
		if c == domain.CategoryUIUX {
			continue
		}
		if percentages[c] != 0 {
			t.Fatalf("expected 0%% for %s, got %d", c, percentages[c])
		}
	}
}

func TestTraitPercentagesBounds(t *testing.T) {
	scores := domain.NewScoreVector()
	scores[domain.CategoryArchitect] = 1
	scores[domain.CategoryCodeWizard] = 2
	scores[domain.CategoryDataScientist] = 4

	percentages := TraitPercentages(scores)

	for _, c := range domain.Categories() {
		p := percentages[c]
		if p < 0 || p > 100 {
			t.Fatalf("percentage for %s out of bounds: %d", c, p)
		}
	}
}

func TestTraitPercentagesAllZero(t *testing.T) {
	percentages := TraitPercentages(domain.NewScoreVector())

	for _, c := range domain.Categories() {
		if percentages[c] != 0 {
			t.Fatalf("expected 0%% for %s with zero total, got %d", c, percentages[c])
		}
	}
}

func TestTopTraits(t *testing.T) {
	scores := domain.NewScoreVector()
	scores[domain.CategoryUIUX] = 9
	scores[domain.CategoryArchitect] = 4
	scores[domain.CategoryCodeWizard] = 4
	scores[domain.CategoryDevOps] = 1

	top := TopTraits(scores, 3)

	if len(top) != 3 {
		t.Fatalf("expected 3 traits, got %d", len(top))
	}
	if top[0].Category != domain.CategoryUIUX || top[0].Score != 9 {
		t.Fatalf("unexpected first trait: %+v", top[0])
	}
	// Empate 4-4: el sort estable preserva el orden de enumeración.
	if top[1].Category != domain.CategoryArchitect {
		t.Fatalf("expected architect second, got %s", top[1].Category)
	}
	if top[2].Category != domain.CategoryCodeWizard {
		t.Fatalf("expected codeWizard third, got %s", top[2].Category)
	}
}

func TestTopTraitsCountClamped(t *testing.T) {
	scores := domain.NewScoreVector()

	if got := TopTraits(scores, 50); len(got) != 10 {
		t.Fatalf("expected clamp to 10, got %d", len(got))
	}
	if got := TopTraits(scores, -1); len(got) != 0 {
		t.Fatalf("expected empty for negative count, got %d", len(got))
	}
}
