package domain

// Category identifica uno de los diez arquetipos de personalidad IT.
// El conjunto es cerrado: ningún vector de puntaje admite claves fuera de él.
type Category string

const (
	CategoryArchitect         Category = "architect"
	CategoryCodeWizard        Category = "codeWizard"
	CategorySecurityGuardian  Category = "securityGuardian"
	CategoryDataScientist     Category = "dataScientist"
	CategoryDevOps            Category = "devOps"
	CategoryUIUX              Category = "uiUx"
	CategoryQADetective       Category = "qaDetective"
	CategoryTechSupport       Category = "techSupport"
	CategoryCloudNavigator    Category = "cloudNavigator"
	CategoryInnovationPioneer Category = "innovationPioneer"
)

// DefaultCategory es el resultado cuando todos los puntajes quedan en cero.
const DefaultCategory = CategoryCodeWizard

// categoryOrder fija el orden canónico de enumeración. Los empates del
// resultado dominante se resuelven a favor de la categoría que aparece antes.
var categoryOrder = [...]Category{
	CategoryArchitect,
	CategoryCodeWizard,
	CategorySecurityGuardian,
	CategoryDataScientist,
	CategoryDevOps,
	CategoryUIUX,
	CategoryQADetective,
	CategoryTechSupport,
	CategoryCloudNavigator,
	CategoryInnovationPioneer,
}

// Categories devuelve las diez categorías en orden canónico.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// IsValidCategory reporta si c pertenece al conjunto cerrado.
func IsValidCategory(c Category) bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// ScoreVector es el puntaje absoluto acumulado por categoría. Siempre
// contiene exactamente las diez claves del conjunto cerrado.
type ScoreVector map[Category]int

// NewScoreVector crea un vector con las diez categorías inicializadas en cero.
func NewScoreVector() ScoreVector {
	sv := make(ScoreVector, len(categoryOrder))
	for _, c := range categoryOrder {
		sv[c] = 0
	}
	return sv
}

// Total suma todas las entradas del vector.
func (sv ScoreVector) Total() int {
	total := 0
	for _, score := range sv {
		total += score
	}
	return total
}

// TraitPercentages normaliza cada categoría a un entero 0-100, redondeado
// de forma independiente (la suma no tiene por qué dar 100).
type TraitPercentages map[Category]int

// TraitScore es una entrada (categoría, puntaje) del ranking de rasgos.
type TraitScore struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
}

// CategoryMeta describe una categoría para la capa de presentación.
type CategoryMeta struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Tagline string `json:"tagline"`
}
