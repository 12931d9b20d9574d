package domain

// Analysis es el contenido narrativo generado por el colaborador externo.
// Todos los campos son opcionales: el servicio remoto puede omitir secciones
// y la presentación debe tolerarlo.
type Analysis struct {
	Introduction            string                   `json:"introduction,omitempty"`
	Strengths               []string                 `json:"strengths,omitempty"`
	CareerPaths             []CareerPath             `json:"careerPaths,omitempty"`
	LearningRecommendations []LearningRecommendation `json:"learningRecommendations,omitempty"`
	TeamDynamics            string                   `json:"teamDynamics,omitempty"`
	Closing                 string                   `json:"closing,omitempty"`

	// RawContent guarda el texto tal cual cuando la respuesta del LLM no
	// pudo parsearse como JSON estructurado.
	RawContent string `json:"rawContent,omitempty"`
}

// IsEmpty reporta si el análisis no trae ningún contenido usable.
func (a Analysis) IsEmpty() bool {
	return a.Introduction == "" &&
		len(a.Strengths) == 0 &&
		len(a.CareerPaths) == 0 &&
		len(a.LearningRecommendations) == 0 &&
		a.TeamDynamics == "" &&
		a.Closing == "" &&
		a.RawContent == ""
}

// CareerPath es una sugerencia de rol con su justificación.
type CareerPath struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LearningRecommendation agrupa recursos de aprendizaje por categoría.
type LearningRecommendation struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}
