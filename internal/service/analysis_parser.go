package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

var (
	fenceOpenRe  = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceCloseRe = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// ParseAnalysis interpreta la salida del LLM como un domain.Analysis.
// Tolera fences de markdown y texto alrededor del objeto JSON. Si no hay
// forma de parsear JSON estructurado, degrada a RawContent con el texto tal
// cual: contenido no parseable no es un error del flujo.
func ParseAnalysis(raw string) domain.Analysis {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.Analysis{}
	}

	for _, candidate := range analysisCandidates(trimmed) {
		var analysis domain.Analysis
		if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
			continue
		}
		if !analysis.IsEmpty() {
			return analysis
		}
	}

	return domain.Analysis{RawContent: trimmed}
}

// analysisCandidates genera los textos a intentar como JSON, del más
// prometedor al más crudo.
func analysisCandidates(raw string) []string {
	cleaned := stripFences(raw)

	candidates := make([]string, 0, 4)
	if obj := firstJSONObject(cleaned); obj != "" {
		candidates = append(candidates, obj)
	}
	if obj := firstJSONObject(raw); obj != "" {
		candidates = append(candidates, obj)
	}
	candidates = append(candidates, cleaned, raw)
	return candidates
}

// stripFences remueve fences ```json ... ``` y el BOM inicial si existe.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "\ufeff")
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// firstJSONObject devuelve el primer objeto JSON balanceado del input, o ""
// si no hay ninguno. Respeta strings con llaves y escapes adentro.
func firstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}
