package service

import (
	"strings"
	"testing"
)

const structuredAnalysis = `{
	"introduction": "Welcome, Architect!",
	"strengths": ["system design", "long-term thinking"],
	"careerPaths": [{"title": "Solutions Architect", "description": "Designs systems end to end"}],
	"learningRecommendations": [{"category": "Cloud", "items": ["AWS", "Terraform"]}],
	"teamDynamics": "Works best with pioneers",
	"closing": "Go build something great."
}`

func TestParseAnalysisStructuredJSON(t *testing.T) {
	analysis := ParseAnalysis(structuredAnalysis)

	if analysis.Introduction != "Welcome, Architect!" {
		t.Fatalf("unexpected introduction: %q", analysis.Introduction)
	}
	if len(analysis.Strengths) != 2 {
		t.Fatalf("expected 2 strengths, got %d", len(analysis.Strengths))
	}
	if len(analysis.CareerPaths) != 1 || analysis.CareerPaths[0].Title != "Solutions Architect" {
		t.Fatalf("unexpected career paths: %+v", analysis.CareerPaths)
	}
	if analysis.RawContent != "" {
		t.Fatalf("structured parse must not set raw content, got %q", analysis.RawContent)
	}
}

func TestParseAnalysisMarkdownFences(t *testing.T) {
	raw := "```json\n" + structuredAnalysis + "\n```"

	analysis := ParseAnalysis(raw)

	if analysis.Introduction == "" {
		t.Fatalf("expected fenced JSON to parse, got %+v", analysis)
	}
	if analysis.RawContent != "" {
		t.Fatalf("expected no raw fallback for fenced JSON")
	}
}

func TestParseAnalysisJSONWithSurroundingProse(t *testing.T) {
	raw := "Here is your analysis:\n" + structuredAnalysis + "\nHope it helps!"

	analysis := ParseAnalysis(raw)

	if analysis.TeamDynamics != "Works best with pioneers" {
		t.Fatalf("expected embedded JSON object to parse, got %+v", analysis)
	}
}

func TestParseAnalysisPartialFields(t *testing.T) {
	analysis := ParseAnalysis(`{"introduction": "short one"}`)

	if analysis.Introduction != "short one" {
		t.Fatalf("unexpected introduction: %q", analysis.Introduction)
	}
	if analysis.Strengths != nil || analysis.TeamDynamics != "" {
		t.Fatalf("absent fields must stay empty: %+v", analysis)
	}
}

func TestParseAnalysisUnstructuredFallsBackToRaw(t *testing.T) {
	raw := "You are a natural problem solver with strong instincts."

	analysis := ParseAnalysis(raw)

	if analysis.RawContent != raw {
		t.Fatalf("expected raw content fallback, got %+v", analysis)
	}
}

func TestParseAnalysisEmptyInput(t *testing.T) {
	if got := ParseAnalysis("   \n"); !got.IsEmpty() {
		t.Fatalf("expected empty analysis, got %+v", got)
	}
}

func TestParseAnalysisStringWithBraces(t *testing.T) {
	raw := `{"introduction": "use {curly} braces and \"quotes\" freely"}`

	analysis := ParseAnalysis(raw)

	if !strings.Contains(analysis.Introduction, "{curly}") {
		t.Fatalf("braces inside strings must survive: %q", analysis.Introduction)
	}
}

func TestFirstJSONObjectUnbalanced(t *testing.T) {
	if got := firstJSONObject(`{"open": true`); got != "" {
		t.Fatalf("expected empty for unbalanced input, got %q", got)
	}
	if got := firstJSONObject("no objects here"); got != "" {
		t.Fatalf("expected empty for plain text, got %q", got)
	}
}
