package service

import (
	"encoding/json"
	"fmt"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

const analysisSystemPrompt = `You are an expert IT career counselor and personality analyst. Generate warm, encouraging, and highly personalized personality analyses for IT professionals based on their quiz results. Your analysis should be insightful, actionable, and motivating.`

// buildAnalysisPrompt arma el prompt de usuario con el tipo dominante y las
// respuestas crudas. El contrato de salida (claves JSON) forma parte del
// prompt y debe coincidir con domain.Analysis.
func buildAnalysisPrompt(personalityType domain.Category, answers domain.AnswerMap) string {
	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		rawAnswers = []byte("{}")
	}

	return fmt.Sprintf(`Based on this IT personality quiz result, generate a comprehensive, personalized analysis:

Personality Type: %s
Quiz Responses: %s

Please provide a detailed analysis with the following sections:

1. **Introduction (2-3 paragraphs)**:
   - A warm, engaging opening that resonates with this personality type
   - Explain what makes this personality unique in the IT world
   - Highlight their natural approach to technology and problem-solving

2. **Core Strengths (5-6 bullet points)**:
   - List specific technical and soft skills they excel at
   - Be concrete and actionable
   - Include both technical abilities and interpersonal strengths

3. **Ideal Career Paths (3-4 options)**:
   - Suggest specific job roles that align perfectly with their personality
   - Explain why each role would be a great fit
   - Include both traditional and emerging career options

4. **Learning & Growth Recommendations**:
   - Suggest 3-4 specific technologies, frameworks, or skills to learn
   - Recommend learning resources (courses, books, communities)
   - Provide actionable next steps for career development

5. **Team Dynamics**:
   - Explain how they work best in teams
   - Suggest complementary personality types for collaboration
   - Highlight their unique value proposition in team settings

6. **Motivational Closing**:
   - End with an inspiring, personalized message
   - Remind them of their potential impact in the tech industry

Format your response as JSON with these keys: introduction, strengths (array), careerPaths (array of objects with 'title' and 'description'), learningRecommendations (array of objects with 'category' and 'items'), teamDynamics, closing.`, personalityType, rawAnswers)
}
