package catalog

import "github.com/mightymouse007/genie-it-pathfinder/internal/domain"

// knownIcons es el conjunto cerrado de etiquetas de ícono que el catálogo
// admite. La resolución a un recurso gráfico vive en la capa de presentación.
var knownIcons = map[domain.IconTag]bool{
	"BarChart": true, "Beaker": true, "Book": true, "Bot": true,
	"Brain": true, "CheckCircle": true, "Cloud": true, "Code": true,
	"Compass": true, "Database": true, "Eye": true, "FileText": true,
	"GitBranch": true, "Heart": true, "Home": true, "Lightbulb": true,
	"Lock": true, "Paintbrush": true, "Palette": true, "Puzzle": true,
	"Rocket": true, "Server": true, "Shield": true, "Smartphone": true,
	"Sparkles": true, "Users": true, "Users2": true, "Video": true,
	"Wrench": true, "Zap": true,
}

func defaultCategoryMeta() map[domain.Category]domain.CategoryMeta {
	return map[domain.Category]domain.CategoryMeta{
		domain.CategoryArchitect:         {Name: "The Architect", Icon: "Building2", Tagline: "Strategic System Designer"},
		domain.CategoryCodeWizard:        {Name: "The Code Wizard", Icon: "Wand2", Tagline: "Full-Stack Sorcerer"},
		domain.CategorySecurityGuardian:  {Name: "The Security Guardian", Icon: "Shield", Tagline: "Cybersecurity Champion"},
		domain.CategoryDataScientist:     {Name: "The Data Scientist", Icon: "BarChart3", Tagline: "Analytics Mastermind"},
		domain.CategoryDevOps:            {Name: "The DevOps Engineer", Icon: "Cog", Tagline: "Infrastructure Automator"},
		domain.CategoryUIUX:              {Name: "The UI/UX Magician", Icon: "Palette", Tagline: "Design Visionary"},
		domain.CategoryQADetective:       {Name: "The QA Detective", Icon: "SearchCheck", Tagline: "Quality Investigator"},
		domain.CategoryTechSupport:       {Name: "The Tech Support Hero", Icon: "HeartHandshake", Tagline: "Problem-Solving Champion"},
		domain.CategoryCloudNavigator:    {Name: "The Cloud Navigator", Icon: "CloudCog", Tagline: "Cloud Architecture Expert"},
		domain.CategoryInnovationPioneer: {Name: "The Innovation Pioneer", Icon: "Sparkles", Tagline: "Emerging Tech Explorer"},
	}
}

func defaultQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:          1,
			Type:        domain.QuestionMultipleChoice,
			Prompt:      "What's your ideal work environment?",
			Description: "Choose the setting where you thrive most",
			Options: []domain.Option{
				{ID: "remote-solo", Label: "Remote, working independently with deep focus", Icon: "Home",
					Scores: map[domain.Category]int{domain.CategoryArchitect: 3, domain.CategoryCodeWizard: 3, domain.CategoryDataScientist: 2}},
				{ID: "office-collab", Label: "Office with collaborative team environment", Icon: "Users",
					Scores: map[domain.Category]int{domain.CategoryDevOps: 3, domain.CategoryUIUX: 3, domain.CategoryTechSupport: 3}},
				{ID: "hybrid-flex", Label: "Hybrid with flexible hours and autonomy", Icon: "Zap",
					Scores: map[domain.Category]int{domain.CategoryCloudNavigator: 3, domain.CategoryInnovationPioneer: 3, domain.CategoryQADetective: 2}},
				{ID: "startup-fast", Label: "Fast-paced startup with rapid iteration", Icon: "Rocket",
					Scores: map[domain.Category]int{domain.CategoryInnovationPioneer: 4, domain.CategoryDevOps: 2, domain.CategoryCodeWizard: 2}},
			},
		},
		{
			ID:     2,
			Type:   domain.QuestionBinary,
			Prompt: "When solving a problem, do you prefer...",
			Options: []domain.Option{
				{ID: "plan-first", Label: "Planning everything before coding", Icon: "FileText",
					Scores: map[domain.Category]int{domain.CategoryArchitect: 4, domain.CategoryQADetective: 3, domain.CategoryCloudNavigator: 2}},
				{ID: "code-first", Label: "Diving into code and iterating", Icon: "Code",
					Scores: map[domain.Category]int{domain.CategoryCodeWizard: 4, domain.CategoryInnovationPioneer: 3, domain.CategoryDevOps: 2}},
			},
		},
		{
			ID:          3,
			Type:        domain.QuestionRating,
			Prompt:      "How much do you enjoy working with visual design?",
			Description: "Rate from 1 (not at all) to 5 (love it!)",
			Options: []domain.Option{
				{ID: "1", Label: "1", Scores: map[domain.Category]int{domain.CategorySecurityGuardian: 2, domain.CategoryDataScientist: 2, domain.CategoryDevOps: 1}},
				{ID: "2", Label: "2", Scores: map[domain.Category]int{domain.CategoryArchitect: 1, domain.CategoryQADetective: 1}},
				{ID: "3", Label: "3", Scores: map[domain.Category]int{domain.CategoryCodeWizard: 1, domain.CategoryCloudNavigator: 1}},
				{ID: "4", Label: "4", Scores: map[domain.Category]int{domain.CategoryUIUX: 3, domain.CategoryInnovationPioneer: 2}},
				{ID: "5", Label: "5", Scores: map[domain.Category]int{domain.CategoryUIUX: 5}},
			},
		},
		{
			ID:     4,
			Type:   domain.QuestionMultipleChoice,
			Prompt: "Which technology excites you most?",
			Options: []domain.Option{
				{ID: "ai-ml", Label: "AI & Machine Learning", Icon: "Brain",
					Scores: map[domain.Category]int{domain.CategoryDataScientist: 4, domain.CategoryInnovationPioneer: 3}},
				{ID: "cloud-infra", Label: "Cloud Infrastructure & DevOps", Icon: "Cloud",
					Scores: map[domain.Category]int{domain.CategoryCloudNavigator: 4, domain.CategoryDevOps: 4}},
				{ID: "security", Label: "Cybersecurity & Encryption", Icon: "Shield",
					Scores: map[domain.Category]int{domain.CategorySecurityGuardian: 5}},
				{ID: "frontend", Label: "Frontend Frameworks & UI", Icon: "Palette",
					Scores: map[domain.Category]int{domain.CategoryUIUX: 4, domain.CategoryCodeWizard: 2}},
				{ID: "backend", Label: "Backend Systems & APIs", Icon: "Database",
					Scores: map[domain.Category]int{domain.CategoryArchitect: 4, domain.CategoryCodeWizard: 3}},
			},
		},
		{
			ID:     5,
			Type:   domain.QuestionBinary,
			Prompt: "Do you prefer...",
			Options: []domain.Option{
				{ID: "build-new", Label: "Building new features from scratch", Icon: "Sparkles",
					Scores: map[domain.Category]int{domain.CategoryCodeWizard: 3, domain.CategoryInnovationPioneer: 4, domain.CategoryUIUX: 2}},
				{ID: "optimize-existing", Label: "Optimizing and debugging existing code", Icon: "Wrench",
					Scores: map[domain.Category]int{domain.CategoryQADetective: 4, domain.CategoryDevOps: 3, domain.CategoryArchitect: 2}},
			},
		},
		{
			ID:     6,
			Type:   domain.QuestionMultipleChoice,
			Prompt: "What's your learning style?",
			Options: []domain.Option{
				{ID: "docs-reading", Label: "Reading documentation thoroughly", Icon: "Book",
					Scores: map[domain.Category]int{domain.CategoryArchitect: 3, domain.CategoryDataScientist: 2, domain.CategorySecurityGuardian: 2}},
				{ID: "hands-on", Label: "Hands-on experimentation", Icon: "Beaker",
					Scores: map[domain.Category]int{domain.CategoryCodeWizard: 3, domain.CategoryInnovationPioneer: 3, domain.CategoryDevOps: 2}},
				{ID: "video-tutorials", Label: "Video tutorials and courses", Icon: "Video",
					Scores: map[domain.Category]int{domain.CategoryUIUX: 2, domain.CategoryTechSupport: 2, domain.CategoryCloudNavigator: 2}},
				{ID: "pair-programming", Label: "Pair programming and mentorship", Icon: "Users2",
					Scores: map[domain.Category]int{domain.CategoryTechSupport: 3, domain.CategoryQADetective: 2, domain.CategoryDevOps: 2}},
			},
		},
		{
			ID:          7,
			Type:        domain.QuestionRating,
			Prompt:      "How comfortable are you with public speaking/presenting?",
			Description: "Rate from 1 (terrified) to 5 (love it!)",
			Options: []domain.Option{
				{ID: "1", Label: "1", Scores: map[domain.Category]int{domain.CategoryCodeWizard: 2, domain.CategorySecurityGuardian: 2}},
				{ID: "2", Label: "2", Scores: map[domain.Category]int{domain.CategoryDataScientist: 1, domain.CategoryQADetective: 1}},
				{ID: "3", Label: "3", Scores: map[domain.Category]int{domain.CategoryDevOps: 1, domain.CategoryArchitect: 1}},
				{ID: "4", Label: "4", Scores: map[domain.Category]int{domain.CategoryCloudNavigator: 2, domain.CategoryUIUX: 2}},
				{ID: "5", Label: "5", Scores: map[domain.Category]int{domain.CategoryTechSupport: 4, domain.CategoryInnovationPioneer: 3}},
			},
		},
		{
			ID:     8,
			Type:   domain.QuestionBinary,
			Prompt: "Would you rather...",
			Options: []domain.Option{
				{ID: "automate-everything", Label: "Automate everything possible", Icon: "Bot",
					Scores: map[domain.Category]int{domain.CategoryDevOps: 4, domain.CategoryCloudNavigator: 3, domain.CategoryCodeWizard: 2}},
				{ID: "manual-control", Label: "Have manual control and oversight", Icon: "Eye",
					Scores: map[domain.Category]int{domain.CategoryQADetective: 4, domain.CategorySecurityGuardian: 3, domain.CategoryArchitect: 2}},
			},
		},
		{
			ID:     9,
			Type:   domain.QuestionMultipleChoice,
			Prompt: "What type of project sounds most appealing?",
			Options: []domain.Option{
				{ID: "user-facing", Label: "User-facing app with great UX", Icon: "Smartphone",
					Scores: map[domain.Category]int{domain.CategoryUIUX: 4, domain.CategoryCodeWizard: 2}},
				{ID: "data-pipeline", Label: "Data pipeline and analytics platform", Icon: "BarChart",
					Scores: map[domain.Category]int{domain.CategoryDataScientist: 5, domain.CategoryArchitect: 2}},
				{ID: "security-system", Label: "Security and authentication system", Icon: "Lock",
					Scores: map[domain.Category]int{domain.CategorySecurityGuardian: 5, domain.CategoryArchitect: 2}},
				{ID: "ci-cd", Label: "CI/CD and deployment automation", Icon: "GitBranch",
					Scores: map[domain.Category]int{domain.CategoryDevOps: 5, domain.CategoryCloudNavigator: 3}},
				{ID: "innovative-poc", Label: "Proof-of-concept with new tech", Icon: "Lightbulb",
					Scores: map[domain.Category]int{domain.CategoryInnovationPioneer: 5, domain.CategoryDataScientist: 2}},
			},
		},
		{
			ID:          10,
			Type:        domain.QuestionRating,
			Prompt:      "How detail-oriented are you?",
			Description: "Rate from 1 (big picture) to 5 (every detail matters)",
			Options: []domain.Option{
				{ID: "1", Label: "1", Scores: map[domain.Category]int{domain.CategoryInnovationPioneer: 2, domain.CategoryTechSupport: 1}},
				{ID: "2", Label: "2", Scores: map[domain.Category]int{domain.CategoryCloudNavigator: 1, domain.CategoryUIUX: 1}},
				{ID: "3", Label: "3", Scores: map[domain.Category]int{domain.CategoryCodeWizard: 1, domain.CategoryDevOps: 1}},
				{ID: "4", Label: "4", Scores: map[domain.Category]int{domain.CategoryArchitect: 3, domain.CategoryDataScientist: 2}},
				{ID: "5", Label: "5", Scores: map[domain.Category]int{domain.CategoryQADetective: 4, domain.CategorySecurityGuardian: 4}},
			},
		},
		{
			ID:     11,
			Type:   domain.QuestionBinary,
			Prompt: "When deadlines are tight, do you...",
			Options: []domain.Option{
				{ID: "ship-fast", Label: "Ship quickly, iterate later", Icon: "Zap",
					Scores: map[domain.Category]int{domain.CategoryInnovationPioneer: 3, domain.CategoryCodeWizard: 2, domain.CategoryTechSupport: 2}},
				{ID: "quality-first", Label: "Ensure quality, even if delayed", Icon: "CheckCircle",
					Scores: map[domain.Category]int{domain.CategoryQADetective: 4, domain.CategorySecurityGuardian: 3, domain.CategoryArchitect: 3}},
			},
		},
		{
			ID:     12,
			Type:   domain.QuestionMultipleChoice,
			Prompt: "What energizes you most at work?",
			Options: []domain.Option{
				{ID: "solving-puzzles", Label: "Solving complex technical puzzles", Icon: "Puzzle",
					Scores: map[domain.Category]int{domain.CategoryArchitect: 3, domain.CategoryDataScientist: 3, domain.CategorySecurityGuardian: 2}},
				{ID: "helping-users", Label: "Helping users and solving their problems", Icon: "Heart",
					Scores: map[domain.Category]int{domain.CategoryTechSupport: 5, domain.CategoryUIUX: 3}},
				{ID: "building-systems", Label: "Building scalable systems", Icon: "Server",
					Scores: map[domain.Category]int{domain.CategoryCloudNavigator: 4, domain.CategoryDevOps: 4, domain.CategoryArchitect: 3}},
				{ID: "creating-beautiful", Label: "Creating beautiful, intuitive interfaces", Icon: "Paintbrush",
					Scores: map[domain.Category]int{domain.CategoryUIUX: 5, domain.CategoryCodeWizard: 1}},
				{ID: "exploring-new", Label: "Exploring cutting-edge technologies", Icon: "Compass",
					Scores: map[domain.Category]int{domain.CategoryInnovationPioneer: 5, domain.CategoryDataScientist: 2}},
			},
		},
	}
}
