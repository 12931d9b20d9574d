package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// AppPrefix namespacia las claves de almacenamiento del quiz
	// ("<prefix>-quiz-progress", "<prefix>-quiz-answers").
	AppPrefix string `env:"APP_PREFIX" envDefault:"gdgenius"`

	LLMAPIKey  string `env:"LLM_API_KEY,required"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-5.1"`

	SessionSecret     string `env:"SESSION_SECRET,required"`
	SessionTTLDays    int    `env:"SESSION_TTL_DAYS" envDefault:"30"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Estado del quiz en Redis en lugar de Postgres. Requiere REDIS_ADDR.
	RedisState bool `env:"REDIS_STATE" envDefault:"false"`

	AnalysisRateWindowMinutes int `env:"ANALYSIS_RATE_WINDOW_MINUTES" envDefault:"1"`
	AnalysisRateMax           int `env:"ANALYSIS_RATE_MAX" envDefault:"3"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
