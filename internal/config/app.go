package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name              string
	Env               string
	Port              string
	BaseURL           string
	LLMProvider       string
	WorkerConcurrency int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		provider := os.Getenv("LLM_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		concurrency, err := strconv.Atoi(os.Getenv("WORKER_CONCURRENCY"))
		if err != nil || concurrency <= 0 {
			concurrency = 4
		}
		appConfig = &AppConfig{
			Name:              os.Getenv("APP_NAME"),
			Env:               env,
			Port:              os.Getenv("APP_PORT"),
			BaseURL:           os.Getenv("APP_URL"),
			LLMProvider:       provider,
			WorkerConcurrency: concurrency,
		}
	})
	return appConfig
}
