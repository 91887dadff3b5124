package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string

	// APIBaseURL is where the ledger console finds the API server.
	APIBaseURL string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the environment wins either way
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		APIBaseURL:       "http://localhost:9446",
	}

	overrides := []struct {
		name string
		dest *string
	}{
		{"POSTGRES_ADDRESS", &env.PostgresAddress},
		{"POSTGRES_PORT", &env.PostgresPort},
		{"POSTGRES_DB", &env.PostgresDB},
		{"POSTGRES_USERNAME", &env.PostgresUsername},
		{"POSTGRES_PASSWORD", &env.PostgresPassword},
		{"HTTP_PORT", &env.HTTPPort},
		{"BANKBUDDY_API_URL", &env.APIBaseURL},
	}

	for _, o := range overrides {
		if value := os.Getenv(o.name); len(value) != 0 {
			*o.dest = value
		}
	}

	return &env, nil
}
