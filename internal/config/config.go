package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerPort int
	ServerHost string

	// Agent configuration
	AgentName         string
	AgentVersion      string
	AgentURL          string
	AgentOrganization string

	// Jira configuration
	JiraBaseURL  string
	JiraEmail    string
	JiraAPIToken string

	// Generation output
	OutputDirectory string

	// Authentication
	AuthType  string // "jwt" or "apikey"
	JWTSecret string
	APIKey    string
}

// ConfigurationError reports required settings that were not provided.
// It is fatal at startup; per-call paths never produce it.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// init loads environment variables from .env file
func init() {
	// Try to load from project root first
	err := godotenv.Load()
	if err != nil {
		// Try loading from parent directory (assuming we're in a subdirectory)
		err = godotenv.Load("../.env")
		if err != nil {
			// Try one more level up
			err = godotenv.Load("../../.env")
			if err != nil {
				log.Println("No .env file found or error loading it. Using environment variables or defaults.")
			} else {
				log.Println("Loaded configuration from ../../.env file")
			}
		} else {
			log.Println("Loaded configuration from ../.env file")
		}
	} else {
		log.Println("Loaded configuration from .env file")
	}
}

// NewConfig creates a new configuration with values from environment variables
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	// Server configuration
	v.SetDefault("server_port", 8080)
	v.SetDefault("server_host", "localhost")

	// Agent configuration
	v.SetDefault("agent_name", "TestGenerationAgent")
	v.SetDefault("agent_version", "1.0.0")
	v.SetDefault("agent_url", "http://localhost:8080")
	v.SetDefault("agent_organization", "jira-testgen-a2a")

	// Generation output
	v.SetDefault("output_directory", "./generated-tests")

	return &Config{
		ServerPort: v.GetInt("server_port"),
		ServerHost: v.GetString("server_host"),

		AgentName:         v.GetString("agent_name"),
		AgentVersion:      v.GetString("agent_version"),
		AgentURL:          v.GetString("agent_url"),
		AgentOrganization: v.GetString("agent_organization"),

		JiraBaseURL:  v.GetString("jira_base_url"),
		JiraEmail:    v.GetString("jira_email"),
		JiraAPIToken: v.GetString("jira_api_token"),

		OutputDirectory: v.GetString("output_directory"),

		AuthType:  v.GetString("auth_type"), // "jwt" or "apikey", empty disables auth
		JWTSecret: v.GetString("jwt_secret"),
		APIKey:    v.GetString("api_key"),
	}
}

// Validate checks that every setting the Jira client cannot run without is
// present. The caller should treat a returned error as fatal.
func (c *Config) Validate() error {
	var missing []string
	if c.JiraBaseURL == "" {
		missing = append(missing, "JIRA_BASE_URL")
	}
	if c.JiraEmail == "" {
		missing = append(missing, "JIRA_EMAIL")
	}
	if c.JiraAPIToken == "" {
		missing = append(missing, "JIRA_API_TOKEN")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}
