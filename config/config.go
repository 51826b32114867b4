package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	OpenAI   OpenAI
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// OpenAI holds settings for the chat-completion upstream. BaseURL may point at
// any OpenAI-compatible endpoint.
type OpenAI struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
	MaxRetries     int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 60)
	viper.SetDefault("OPENAI_MAX_RETRIES", 2)

	var config Config

	config.Server.Port = viper.GetString("PORT")
	config.Database.Host = viper.GetString("DB_HOST")
	config.Database.Port = viper.GetString("DB_PORT")
	config.Database.User = viper.GetString("DB_USER")
	config.Database.Password = viper.GetString("DB_PASSWORD")
	config.Database.Name = viper.GetString("DB_NAME")

	config.OpenAI.APIKey = viper.GetString("OPENAI_API_KEY")
	config.OpenAI.BaseURL = viper.GetString("OPENAI_BASE_URL")
	config.OpenAI.Model = viper.GetString("OPENAI_MODEL")
	config.OpenAI.TimeoutSeconds = viper.GetInt("OPENAI_TIMEOUT_SECONDS")
	config.OpenAI.MaxRetries = viper.GetInt("OPENAI_MAX_RETRIES")

	log.Info().Str("server_port", config.Server.Port).Str("db_host", config.Database.Host).Str("openai_model", config.OpenAI.Model).Msg("Config loaded")
	return &config, nil
}
