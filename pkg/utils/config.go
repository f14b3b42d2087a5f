package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Poster   PosterConfig
	AMQP     AMQPConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

// PosterConfig tells where poster files live on disk and under which URL they are served.
type PosterConfig struct {
	Dir     string
	BaseURL string
}

// AMQPConfig is optional. An empty URL disables ticket events.
type AMQPConfig struct {
	URL   string
	Queue string
}

// ConnString builds the pgx connection string
func (c DatabaseConfig) ConnString() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s sslmode=%s host=%s port=%s",
		c.User, c.Password, c.Name, c.SSLMode, c.Host, c.Port)
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads an env-style file (optional) and lets environment variables override it.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "cinemania")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("POSTER_DIR", "Posters/")
	v.SetDefault("POSTER_BASE_URL", "/posters/")
	v.SetDefault("AMQP_QUEUE", "cinemania.tickets")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		// no .env file, environment only
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Poster: PosterConfig{
			Dir:     v.GetString("POSTER_DIR"),
			BaseURL: v.GetString("POSTER_BASE_URL"),
		},
		AMQP: AMQPConfig{
			URL:   v.GetString("AMQP_URL"),
			Queue: v.GetString("AMQP_QUEUE"),
		},
	}

	return config, nil
}
