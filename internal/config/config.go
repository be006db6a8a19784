package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config maps the entire application configuration. Keys come from the
// YAML file under ./configs, with environment-variable overrides
// (server.port -> SERVER_PORT) and defaults for every key.
type Config struct {
	Server struct {
		Port    int    `mapstructure:"port"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"server"`

	Database struct {
		Name string `mapstructure:"name"` // SQLite database file name
	} `mapstructure:"database"`

	Uploads struct {
		Folder     string `mapstructure:"folder"`      // on-disk folder for stored photos
		PublicPath string `mapstructure:"public_path"` // URL prefix the folder is served under
		MaxSizeMB  int    `mapstructure:"max_size_mb"` // multipart form size limit
	} `mapstructure:"uploads"`
}

// LoadConfig loads the application configuration using Viper. A missing
// config file is not fatal; defaults are used instead.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("database.name", "adopciones.db")
	viper.SetDefault("uploads.folder", "static/uploads")
	viper.SetDefault("uploads.public_path", "/static/uploads")
	viper.SetDefault("uploads.max_size_mb", 10)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using default values")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	log.Printf("Configuration loaded: Server Port=%d, DB Name=%s, Uploads Folder=%s",
		cfg.Server.Port, cfg.Database.Name, cfg.Uploads.Folder)

	return &cfg, nil
}
