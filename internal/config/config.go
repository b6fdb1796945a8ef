package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	// APIToken is the single static bearer token protecting the API.
	APIToken string
	// App state handed to clients at launch; the service only echoes it.
	App struct {
		State      string
		SupportURL string
	}
}

// Load reads config from environment (BEAUTY_ prefix) and optional
// beautycase.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BEAUTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("beautycase")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "beautycase.db")
	v.SetDefault("app.state", "active")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.APIToken = v.GetString("api_token")
	cfg.App.State = v.GetString("app.state")
	cfg.App.SupportURL = v.GetString("app.support_url")

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("BEAUTY_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("BEAUTY_DB_DSN is required")
	}
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("BEAUTY_API_TOKEN is required")
	}

	return cfg, nil
}
