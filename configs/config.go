package configs

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STOREFRONT_"

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	// Backend is the INMEDT REST API the storefront talks to.
	Backend struct {
		BaseURL        string        `koanf:"base_url"`
		Timeout        time.Duration `koanf:"timeout"`
		GoogleClientID string        `koanf:"google_client_id"`
	} `koanf:"backend"`

	Session struct {
		MaxSessions   int           `koanf:"max_sessions"`
		CookieMaxAge  time.Duration `koanf:"cookie_max_age"`
		SecureCookie  bool          `koanf:"secure_cookie"`
		TokenTTL      time.Duration `koanf:"token_ttl"`
		SubmitTimeout time.Duration `koanf:"submit_timeout"`
		SubmitLockTTL time.Duration `koanf:"submit_lock_ttl"`
	} `koanf:"session"`

	// Redis is optional; tokens stay in memory when Addr is empty.
	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
		DB       int    `koanf:"db"`
	} `koanf:"redis"`

	// Rabbit is optional; events are only logged when URL is empty.
	Rabbit struct {
		URL         string `koanf:"url"`
		ConsumeFeed bool   `koanf:"consume_feed"`
		FeedSize    int    `koanf:"feed_size"`
		Prefetch    int    `koanf:"prefetch"`
	} `koanf:"rabbitmq"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix STOREFRONT_, nested with __)
	// e.g. STOREFRONT_BACKEND__BASE_URL, STOREFRONT_REDIS__PASSWORD
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.defaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) defaults() {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8085/api"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 10 * time.Second
	}
	if c.Session.MaxSessions == 0 {
		c.Session.MaxSessions = 10000
	}
	if c.Session.CookieMaxAge == 0 {
		c.Session.CookieMaxAge = 7 * 24 * time.Hour
	}
	if c.Session.TokenTTL == 0 {
		c.Session.TokenTTL = 24 * time.Hour
	}
	if c.Session.SubmitLockTTL == 0 {
		c.Session.SubmitLockTTL = 30 * time.Second
	}
	if c.Rabbit.FeedSize == 0 {
		c.Rabbit.FeedSize = 50
	}
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url must be an absolute URL, got %q", c.Backend.BaseURL)
	}
	if c.Session.MaxSessions < 1 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	return nil
}
