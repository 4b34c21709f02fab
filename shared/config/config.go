package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const epochLayout = time.RFC3339

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HotEpoch           string        `yaml:"hot_epoch" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	FeedCandidateLimit int           `yaml:"feed_candidate_limit" validate:"required,min=1"` // feed ranks only the N most recent matching posts
	MaxBodyBytes       int64         `yaml:"max_body_bytes" validate:"required,min=1"`
	AllowedOrigins     []string      `yaml:"allowed_origins" validate:"dive,url"`
	SecureHeaders      bool          `yaml:"secure_headers"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	RenderCacheTTL     time.Duration `yaml:"render_cache_ttl"`
	AdminTokenTTL      time.Duration `yaml:"admin_token_ttl" validate:"required"`
	HttpPort           int           `yaml:"http_port" validate:"required"`
	VoteRPS            float64       `yaml:"vote_rps" validate:"required"`
	PostRPM            float64       `yaml:"post_rpm" validate:"required"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg       Pg     `yaml:"pg" validate:"required"`
	RedisURL string `yaml:"redis_url"` // empty disables the render cache
	JwtKey   string `yaml:"jwt_key" validate:"required"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) AdminTokenTTL() time.Duration {
	return s.Public.AdminTokenTTL
}

// Epoch is the fixed reference instant for hot score age.
func (p *Public) Epoch() time.Time {
	t, err := time.Parse(epochLayout, p.HotEpoch)
	if err != nil {
		// MustLoad validated the layout already
		panic("invalid hot_epoch: " + p.HotEpoch)
	}
	return t.UTC()
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if err := Validate(cfg); err != nil {
		panic(err.Error())
	}
	return cfg
}
