package config

import (
	"StimulusAssistant/pkg/intent"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Env struct {
	AppName      string `validate:"required"`
	AppEnv       string `validate:"required,oneof=development staging production test"`
	Port         string `validate:"required,numeric"`
	Version      string `validate:"required"`
	StaticDir    string `validate:"required"`
	AllowOrigins string `validate:"required"`
	ReplyDelay   bool
	SiteBaseURL  string `validate:"required,url"`
	ContactEmail string `validate:"required,email"`
}

// LoadEnv reads the service settings from the environment, falling back
// to defaults for anything unset.
func LoadEnv(v *validator.Validate) (*Env, error) {
	replyDelay, err := strconv.ParseBool(getEnv("CHAT_REPLY_DELAY", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_REPLY_DELAY: %w", err)
	}

	env := &Env{
		AppName:      getEnv("APP_NAME", "Stimulus Assistant"),
		AppEnv:       getEnv("APP_ENV", EnvDevelopment),
		Port:         getEnv("APP_PORT", "3000"),
		Version:      getEnv("APP_VERSION", "phase-3-final-1.1.0"),
		StaticDir:    getEnv("STATIC_DIR", "./public"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		ReplyDelay:   replyDelay,
		SiteBaseURL:  getEnv("SITE_BASE_URL", intent.DefaultBaseURL),
		ContactEmail: getEnv("SITE_CONTACT_EMAIL", intent.DefaultEmail),
	}

	if err := v.Struct(env); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	return env, nil
}

func (e *Env) Links() intent.Links {
	return intent.NewLinks(e.SiteBaseURL, e.ContactEmail)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
