// Package config provides the persisted application settings: LLM provider
// credentials and model choice, OCR language, and UI preferences. Settings
// live in a YAML file under the user's home directory and are written
// atomically.
package config

import (
	"fmt"

	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/llm/openai"
)

// Config is the full settings document.
type Config struct {
	LLM LLMConfig `yaml:"llm"`
	OCR OCRConfig `yaml:"ocr"`
	UI  UIConfig  `yaml:"ui"`
}

// LLMConfig configures the AI tools.
type LLMConfig struct {
	// APIKey authenticates against the provider. Empty falls back to the
	// OPENROUTER_API_KEY environment variable at provider construction.
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	// MaxTokens caps response length for the AI tools.
	MaxTokens int `yaml:"max_tokens"`
}

// OCRConfig configures text extraction.
type OCRConfig struct {
	// Language is the tesseract language code.
	Language string `yaml:"language"`
}

// UIConfig configures the dashboard.
type UIConfig struct {
	// Theme selects the color palette: "dark" or "light".
	Theme string `yaml:"theme"`
}

// Default returns the settings a fresh install starts with.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL:   openai.DefaultBaseURL,
			Model:     openai.DefaultModel,
			MaxTokens: assistant.DefaultTokens,
		},
		OCR: OCRConfig{Language: "eng"},
		UI:  UIConfig{Theme: "dark"},
	}
}

// Validate checks the settings for values that cannot work.
func (c *Config) Validate() error {
	if c.LLM.MaxTokens < assistant.MinTokens || c.LLM.MaxTokens > assistant.MaxTokens {
		return &ConfigurationError{
			Field: "llm.max_tokens",
			Err:   fmt.Errorf("must be between %d and %d", assistant.MinTokens, assistant.MaxTokens),
		}
	}
	if c.LLM.Model == "" {
		return &ConfigurationError{Field: "llm.model", Err: fmt.Errorf("must not be empty")}
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return &ConfigurationError{Field: "ui.theme", Err: fmt.Errorf("must be dark or light")}
	}
	return nil
}

// ConfigurationError reports an unusable setting.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
