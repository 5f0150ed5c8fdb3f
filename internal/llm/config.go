// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between model tiers and future multi-provider support.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: activity classification, extraction
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: mission generation, structured output
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider     Provider
	Models       map[ModelTier]string
	Temperatures map[ModelTier]float32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration.
// Lite runs cool for deterministic activity parsing; standard runs warmer
// so generated mission sets vary between runs.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.0-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperatures: map[ModelTier]float32{
			TierLite:     0.3,
			TierStandard: 0.7,
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// GetTemperature returns the sampling temperature for a tier.
func (c *Config) GetTemperature(tier ModelTier) float32 {
	if temp, ok := c.Temperatures[tier]; ok {
		return temp
	}
	return 0.3
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:     c.Provider,
		Models:       make(map[ModelTier]string),
		Temperatures: make(map[ModelTier]float32),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	for k, v := range c.Temperatures {
		newConfig.Temperatures[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
