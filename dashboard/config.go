package dashboard

import (
	"encoding/json"
	"os"
)

// Config is the single JSON config file for the dashboard server.
type Config struct {
	ServerAddr string     `json:"server_addr,omitempty"`
	LLM        *LLMConfig `json:"llm,omitempty"`
	// CompatDecoding keeps the historical ordered-replacement escape
	// decoding of model output instead of the single-pass decoder.
	CompatDecoding bool `json:"compat_decoding,omitempty"`
}

// LLMConfig selects and configures the model endpoint.
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// LoadConfig reads JSON config from disk.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
