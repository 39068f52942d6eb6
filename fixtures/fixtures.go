// Package fixtures holds the static catalog data bundled into the binary:
// housing listings, the professor directory and the chatbot keyword table.
package fixtures

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"educonnect/models"
)

//go:embed data/*.yaml
var files embed.FS

// ChatProfile configures one chat surface (floating widget or inline
// assistant page).
type ChatProfile struct {
	Greeting     string               `yaml:"greeting"`
	QuickActions []models.QuickAction `yaml:"quickActions"`
}

// Chatbot is the parsed keyword table plus the per-surface profiles.
type Chatbot struct {
	Categories []models.KeywordCategory `yaml:"categories"`
	Fallback   string                   `yaml:"fallback"`
	Widget     ChatProfile              `yaml:"widget"`
	Assistant  ChatProfile              `yaml:"assistant"`
}

// Housing returns the raw housing rows in catalog order.
func Housing() ([]*models.RawListing, error) {
	var rows []*models.RawListing
	if err := decode("data/housing.yaml", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Professors returns the professor directory in catalog order.
func Professors() ([]*models.Professor, error) {
	var profs []*models.Professor
	if err := decode("data/professors.yaml", &profs); err != nil {
		return nil, err
	}
	return profs, nil
}

// LoadChatbot returns the keyword table in priority order.
func LoadChatbot() (*Chatbot, error) {
	var cb Chatbot
	if err := decode("data/chatbot.yaml", &cb); err != nil {
		return nil, err
	}
	if len(cb.Categories) == 0 {
		return nil, fmt.Errorf("fixtures: chatbot.yaml: no keyword categories")
	}
	return &cb, nil
}

func decode(name string, out any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("fixtures: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("fixtures: parse %s: %w", name, err)
	}
	return nil
}
