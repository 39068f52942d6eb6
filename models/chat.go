package models

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry of the chat log. Content may carry light markup
// (**bold**, bullets). IDs sort by creation time.
type ChatMessage struct {
	ID        string
	Sender    Sender
	Content   string
	Timestamp time.Time
	FollowUps []string
}

// KeywordCategory maps trigger keywords to a canned response.
type KeywordCategory struct {
	ID        string   `yaml:"id"`
	Keywords  []string `yaml:"keywords"`
	Response  string   `yaml:"response"`
	FollowUps []string `yaml:"followUps"`
}

// RouteResult is the router's answer to one user message. CategoryID is
// empty when the fallback answered.
type RouteResult struct {
	CategoryID string
	Response   string
	FollowUps  []string
}

// QuickAction is a preset prompt offered before the first exchange.
type QuickAction struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Prompt string `yaml:"prompt"`
}
