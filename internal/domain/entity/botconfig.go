package entity

import (
	"encoding/json"
	"time"
)

// BotConfig configuración del asistente virtual de una empresa (una por empresa).
// Responses guarda los pares trigger→respuesta como JSON.
type BotConfig struct {
	CompanyID       string
	BotName         string
	Personality     string
	WelcomeMessage  string
	WhatsAppActive  bool
	InstagramActive bool
	AutoRespond     bool
	Responses       json.RawMessage
	UpdatedAt       time.Time
}
