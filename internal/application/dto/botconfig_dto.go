package dto

import (
	"encoding/json"
	"time"
)

// BotResponsePair respuesta predefinida del bot: trigger → respuesta.
type BotResponsePair struct {
	Trigger  string `json:"trigger"`
	Response string `json:"response"`
}

// UpdateBotConfigRequest upsert con merge parcial de la configuración del bot.
type UpdateBotConfigRequest struct {
	BotName         *string           `json:"bot_name"`
	Personality     *string           `json:"personality"`
	WelcomeMessage  *string           `json:"welcome_message"`
	WhatsAppActive  *bool             `json:"whatsapp_active"`
	InstagramActive *bool             `json:"instagram_active"`
	AutoRespond     *bool             `json:"auto_respond"`
	Responses       []BotResponsePair `json:"responses"`
}

// BotConfigResponse configuración vigente del bot de la empresa.
type BotConfigResponse struct {
	CompanyID       string          `json:"company_id"`
	BotName         string          `json:"bot_name"`
	Personality     string          `json:"personality"`
	WelcomeMessage  string          `json:"welcome_message"`
	WhatsAppActive  bool            `json:"whatsapp_active"`
	InstagramActive bool            `json:"instagram_active"`
	AutoRespond     bool            `json:"auto_respond"`
	Responses       json.RawMessage `json:"responses"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
