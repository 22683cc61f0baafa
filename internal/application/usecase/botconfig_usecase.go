package usecase

import (
	"encoding/json"
	"time"

	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/catalog"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

// Defaults del bot para empresas que aún no guardaron configuración.
const (
	defaultBotName        = "AsistenteBot"
	defaultPersonality    = "Amigable y profesional"
	defaultWelcomeMessage = "¡Hola! Soy tu asistente virtual. ¿En qué puedo ayudarte hoy?"
)

// BotConfigUseCase configuración del asistente virtual por empresa.
type BotConfigUseCase struct {
	repo repository.BotConfigRepository
}

// NewBotConfigUseCase construye el caso de uso.
func NewBotConfigUseCase(repo repository.BotConfigRepository) *BotConfigUseCase {
	return &BotConfigUseCase{repo: repo}
}

// resolveCompany: cliente usa su empresa; admin debe indicarla.
func (uc *BotConfigUseCase) resolveCompany(scope catalog.Scope, requested string) (string, error) {
	return scope.ResolveCompany(requested)
}

// Get devuelve la configuración vigente o los defaults si la empresa todavía
// no guardó ninguna (nunca 404: el dashboard siempre muestra algo editable).
func (uc *BotConfigUseCase) Get(scope catalog.Scope, companyID string) (*dto.BotConfigResponse, error) {
	target, err := uc.resolveCompany(scope, companyID)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.repo.GetByCompany(target)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = defaultBotConfig(target)
	}
	return toBotConfigResponse(cfg), nil
}

// Update hace upsert con merge parcial sobre la configuración existente (o
// los defaults si no hay ninguna).
func (uc *BotConfigUseCase) Update(scope catalog.Scope, companyID string, in dto.UpdateBotConfigRequest) (*dto.BotConfigResponse, error) {
	target, err := uc.resolveCompany(scope, companyID)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.repo.GetByCompany(target)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = defaultBotConfig(target)
	}
	if in.BotName != nil {
		if *in.BotName == "" {
			return nil, domain.ErrInvalidInput
		}
		cfg.BotName = *in.BotName
	}
	if in.Personality != nil {
		cfg.Personality = *in.Personality
	}
	if in.WelcomeMessage != nil {
		cfg.WelcomeMessage = *in.WelcomeMessage
	}
	if in.WhatsAppActive != nil {
		cfg.WhatsAppActive = *in.WhatsAppActive
	}
	if in.InstagramActive != nil {
		cfg.InstagramActive = *in.InstagramActive
	}
	if in.AutoRespond != nil {
		cfg.AutoRespond = *in.AutoRespond
	}
	if in.Responses != nil {
		raw, err := json.Marshal(in.Responses)
		if err != nil {
			return nil, err
		}
		cfg.Responses = raw
	}
	cfg.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(cfg); err != nil {
		return nil, err
	}
	return toBotConfigResponse(cfg), nil
}

func defaultBotConfig(companyID string) *entity.BotConfig {
	return &entity.BotConfig{
		CompanyID:       companyID,
		BotName:         defaultBotName,
		Personality:     defaultPersonality,
		WelcomeMessage:  defaultWelcomeMessage,
		WhatsAppActive:  true,
		InstagramActive: true,
		AutoRespond:     true,
		Responses:       json.RawMessage("[]"),
	}
}

func toBotConfigResponse(c *entity.BotConfig) *dto.BotConfigResponse {
	responses := c.Responses
	if len(responses) == 0 {
		responses = json.RawMessage("[]")
	}
	return &dto.BotConfigResponse{
		CompanyID:       c.CompanyID,
		BotName:         c.BotName,
		Personality:     c.Personality,
		WelcomeMessage:  c.WelcomeMessage,
		WhatsAppActive:  c.WhatsAppActive,
		InstagramActive: c.InstagramActive,
		AutoRespond:     c.AutoRespond,
		Responses:       responses,
		UpdatedAt:       c.UpdatedAt,
	}
}
