package repository

import "github.com/tu-usuario/ecommercebot-api/internal/domain/entity"

// BotConfigRepository define el puerto de persistencia para BotConfig.
// Hay a lo sumo una configuración por empresa; Upsert crea o reemplaza.
type BotConfigRepository interface {
	GetByCompany(companyID string) (*entity.BotConfig, error)
	Upsert(cfg *entity.BotConfig) error
}
