package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

var _ repository.BotConfigRepository = (*BotConfigRepo)(nil)

// BotConfigRepo implementación del puerto BotConfigRepository sobre PostgreSQL.
type BotConfigRepo struct {
	pool *pgxpool.Pool
}

// NewBotConfigRepository construye el adaptador de persistencia para la
// configuración del bot.
func NewBotConfigRepository(pool *pgxpool.Pool) *BotConfigRepo {
	return &BotConfigRepo{pool: pool}
}

// GetByCompany obtiene la configuración del bot de una empresa.
// (nil, nil) si la empresa nunca guardó una.
func (r *BotConfigRepo) GetByCompany(companyID string) (*entity.BotConfig, error) {
	query := `
		SELECT company_id, bot_name, personality, welcome_message,
		       whatsapp_active, instagram_active, auto_respond, responses, updated_at
		FROM bot_configs WHERE company_id = $1`
	var cfg entity.BotConfig
	err := r.pool.QueryRow(context.Background(), query, companyID).Scan(
		&cfg.CompanyID, &cfg.BotName, &cfg.Personality, &cfg.WelcomeMessage,
		&cfg.WhatsAppActive, &cfg.InstagramActive, &cfg.AutoRespond,
		&cfg.Responses, &cfg.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bot config: %w", err)
	}
	return &cfg, nil
}

// Upsert crea o reemplaza la configuración del bot de una empresa.
func (r *BotConfigRepo) Upsert(cfg *entity.BotConfig) error {
	query := `
		INSERT INTO bot_configs (company_id, bot_name, personality, welcome_message,
		                         whatsapp_active, instagram_active, auto_respond, responses, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id) DO UPDATE SET
			bot_name = EXCLUDED.bot_name,
			personality = EXCLUDED.personality,
			welcome_message = EXCLUDED.welcome_message,
			whatsapp_active = EXCLUDED.whatsapp_active,
			instagram_active = EXCLUDED.instagram_active,
			auto_respond = EXCLUDED.auto_respond,
			responses = EXCLUDED.responses,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		cfg.CompanyID, cfg.BotName, cfg.Personality, cfg.WelcomeMessage,
		cfg.WhatsAppActive, cfg.InstagramActive, cfg.AutoRespond,
		cfg.Responses, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert bot config: %w", err)
	}
	return nil
}
