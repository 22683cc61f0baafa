package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/application/usecase"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
)

// Una empresa sin configuración guardada recibe los defaults, nunca 404.
func TestBotConfigGet_DefaultsSinConfiguracion(t *testing.T) {
	uc := usecase.NewBotConfigUseCase(newFakeBotConfigRepo())

	out, err := uc.Get(clienteScope(empresaAcme), "")
	require.NoError(t, err)
	assert.Equal(t, empresaAcme, out.CompanyID)
	assert.Equal(t, "AsistenteBot", out.BotName)
	assert.True(t, out.WhatsAppActive)
	assert.True(t, out.InstagramActive)
	assert.JSONEq(t, "[]", string(out.Responses))
}

// El admin debe indicar la empresa; el cliente usa siempre la suya.
func TestBotConfigGet_ResolucionDeEmpresa(t *testing.T) {
	uc := usecase.NewBotConfigUseCase(newFakeBotConfigRepo())

	_, err := uc.Get(adminScope(), "")
	assert.ErrorIs(t, err, domain.ErrCompanyRequired)

	out, err := uc.Get(adminScope(), empresaBeta)
	require.NoError(t, err)
	assert.Equal(t, empresaBeta, out.CompanyID)

	_, err = uc.Get(clienteScope(empresaAcme), empresaBeta)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Update mergea sobre defaults en el primer guardado y sobre lo persistido después.
func TestBotConfigUpdate_MergeParcial(t *testing.T) {
	uc := usecase.NewBotConfigUseCase(newFakeBotConfigRepo())
	scope := clienteScope(empresaAcme)

	nombre := "VentasBot"
	out, err := uc.Update(scope, "", dto.UpdateBotConfigRequest{
		BotName: &nombre,
		Responses: []dto.BotResponsePair{
			{Trigger: "precio", Response: "Consultá el catálogo"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "VentasBot", out.BotName)
	assert.Equal(t, "Amigable y profesional", out.Personality, "campo ausente conserva el default")

	var pairs []dto.BotResponsePair
	require.NoError(t, json.Unmarshal(out.Responses, &pairs))
	require.Len(t, pairs, 1)
	assert.Equal(t, "precio", pairs[0].Trigger)

	// segundo update: solo personality, el nombre guardado se conserva
	personalidad := "Formal"
	out, err = uc.Update(scope, "", dto.UpdateBotConfigRequest{Personality: &personalidad})
	require.NoError(t, err)
	assert.Equal(t, "VentasBot", out.BotName)
	assert.Equal(t, "Formal", out.Personality)
}

func TestBotConfigUpdate_NombreVacioInvalido(t *testing.T) {
	uc := usecase.NewBotConfigUseCase(newFakeBotConfigRepo())

	vacio := ""
	_, err := uc.Update(clienteScope(empresaAcme), "", dto.UpdateBotConfigRequest{BotName: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
