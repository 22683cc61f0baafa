package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/application/usecase"
)

func TestCompanyCreate_AsignaID(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())

	out, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", Country: "Colombia"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el id lo asigna el sistema")
	assert.Equal(t, "Acme", out.Name)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

// Update aplica merge parcial: solo los campos presentes sobrescriben.
func TestCompanyUpdate_MergeParcial(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())
	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", Country: "Colombia", Phone: "300123"})
	require.NoError(t, err)

	telefono := "311999"
	out, err := uc.Update(created.ID, dto.UpdateCompanyRequest{Phone: &telefono})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "311999", out.Phone)
	assert.Equal(t, "Acme", out.Name, "el nombre no se toca")
	assert.Equal(t, "Colombia", out.Country)
}

func TestCompanyUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())

	out, err := uc.Update("99999999-9999-9999-9999-999999999999", dto.UpdateCompanyRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCompanyDelete_Idempotente(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())
	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	require.NoError(t, uc.Delete(created.ID), "borrar un id inexistente no es error")

	list, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}
