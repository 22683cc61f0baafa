package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/application/usecase"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
)

func newOrderUC() (*usecase.OrderUseCase, *fakeOrderRepo) {
	products := newFakeProductRepo(
		productoDe(empresaAcme, "p1", "Widget", 10, 5, entity.StatusActive),
		productoDe(empresaBeta, "p3", "Gizmo", 7, 3, entity.StatusActive),
	)
	orders := &fakeOrderRepo{}
	return usecase.NewOrderUseCase(orders, products), orders
}

// El monto se deriva de precio × cantidad y el pedido nace Pendiente con
// número asignado por el sistema.
func TestOrderCreate_DerivaMontoYNumero(t *testing.T) {
	uc, _ := newOrderUC()

	out, err := uc.Create(clienteScope(empresaAcme), dto.CreateOrderRequest{
		Customer:  "María López",
		ProductID: "p1",
		Quantity:  3,
		Channel:   entity.ChannelWhatsApp,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(out.Amount), "10 × 3 = 30, fue %s", out.Amount)
	assert.Equal(t, entity.OrderPending, out.Status)
	assert.Equal(t, "Widget", out.ProductName, "nombre denormalizado del producto")
	assert.NotEmpty(t, out.Number)
}

func TestOrderCreate_ProductoInexistente(t *testing.T) {
	uc, _ := newOrderUC()

	_, err := uc.Create(clienteScope(empresaAcme), dto.CreateOrderRequest{
		Customer:  "María López",
		ProductID: "p3", // vive bajo Beta, no bajo Acme
		Quantity:  1,
		Channel:   entity.ChannelInstagram,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderCreate_CanalInvalido(t *testing.T) {
	uc, _ := newOrderUC()

	_, err := uc.Create(clienteScope(empresaAcme), dto.CreateOrderRequest{
		Customer:  "María López",
		ProductID: "p1",
		Quantity:  1,
		Channel:   "Telegram",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func crearPedido(t *testing.T, uc *usecase.OrderUseCase, companyID, productID, customer string, qty int) dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(adminScope(), dto.CreateOrderRequest{
		CompanyID: companyID,
		Customer:  customer,
		ProductID: productID,
		Quantity:  qty,
		Channel:   entity.ChannelWhatsApp,
	})
	require.NoError(t, err)
	return *out
}

// El admin ve pedidos de todas las empresas; el cliente solo los suyos.
func TestOrderList_AlcancePorRol(t *testing.T) {
	uc, _ := newOrderUC()
	crearPedido(t, uc, empresaAcme, "p1", "María", 1)
	crearPedido(t, uc, empresaBeta, "p3", "Pedro", 2)

	all, err := uc.List(adminScope(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	own, err := uc.List(clienteScope(empresaAcme), "", "", "")
	require.NoError(t, err)
	require.Equal(t, 1, own.Total)
	assert.Equal(t, "María", own.Items[0].Customer)
}

// Filtros de texto y estado en AND; "Todos" no filtra por estado.
func TestOrderList_Filtros(t *testing.T) {
	uc, _ := newOrderUC()
	crearPedido(t, uc, empresaAcme, "p1", "María López", 1)
	crearPedido(t, uc, empresaAcme, "p1", "Pedro Gómez", 2)

	out, err := uc.List(adminScope(), "", "maría", "")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total, "texto case-insensitive sobre cliente")

	out, err = uc.List(adminScope(), "", "widget", "Todos")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total, "texto matchea también el nombre de producto")

	out, err = uc.List(adminScope(), "", "", entity.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)

	_, err = uc.List(adminScope(), "", "", "NoEsUnEstado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateStatus_Transicion(t *testing.T) {
	uc, _ := newOrderUC()
	created := crearPedido(t, uc, empresaAcme, "p1", "María", 1)

	out, err := uc.UpdateStatus(clienteScope(empresaAcme), "", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderShipped})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.OrderShipped, out.Status)

	// pedido ajeno fuera del alcance del cliente: no existe para él
	ajeno := crearPedido(t, uc, empresaBeta, "p3", "Pedro", 1)
	out, err = uc.UpdateStatus(clienteScope(empresaAcme), "", ajeno.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderShipped})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// El resumen cubre los cinco estados con ceros para los vacíos.
func TestOrderSummary_EstadosCompletos(t *testing.T) {
	uc, _ := newOrderUC()
	crearPedido(t, uc, empresaAcme, "p1", "María", 1)
	crearPedido(t, uc, empresaAcme, "p1", "Pedro", 2)

	out, err := uc.Summary(clienteScope(empresaAcme), "")
	require.NoError(t, err)
	require.Len(t, out.ByStatus, len(entity.OrderStatuses))

	byStatus := map[string]dto.OrderStatusSummary{}
	for _, row := range out.ByStatus {
		byStatus[row.Status] = row
	}
	pendientes := byStatus[entity.OrderPending]
	assert.Equal(t, 2, pendientes.Count)
	assert.True(t, decimal.NewFromInt(30).Equal(pendientes.Total), "10×1 + 10×2 = 30")
	assert.Equal(t, 0, byStatus[entity.OrderCancelled].Count)
}
