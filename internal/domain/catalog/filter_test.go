package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/ecommercebot-api/internal/domain/catalog"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
)

func producto(company, name, desc string, price int64, stock int, status string) *entity.Product {
	return &entity.Product{
		CompanyID:   company,
		Name:        name,
		Description: desc,
		Price:       decimal.NewFromInt(price),
		Stock:       stock,
		Status:      status,
	}
}

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func catalogoDemo() []*entity.Product {
	return []*entity.Product{
		producto("acme", "Zapatillas Nike Air Max", "Zapatillas deportivas cómodas y modernas", 120, 25, entity.StatusActive),
		producto("acme", "Camiseta Adidas Original", "Camiseta de algodón 100% original", 45, 0, entity.StatusOutOfStock),
		producto("globex", "Mochila Escolar", "Mochila resistente para estudiantes", 35, 15, entity.StatusActive),
		producto("globex", "Reloj Casio Digital", "Reloj digital resistente al agua", 89, 8, entity.StatusPaused),
	}
}

// El filtro de texto matchea por nombre O descripción, sin distinguir mayúsculas.
func TestFilter_TextoCaseInsensitive(t *testing.T) {
	products := catalogoDemo()

	for _, q := range []string{"wid", "WID", "Wid"} {
		got := catalog.Filter{Query: q}.Apply(products)
		assert.Empty(t, got, "no hay productos con %q", q)
	}

	got := catalog.Filter{Query: "ZAPATILLAS"}.Apply(products)
	assert.Len(t, got, 1)
	assert.Equal(t, "Zapatillas Nike Air Max", got[0].Name)

	// match por descripción
	got = catalog.Filter{Query: "algodón"}.Apply(products)
	assert.Len(t, got, 1)
	assert.Equal(t, "Camiseta Adidas Original", got[0].Name)
}

func TestFilter_PorEmpresa(t *testing.T) {
	got := catalog.Filter{CompanyID: "globex"}.Apply(catalogoDemo())
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "globex", p.CompanyID)
	}
}

func TestFilter_ClaseDeEstado(t *testing.T) {
	products := catalogoDemo()

	activos := catalog.Filter{Class: catalog.ClassActive}.Apply(products)
	assert.Len(t, activos, 2)

	sinStock := catalog.Filter{Class: catalog.ClassOutOfStock}.Apply(products)
	assert.Len(t, sinStock, 1)
	assert.Equal(t, 0, sinStock[0].Stock)

	todos := catalog.Filter{Class: catalog.ClassAll}.Apply(products)
	assert.Len(t, todos, 4)
}

// Los tres filtros se aplican en AND.
func TestFilter_Conjuntivo(t *testing.T) {
	got := catalog.Filter{
		Query:     "resistente",
		CompanyID: "globex",
		Class:     catalog.ClassActive,
	}.Apply(catalogoDemo())

	assert.Len(t, got, 1)
	assert.Equal(t, "Mochila Escolar", got[0].Name)
}

// El filtro vacío devuelve el slice original en el mismo orden.
func TestFilter_VacioNoFiltra(t *testing.T) {
	products := catalogoDemo()
	got := catalog.Filter{}.Apply(products)
	assert.Equal(t, products, got)
}
