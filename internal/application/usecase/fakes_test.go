package usecase_test

import (
	"fmt"
	"sort"

	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia para los tests de casos de uso.

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	order     []string // orden de listado estable
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: map[string]*entity.Company{}}
	for _, c := range companies {
		r.companies[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) List() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

type productKey struct{ companyID, id string }

type fakeProductRepo struct {
	products map[productKey]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[productKey]*entity.Product{}}
	for _, p := range products {
		r.products[productKey{p.CompanyID, p.ID}] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[productKey{p.CompanyID, p.ID}] = p
	return nil
}

func (r *fakeProductRepo) GetByCompanyAndID(companyID, id string) (*entity.Product, error) {
	p := r.products[productKey{companyID, id}]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[productKey{p.CompanyID, p.ID}] = p
	return nil
}

func (r *fakeProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for k, p := range r.products {
		if k.companyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Delete(companyID, id string) error {
	delete(r.products, productKey{companyID, id})
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	seq    int
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.seq++
	o.Number = fmt.Sprintf("#%d", r.seq)
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) GetByCompanyAndID(companyID, id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id && (companyID == "" || o.CompanyID == companyID) {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(companyID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if companyID == "" || o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(companyID, id, status string) error {
	for _, o := range r.orders {
		if o.ID == id && o.CompanyID == companyID {
			o.Status = status
		}
	}
	return nil
}

func (r *fakeOrderRepo) CountByStatus(companyID string) ([]repository.OrderStatusCount, error) {
	byStatus := map[string]*repository.OrderStatusCount{}
	var order []string
	for _, o := range r.orders {
		if companyID != "" && o.CompanyID != companyID {
			continue
		}
		c, ok := byStatus[o.Status]
		if !ok {
			c = &repository.OrderStatusCount{Status: o.Status}
			byStatus[o.Status] = c
			order = append(order, o.Status)
		}
		c.Count++
		c.Total = c.Total.Add(o.Amount)
	}
	out := make([]repository.OrderStatusCount, 0, len(order))
	for _, st := range order {
		out = append(out, *byStatus[st])
	}
	return out, nil
}

type fakeBotConfigRepo struct {
	configs map[string]*entity.BotConfig
}

func newFakeBotConfigRepo() *fakeBotConfigRepo {
	return &fakeBotConfigRepo{configs: map[string]*entity.BotConfig{}}
}

func (r *fakeBotConfigRepo) GetByCompany(companyID string) (*entity.BotConfig, error) {
	cfg := r.configs[companyID]
	if cfg == nil {
		return nil, nil
	}
	cp := *cfg
	return &cp, nil
}

func (r *fakeBotConfigRepo) Upsert(cfg *entity.BotConfig) error {
	cp := *cfg
	r.configs[cfg.CompanyID] = &cp
	return nil
}
