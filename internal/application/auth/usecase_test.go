package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ecommercebot-api/internal/application/auth"
	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/ecommercebot-api/pkg/jwt"
)

const empresaAcme = "11111111-1111-1111-1111-111111111111"

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo(ids ...string) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: map[string]*entity.Company{}}
	now := time.Now()
	for _, id := range ids {
		r.companies[id] = &entity.Company{ID: id, Name: "Empresa " + id, CreatedAt: now, UpdatedAt: now}
	}
	return r
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.companies[id], nil }

func (r *fakeCompanyRepo) Update(c *entity.Company) error { r.companies[c.ID] = c; return nil }

func (r *fakeCompanyRepo) Delete(id string) error { delete(r.companies, id); return nil }

func (r *fakeCompanyRepo) List() ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "ecommercebot-test"}
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo(empresaAcme)
	return auth.NewAuthUseCase(users, companies, testJWTConfig()), users
}

func TestRegister_ClienteRequiereEmpresaExistente(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "secreto123", Role: entity.RoleCliente,
	})
	assert.ErrorIs(t, err, domain.ErrCompanyRequired)

	_, err = uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "secreto123", Role: entity.RoleCliente,
		CompanyID: "99999999-9999-9999-9999-999999999999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "secreto123", Role: entity.RoleCliente,
		CompanyID: empresaAcme,
	})
	require.NoError(t, err)
	assert.Equal(t, empresaAcme, out.CompanyID)
	assert.Equal(t, entity.RoleCliente, out.Role)
}

func TestRegister_AdminSinEmpresa(t *testing.T) {
	uc, _ := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "root@plataforma.com", Password: "secreto123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Empty(t, out.CompanyID, "admin no pertenece a ninguna empresa")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "secreto123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "otroPassword1", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConClaims(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "secreto123", Role: entity.RoleCliente, CompanyID: empresaAcme,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, companyID, role, err := pkgjwt.Parse(testJWTConfig().Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, empresaAcme, companyID)
	assert.Equal(t, entity.RoleCliente, role)
}

// Email inexistente y password incorrecto colapsan en el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "secreto123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@acme.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@acme.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Identidad válida sin documento de perfil es un caso distinto a un error de lectura.
func TestProfile_NoEncontrado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Profile("00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfile_DevuelvePerfil(t *testing.T) {
	uc, _ := newAuthUC()
	created, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@acme.com", Password: "secreto123", Role: entity.RoleCliente, CompanyID: empresaAcme,
	})
	require.NoError(t, err)

	out, err := uc.Profile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.com", out.Email)
	assert.Equal(t, empresaAcme, out.CompanyID)
}
