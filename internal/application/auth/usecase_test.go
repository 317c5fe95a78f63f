package auth_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/joyeria-api/internal/application/auth"
	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/joyeria-api/pkg/jwt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(u *entity.User) error { return m.Called(u).Error(0) }
func (m *mockUserRepo) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}
func (m *mockUserRepo) FindByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}
func (m *mockUserRepo) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

var jwtCfg = auth.JWTConfig{Secret: "secreto-de-pruebas", ExpMinutes: 5, Issuer: "joyeria-test"}

func TestRegisterUser_HasheaYAsignaEmpresa(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", "ana@joyeria.in").Return(nil, nil)
	repo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return u.CompanyID == "company-1" && u.Role == entity.RoleBodeguero &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave-segura")) == nil
	})).Return(nil)

	uc := auth.NewAuthUseCase(repo, jwtCfg)
	out, err := uc.RegisterUser("company-1", dto.RegisterRequest{
		Email: " Ana@Joyeria.in ", Password: "clave-segura", Role: entity.RoleBodeguero,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@joyeria.in", out.Email)
	assert.Equal(t, entity.UserStatusActive, out.Status)
	repo.AssertExpectations(t)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", "ana@joyeria.in").Return(&entity.User{ID: "u1"}, nil)

	_, err := auth.NewAuthUseCase(repo, jwtCfg).RegisterUser("company-1", dto.RegisterRequest{
		Email: "ana@joyeria.in", Password: "clave-segura",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	_, err := auth.NewAuthUseCase(new(mockUserRepo), jwtCfg).RegisterUser("company-1", dto.RegisterRequest{
		Email: "ana@joyeria.in", Password: "clave-segura", Role: "orfebre",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBootstrapAdmin_CreaPrimerAdmin(t *testing.T) {
	const company = "7f1c2a3e-0000-4000-8000-000000000001"
	repo := new(mockUserRepo)
	repo.On("Count").Return(0, nil)
	repo.On("FindByEmail", "dueno@joyeria.in").Return(nil, nil)
	repo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return u.CompanyID == company && u.Role == entity.RoleAdmin &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave-inicial")) == nil
	})).Return(nil)

	out, err := auth.NewAuthUseCase(repo, jwtCfg).BootstrapAdmin(company, "Dueno@Joyeria.in", "clave-inicial")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, "dueno@joyeria.in", out.Email)
	repo.AssertExpectations(t)
}

func TestBootstrapAdmin_SinEmpresaGeneraUna(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Count").Return(0, nil)
	repo.On("FindByEmail", "dueno@joyeria.in").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	out, err := auth.NewAuthUseCase(repo, jwtCfg).BootstrapAdmin("", "dueno@joyeria.in", "clave-inicial")
	require.NoError(t, err)
	_, err = uuid.Parse(out.CompanyID)
	assert.NoError(t, err)
}

func TestBootstrapAdmin_NoHaceNadaConUsuarios(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Count").Return(3, nil)

	out, err := auth.NewAuthUseCase(repo, jwtCfg).BootstrapAdmin("", "dueno@joyeria.in", "clave-inicial")
	require.NoError(t, err)
	assert.Nil(t, out)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBootstrapAdmin_SinEmailDeshabilitado(t *testing.T) {
	repo := new(mockUserRepo)

	out, err := auth.NewAuthUseCase(repo, jwtCfg).BootstrapAdmin("", "", "")
	require.NoError(t, err)
	assert.Nil(t, out)
	repo.AssertNotCalled(t, "Count")
}

func TestBootstrapAdmin_Errores(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Count").Return(0, nil)
	uc := auth.NewAuthUseCase(repo, jwtCfg)

	_, err := uc.BootstrapAdmin("no-es-uuid", "dueno@joyeria.in", "clave-inicial")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.BootstrapAdmin("", "dueno@joyeria.in", "corta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	failing := new(mockUserRepo)
	failing.On("Count").Return(0, errors.New("conexión rechazada"))
	_, err = auth.NewAuthUseCase(failing, jwtCfg).BootstrapAdmin("", "dueno@joyeria.in", "clave-inicial")
	assert.Error(t, err)
	failing.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := new(mockUserRepo)
	repo.On("FindByEmail", "ana@joyeria.in").Return(&entity.User{
		ID: "u1", CompanyID: "company-1", Email: "ana@joyeria.in",
		PasswordHash: string(hash), Role: entity.RoleAdmin, Status: entity.UserStatusActive,
	}, nil)

	out, err := auth.NewAuthUseCase(repo, jwtCfg).Login(dto.LoginRequest{Email: "ana@joyeria.in", Password: "clave-segura"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	repo := new(mockUserRepo)
	repo.On("FindByEmail", "ana@joyeria.in").Return(&entity.User{PasswordHash: string(hash), Status: entity.UserStatusActive}, nil)

	_, err := auth.NewAuthUseCase(repo, jwtCfg).Login(dto.LoginRequest{Email: "ana@joyeria.in", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	repo := new(mockUserRepo)
	repo.On("FindByEmail", "ana@joyeria.in").Return(&entity.User{PasswordHash: string(hash), Status: entity.UserStatusInactive}, nil)

	_, err := auth.NewAuthUseCase(repo, jwtCfg).Login(dto.LoginRequest{Email: "ana@joyeria.in", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCurrentUser(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", "u1").Return(&entity.User{ID: "u1", Email: "ana@joyeria.in", Role: entity.RoleAdmin}, nil)
	repo.On("GetByID", "borrado").Return(nil, nil)
	uc := auth.NewAuthUseCase(repo, jwtCfg)

	out, err := uc.CurrentUser("u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	_, err = uc.CurrentUser("borrado")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
