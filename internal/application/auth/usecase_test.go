package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Visitantes-api/internal/application/dto"
	"github.com/jhoicas/Visitantes-api/internal/domain"
	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Visitantes-api/pkg/jwt"
)

// fakeUserRepo repositorio en memoria indexado por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{ID: "u-" + role, Name: "Test " + role, Email: email, PasswordHash: string(hash), Role: role}
	repo.byEmail[email] = u
	return u
}

var testJWT = JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "vpms-test"}

func TestLogin_OK(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "sec@test.com", "sec123", entity.RoleSecurity)
	uc := NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "sec@test.com", Password: "sec123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSecurity, out.User.Role)
	assert.NotEmpty(t, out.Token)

	// El token debe llevar el id y el rol del principal.
	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleSecurity, role)
}

// El email se normaliza: espacios y mayúsculas no impiden el login.
func TestLogin_EmailNormalizado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "emp@test.com", "emp123", entity.RoleEmployee)
	uc := NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "  EMP@test.com ", Password: "emp123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.User.Role)
}

// Password incorrecto y usuario inexistente responden el mismo error,
// para no revelar cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "emp@test.com", "emp123", entity.RoleEmployee)
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "emp@test.com", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@test.com", Password: "emp123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterStaff_OK(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterStaff(context.Background(), dto.RegisterStaffRequest{
		Name: "Gate Security", Email: "Sec@Test.com", Password: "sec123", Role: entity.RoleSecurity,
	})
	require.NoError(t, err)
	assert.Equal(t, "sec@test.com", out.Email, "el email se guarda en minúsculas")
	assert.Equal(t, entity.RoleSecurity, out.Role)

	// El hash persiste, nunca el password plano.
	saved := repo.byEmail["sec@test.com"]
	require.NotNil(t, saved)
	assert.NotContains(t, saved.PasswordHash, "sec123")
	assert.True(t, strings.HasPrefix(saved.PasswordHash, "$2"), "debe ser hash bcrypt")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("sec123")))
}

func TestRegisterStaff_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "emp@test.com", "emp123", entity.RoleEmployee)
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterStaff(context.Background(), dto.RegisterStaffRequest{
		Name: "Otro", Email: "emp@test.com", Password: "x12345", Role: entity.RoleEmployee,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterStaff_RolInvalido(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWT)
	_, err := uc.RegisterStaff(context.Background(), dto.RegisterStaffRequest{
		Name: "X", Email: "x@test.com", Password: "x12345", Role: "SuperUser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
