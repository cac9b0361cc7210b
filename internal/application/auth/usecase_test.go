package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del directorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID       map[string]*entity.User
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       map[string]*entity.User{},
		byUsername: map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}
func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}
func (r *fakeUserRepo) AddPoints(userID string, points int64) error {
	if u, ok := r.byID[userID]; ok {
		u.Points += points
	}
	return nil
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "tienda-api-test"
)

func buildAuth() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioBronzeSinPuntos(t *testing.T) {
	uc, repo := buildAuth()

	resp, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "secreta1"})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, entity.MembershipBronze, resp.Membership)
	assert.Equal(t, int64(0), resp.Points)
	assert.Equal(t, entity.UserStatusActive, resp.Status)
	assert.NotEmpty(t, resp.ID)

	// El hash persistido debe verificar contra el password en claro
	stored := repo.byUsername["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta1", stored.PasswordHash, "nunca se guarda el password en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")))
}

func TestRegister_UsernameConEspacios_SeNormaliza(t *testing.T) {
	uc, repo := buildAuth()

	resp, err := uc.Register(dto.RegisterRequest{Username: "  alice  ", Password: "secreta1"})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.NotNil(t, repo.byUsername["alice"])
}

// Registro duplicado: el directorio conserva un solo registro por username.
func TestRegister_UsernameDuplicado_RetornaConflicto(t *testing.T) {
	uc, repo := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "alice", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, repo.byID, 1, "no debe quedar un segundo registro")
}

func TestRegister_CamposVacios_RetornaError(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteJWTConClaims(t *testing.T) {
	uc, repo := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "secreta1"})
	require.NoError(t, err)

	// Subir la membresía para verificar que viaja en el claim
	repo.byUsername["alice"].Membership = entity.MembershipGold

	resp, err := uc.Login(dto.LoginRequest{Username: "alice", Password: "secreta1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, username, membership, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.byUsername["alice"].ID, userID)
	assert.Equal(t, "alice", username)
	assert.Equal(t, entity.MembershipGold, membership)
	assert.Equal(t, "alice", resp.User.Username)
}

// Usuario inexistente y password incorrecto responden igual, sin distinguir.
func TestLogin_CredencialesInvalidas_SinDistinguirCaso(t *testing.T) {
	uc, _ := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "alice", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Username: "no-existe", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaSuspendida_RetornaForbidden(t *testing.T) {
	uc, repo := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "secreta1"})
	require.NoError(t, err)

	repo.byUsername["alice"].Status = entity.UserStatusSuspended

	_, err = uc.Login(dto.LoginRequest{Username: "alice", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
