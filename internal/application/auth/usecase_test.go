package auth

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stockroom-api/pkg/jwt"
)

type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) Create(*entity.User) error            { return nil }
func (r *stubUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (r *stubUserRepo) AdminEmails() ([]string, error)       { return nil, nil }
func (r *stubUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func newLoginFixture(t *testing.T) *AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correcta123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &stubUserRepo{user: &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Username:     "ana",
		Email:        "ana@stockroom.local",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}}
	return NewAuthUseCase(repo, JWTConfig{
		Secret:             "test-secret",
		ExpMinutes:         60,
		RememberExpMinutes: 30 * 24 * 60,
		Issuer:             "stockroom-api-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newLoginFixture(t)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@stockroom.local", Password: "correcta123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newLoginFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@stockroom.local", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := newLoginFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@stockroom.local", Password: "correcta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconocido y password mala devuelven el mismo error")
}

func TestLogin_RememberMeExtiendeElToken(t *testing.T) {
	uc := newLoginFixture(t)

	normal, err := uc.Login(dto.LoginRequest{Email: "ana@stockroom.local", Password: "correcta123"})
	require.NoError(t, err)
	remembered, err := uc.Login(dto.LoginRequest{
		Email: "ana@stockroom.local", Password: "correcta123", RememberMe: true,
	})
	require.NoError(t, err)

	expNormal := tokenExpiry(t, normal.Token)
	expRemembered := tokenExpiry(t, remembered.Token)
	assert.True(t, expRemembered.After(expNormal),
		"remember_me debe producir un token de vida más larga")
}

func tokenExpiry(t *testing.T, token string) time.Time {
	t.Helper()
	claims := &pkgjwt.Claims{}
	_, _, err := jwtlib.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	return claims.ExpiresAt.Time
}
