package auth_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/g-inventory/internal/application/auth"
	"github.com/jhoicas/g-inventory/internal/application/bootstrap"
	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/infrastructure/memory"
)

const secret = "test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Repositories) {
	t.Helper()
	repos := memory.NewRepositories()
	_, err := bootstrap.NewSeeder(repos.Users, repos.Permissions, repos.Configurations, bootstrap.Options{
		AdminPassword: "1234", LimitedPassword: "4321", AlertEmail: "admin@mail.com",
	}, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)
	return auth.NewAuthUseCase(repos.Users, repos.Permissions, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}), repos
}

func TestAuthenticate(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	out, err := uc.Authenticate(ctx, dto.LoginRequest{Username: bootstrap.LimitedUsername, Password: "4321"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.UserID)

	user, err := uc.Authorize(out.Token, entity.PermViewProducts)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, user.UserID)
	assert.Equal(t, bootstrap.LimitedUsername, user.Username)

	_, err = uc.Authorize(out.Token, entity.PermEditProducts)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	cases := []dto.LoginRequest{
		{Username: bootstrap.LimitedUsername, Password: "mala"},
		{Username: "nadie", Password: "4321"},
		{Username: "", Password: ""},
	}
	for _, in := range cases {
		_, err := uc.Authenticate(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, in.Username)
	}
}

func TestAuthenticate_UsuarioDesactivado(t *testing.T) {
	uc, repos := newAuth(t)
	ctx := context.Background()

	u, err := repos.Users.GetByUsername(ctx, bootstrap.AdminUsername)
	require.NoError(t, err)
	u.Status = entity.UserStatusDeactive
	require.NoError(t, repos.Users.Update(ctx, u))

	_, err = uc.Authenticate(ctx, dto.LoginRequest{Username: bootstrap.AdminUsername, Password: "1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthorize_Errores(t *testing.T) {
	_, err := auth.Authorize(secret, "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = auth.Authorize(secret, "no.es.jwt", "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
