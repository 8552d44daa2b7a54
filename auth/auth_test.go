package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotel-console/models"
	"hotel-console/storage"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryBackend) {
	t.Helper()
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewStore(storage.NewMemoryBackend(0), log)
	users := storage.NewCollection[models.User](store, models.UsersKey)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	for _, u := range []*models.User{
		{Email: "admin@hotel.com", Password: "admin123", Name: "Admin User", Role: models.RoleAdmin},
		{Email: "user@hotel.com", Password: "user123", Name: "Regular User", Role: models.RoleUser},
		{Email: "ops@hotel.com", Password: string(hash), Name: "Ops", Role: models.RoleUser},
	} {
		_, err := users.Create(ctx, u)
		require.NoError(t, err)
	}

	sessions := storage.NewMemoryBackend(time.Hour)
	return NewService(users, sessions, log), sessions
}

func TestLogin_Admin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Login(ctx, "admin@hotel.com", "admin123")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "admin@hotel.com", res.User.Email)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
	assert.Equal(t, "Admin User", res.User.Name)

	assert.True(t, svc.IsAuthenticated(ctx, res.Token))
	assert.True(t, svc.IsAdmin(ctx, res.Token))
	assert.Equal(t, models.RoleAdmin, svc.GetRole(ctx, res.Token))
}

func TestLogin_Rejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, tc := range []struct{ email, password string }{
		{"admin@hotel.com", "wrong"},
		{"nobody@hotel.com", "admin123"},
		{"ADMIN@hotel.com", "admin123"},
		{"", ""},
	} {
		res, err := svc.Login(ctx, tc.email, tc.password)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, InvalidCredentials, res.Message)
		assert.Empty(t, res.Token)
	}
}

func TestLogin_BcryptHash(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Login(ctx, "ops@hotel.com", "s3cret")
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = svc.Login(ctx, "ops@hotel.com", "nope")
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Login(ctx, "user@hotel.com", "user123")
	require.NoError(t, err)
	assert.False(t, svc.IsAdmin(ctx, res.Token))

	require.NoError(t, svc.Logout(ctx, res.Token))
	_, err = svc.GetSession(ctx, res.Token)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, svc.GetRole(ctx, res.Token))

	require.NoError(t, svc.Logout(ctx, res.Token))
	require.NoError(t, svc.Logout(ctx, ""))
}

func TestGetSession_UnreadableIsDropped(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestService(t)
	require.NoError(t, sessions.SetItem(ctx, sessionPrefix+"tok", []byte("garbage")))

	_, err := svc.GetSession(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoSession)
	_, ok, _ := sessions.GetItem(ctx, sessionPrefix+"tok")
	assert.False(t, ok)
}
