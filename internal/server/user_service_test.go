package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutapp/carbon-coach/internal/config"
	"github.com/sproutapp/carbon-coach/internal/db"
	"github.com/sproutapp/carbon-coach/internal/types"
)

// memoryStore is an in-memory UserStore for service tests.
type memoryStore struct {
	users map[uuid.UUID]*db.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[uuid.UUID]*db.User)}
}

func (m *memoryStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}
	return id, nil
}

func (m *memoryStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return m.users[userID], nil
}

func (m *memoryStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if u, ok := m.users[userID]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func testUserService(t *testing.T) (*UserService, *memoryStore) {
	t.Helper()
	store := newMemoryStore()
	// Minimum cost keeps the bcrypt-heavy tests fast.
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	return NewUserService(store, passwordConfig), store
}

func TestUserService_Register(t *testing.T) {
	service, store := testUserService(t)

	user, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maya", user.Name)
	assert.Equal(t, "maya@example.com", user.Email)

	// The stored hash must not be the plaintext password.
	stored := store.users[user.ID]
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	user, err := service.Login(ctx, &types.LoginRequest{
		Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "maya@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, _ := testUserService(t)

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, user.ID, "hunter2hunter2", "newpassword123")
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "maya@example.com", Password: "newpassword123"})
	assert.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "maya@example.com", Password: "hunter2hunter2"})
	assert.Error(t, err)
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, user.ID, "wrong", "newpassword123")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	service, _ := testUserService(t)

	err := service.UpdatePassword(context.Background(), uuid.New(), "x", "newpassword123")
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
