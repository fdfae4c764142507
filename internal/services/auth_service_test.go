package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/qa-board-api/internal/models"
	"github.com/yukikurage/qa-board-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repository.NewUserRepository(db))

	user, err := service.Register(RegisterInput{
		Username: "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotZero(t, user.ID)

	// The stored hash must verify against the cleartext and never equal it.
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotEqual(t, "supersecret", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repository.NewUserRepository(db))

	first, err := service.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = service.Register(RegisterInput{Username: "alice", Password: "othersecret"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "alice").Count(&count).Error)
	require.EqualValues(t, 1, count)

	// The surviving row is the first registration.
	user, err := service.Login(LoginInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, first.ID, user.ID)
}

func TestAuthService_Register_PasswordTooShort(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repository.NewUserRepository(db))

	_, err := service.Register(RegisterInput{Username: "alice", Password: "short"})
	require.ErrorIs(t, err, ErrPasswordTooShort)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repository.NewUserRepository(db))

	registered, err := service.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	user, err := service.Login(LoginInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = service.Login(LoginInput{Username: "alice", Password: "wrongpassword"})
	require.ErrorIs(t, err, ErrWrongPassword)

	_, err = service.Login(LoginInput{Username: "nobody", Password: "supersecret"})
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthService_Login_MalformedHash(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repository.NewUserRepository(db))

	createTestUser(t, db, "broken") // stores a non-bcrypt hash

	_, err := service.Login(LoginInput{Username: "broken", Password: "whatever"})
	require.ErrorIs(t, err, ErrPasswordCheckFailed)
	require.NotErrorIs(t, err, ErrWrongPassword)
}
