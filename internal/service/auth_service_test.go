package service_test

import (
	"context"
	"testing"

	"retailpos/internal/auth"
	"retailpos/internal/config"
	"retailpos/internal/dto"
	"retailpos/internal/model"
	"retailpos/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthSvc() (service.AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return service.NewAuthService(repo, cfg), repo
}

func seedUser(repo *stubUserRepo, username, password, role string) *model.User {
	salt, hash, _ := auth.HashPassword(password)
	u := &model.User{Username: username, Salt: salt, PasswordHash: hash, Role: role}
	_ = repo.Create(context.Background(), u)
	return u
}

func TestLogin_Success(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "admin", "admin123", model.RoleAdministrator)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, model.RoleAdministrator, resp.User.Role)

	// Token must parse with the shared secret and carry the role claim
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, model.RoleAdministrator, claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "admin", "admin123", model.RoleAdministrator)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUser(repo, "cashier1", "oldpass1", model.RoleCashier)

	err := svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordRequest{
		CurrentPassword: "oldpass1",
		NewPassword:     "newpass1",
	})
	require.NoError(t, err)

	// Old password stops working, new one logs in
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "oldpass1"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "newpass1"})
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUser(repo, "cashier1", "oldpass1", model.RoleCashier)

	err := svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpass1",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "admin", "admin123", model.RoleAdministrator)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "admin", Password: "whatever1", Role: model.RoleCashier,
	})
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, repo := buildAuthSvc()

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "cashier1", Password: "secret12", Role: model.RoleCashier,
	})
	require.NoError(t, err)

	stored := repo.users[resp.ID]
	assert.NotEqual(t, "secret12", stored.PasswordHash)
	assert.NotEmpty(t, stored.Salt)
	assert.True(t, auth.VerifyPassword(stored.Salt, stored.PasswordHash, "secret12"))
}

func TestUpdateUser_RoleChange(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUser(repo, "cashier1", "secret12", model.RoleCashier)

	role := model.RoleAdministrator
	resp, err := svc.UpdateUser(context.Background(), u.ID, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdministrator, resp.Role)
	assert.Equal(t, model.RoleAdministrator, repo.users[u.ID].Role)
}
