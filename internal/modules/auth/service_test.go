package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"grahini/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock Admin Repository implementing the interface
type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// Mock Token Repository
type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) Create(ctx context.Context, t *domain.Token) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTokenRepo) GetByHash(ctx context.Context, hash string) (*domain.Token, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func adminWithPassword(t *testing.T, email, password string) *domain.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &domain.Admin{ID: 1, Email: email, PasswordHash: string(hash)}
}

func TestService_Login_Success(t *testing.T) {
	admins := new(mockAdminRepo)
	tokens := new(mockTokenRepo)

	admins.On("GetByEmail", mock.Anything, "admin@grahini.in").
		Return(adminWithPassword(t, "admin@grahini.in", "grahini123"), nil)

	var stored *domain.Token
	tokens.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Token)
		}).
		Return(nil)

	svc := NewService(admins, tokens)

	raw, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Admin@Grahini.in",
		Password: "grahini123",
	})

	require.NoError(t, err)
	assert.Len(t, raw, 64) // 32 random bytes, hex encoded

	require.NotNil(t, stored)
	assert.Equal(t, "admin@grahini.in", stored.AdminEmail)

	// Only the SHA-256 of the raw token may reach storage.
	sum := sha256.Sum256([]byte(raw))
	assert.Equal(t, hex.EncodeToString(sum[:]), stored.TokenHash)
	assert.NotEqual(t, raw, stored.TokenHash)
}

func TestService_Login_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	admins := new(mockAdminRepo)
	tokens := new(mockTokenRepo)

	admins.On("GetByEmail", mock.Anything, "admin@grahini.in").
		Return(adminWithPassword(t, "admin@grahini.in", "grahini123"), nil)
	admins.On("GetByEmail", mock.Anything, "ghost@grahini.in").
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(admins, tokens)

	_, errWrongPassword := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@grahini.in",
		Password: "nope",
	})
	_, errUnknownEmail := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@grahini.in",
		Password: "grahini123",
	})

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)

	// No token row is minted on a failed login.
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Authorize_RoundTrip(t *testing.T) {
	admins := new(mockAdminRepo)
	tokens := new(mockTokenRepo)

	admins.On("GetByEmail", mock.Anything, "admin@grahini.in").
		Return(adminWithPassword(t, "admin@grahini.in", "grahini123"), nil)

	var stored *domain.Token
	tokens.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Token)
		}).
		Return(nil)

	svc := NewService(admins, tokens)

	raw, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@grahini.in",
		Password: "grahini123",
	})
	require.NoError(t, err)

	tokens.On("GetByHash", mock.Anything, stored.TokenHash).Return(stored, nil)

	email, err := svc.Authorize(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "admin@grahini.in", email)
}

func TestService_Authorize_UnknownToken(t *testing.T) {
	admins := new(mockAdminRepo)
	tokens := new(mockTokenRepo)

	tokens.On("GetByHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(admins, tokens)

	_, err := svc.Authorize(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_Authorize_EmptyToken(t *testing.T) {
	svc := NewService(new(mockAdminRepo), new(mockTokenRepo))

	_, err := svc.Authorize(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_EnsureDefaultAdmin_CreatesWhenAbsent(t *testing.T) {
	admins := new(mockAdminRepo)
	tokens := new(mockTokenRepo)

	admins.On("ExistsByEmail", mock.Anything, "admin@grahini.in").Return(false, nil)

	var created *domain.Admin
	admins.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Admin)
		}).
		Return(nil)

	svc := NewService(admins, tokens)

	err := svc.EnsureDefaultAdmin(context.Background(), "admin@grahini.in", "grahini123")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "admin@grahini.in", created.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("grahini123")))
}

func TestService_EnsureDefaultAdmin_Idempotent(t *testing.T) {
	admins := new(mockAdminRepo)
	tokens := new(mockTokenRepo)

	admins.On("ExistsByEmail", mock.Anything, "admin@grahini.in").Return(true, nil)

	svc := NewService(admins, tokens)

	err := svc.EnsureDefaultAdmin(context.Background(), "admin@grahini.in", "grahini123")
	require.NoError(t, err)

	admins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
