package auth

import (
	"context"
	"testing"

	"skinclinic/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 101
	}
	return args.Error(0)
}

func (m *MockProfileStore) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileStore) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

type staticIssuer struct{}

func (staticIssuer) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestRegister_CreatesCustomerProfile(t *testing.T) {
	store := new(MockProfileStore)
	store.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := NewService(store, staticIssuer{})

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "  Jane@Example.COM ",
		Password:  "secret123",
		FirstName: " Jane ",
		LastName:  "Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "test-token", result.Token)
	assert.Equal(t, "jane@example.com", result.Profile.Email)
	assert.Equal(t, string(domain.RoleCustomer), result.Profile.Role)
	assert.Equal(t, "Jane", result.Profile.FirstName)

	created := store.Calls[1].Arguments.Get(1).(*domain.Profile)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestRegister_EmailTaken(t *testing.T) {
	store := new(MockProfileStore)
	store.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.Profile{ID: 1, Email: "jane@example.com"}, nil)

	svc := NewService(store, staticIssuer{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret123",
		FirstName: "Jane",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	store := new(MockProfileStore)
	store.On("GetByEmail", mock.Anything, "jane@example.com").Return(&domain.Profile{
		ID:           42,
		Email:        "jane@example.com",
		PasswordHash: hashOf(t, "secret123"),
		Role:         domain.RoleCustomer,
	}, nil)

	svc := NewService(store, staticIssuer{})

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "test-token", result.Token)
	assert.Equal(t, int64(42), result.Profile.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := new(MockProfileStore)
	store.On("GetByEmail", mock.Anything, "jane@example.com").Return(&domain.Profile{
		ID:           42,
		Email:        "jane@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)

	svc := NewService(store, staticIssuer{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	store := new(MockProfileStore)
	store.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, staticIssuer{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
