package admin

import (
	"context"
	"testing"

	"skinclinic/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProfileRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type staticCounter struct{ n int64 }

func (c staticCounter) CountAll(ctx context.Context) (int64, error)    { return c.n, nil }
func (c staticCounter) CountActive(ctx context.Context) (int64, error) { return c.n, nil }

func TestGetStatistics(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("CountByRole", mock.Anything, domain.RoleCustomer).Return(int64(12), nil)

	svc := NewService(profiles, staticCounter{n: 34}, staticCounter{n: 5}, staticCounter{n: 4})

	stats, err := svc.GetStatistics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalCustomers)
	assert.Equal(t, int64(34), stats.TotalOrders)
	assert.Equal(t, int64(5), stats.ActiveServices)
	assert.Equal(t, int64(4), stats.ActiveCategories)
}

func TestDeleteCustomer_Success(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Profile{ID: 7, Role: domain.RoleCustomer}, nil)
	profiles.On("Delete", mock.Anything, int64(7)).Return(nil)

	svc := NewService(profiles, staticCounter{}, staticCounter{}, staticCounter{})

	assert.NoError(t, svc.DeleteCustomer(context.Background(), 7))
	profiles.AssertExpectations(t)
}

func TestDeleteCustomer_RefusesAdmins(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Profile{ID: 1, Role: domain.RoleAdmin}, nil)

	svc := NewService(profiles, staticCounter{}, staticCounter{}, staticCounter{})

	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), 1), ErrNotACustomer)
	profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(profiles, staticCounter{}, staticCounter{}, staticCounter{})

	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), 404), ErrCustomerNotFound)
}
