package mocks

import (
	"context"
	"sync"

	"github.com/lmeyers/users-api/internal/domain"
	"github.com/lmeyers/users-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// When a Fn field is set it takes precedence; otherwise the method returns
// the corresponding default value and Err.
type MockUserStore struct {
	// Custom behavior functions
	ListFn    func(ctx context.Context) ([]domain.User, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	CreateFn  func(ctx context.Context, name, email string) (*domain.User, error)
	UpdateFn  func(ctx context.Context, id int64, name, email string) (*domain.User, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Default response values
	Users []domain.User
	User  *domain.User
	Err   error

	// Call tracking for verification
	mu          sync.Mutex
	ListCalls   int
	GetCalls    []int64
	CreateCalls []struct{ Name, Email string }
	UpdateCalls []struct {
		ID          int64
		Name, Email string
	}
	DeleteCalls []int64
}

var _ store.UserStore = (*MockUserStore)(nil)

// List implements store.UserStore.
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Users, m.Err
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, id)
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, name, email string) (*domain.User, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, struct{ Name, Email string }{name, email})
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, name, email)
	}
	return m.User, m.Err
}

// Update implements store.UserStore.
func (m *MockUserStore) Update(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	m.mu.Lock()
	m.UpdateCalls = append(m.UpdateCalls, struct {
		ID          int64
		Name, Email string
	}{id, name, email})
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, name, email)
	}
	return m.User, m.Err
}

// Delete implements store.UserStore.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
