package promo

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================
// Mock PromoStore
// ============================================

type mockStore struct {
	mu      sync.Mutex
	code    string
	hidden  bool
	failErr error
}

func (m *mockStore) GetCode(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code, m.failErr
}

func (m *mockStore) EnsureCode(ctx context.Context, candidate string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return "", m.failErr
	}
	if m.code == "" {
		m.code = candidate
	}
	return m.code, nil
}

func (m *mockStore) SetCode(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.code = code
	return nil
}

func (m *mockStore) GetVisibility(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.hidden, m.failErr
}

func (m *mockStore) ToggleVisibility(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return false, m.failErr
	}
	m.hidden = !m.hidden
	return !m.hidden, nil
}

func (m *mockStore) Ping(ctx context.Context) error { return m.failErr }

// ============================================
// GenerateCode
// ============================================

func TestGenerateCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateCode()
		assert.True(t, pattern.MatchString(code), "unexpected code %q", code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes must not all collide")
}

// ============================================
// GetCode
// ============================================

func TestGetCode_LazyGeneration(t *testing.T) {
	store := &mockStore{}
	uc := NewGetCodeUseCase(store)

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated reads return the same code")
}

func TestGetCode_StoreFailure(t *testing.T) {
	store := &mockStore{failErr: errors.New("redis down")}
	uc := NewGetCodeUseCase(store)

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}

// ============================================
// RegenerateCode
// ============================================

func TestRegenerateCode(t *testing.T) {
	const adminID = 123456789

	t.Run("AdminRegenerates", func(t *testing.T) {
		store := &mockStore{code: "OLD123"}
		uc := NewRegenerateCodeUseCase(store, adminID)

		code, err := uc.Execute(context.Background(), adminID)
		require.NoError(t, err)
		assert.NotEqual(t, "OLD123", code)
		assert.Equal(t, code, store.code)
	})

	t.Run("NonAdminRejected", func(t *testing.T) {
		store := &mockStore{code: "OLD123"}
		uc := NewRegenerateCodeUseCase(store, adminID)

		_, err := uc.Execute(context.Background(), 42)
		assert.True(t, domainerrors.IsUnauthorized(err))
		assert.Equal(t, "OLD123", store.code, "code must stay untouched")
	})

	t.Run("NoAdminConfigured", func(t *testing.T) {
		store := &mockStore{}
		uc := NewRegenerateCodeUseCase(store, 0)

		_, err := uc.Execute(context.Background(), 42)
		assert.True(t, domainerrors.IsUnauthorized(err))
	})

	t.Run("ZeroUserRejected", func(t *testing.T) {
		uc := NewRegenerateCodeUseCase(&mockStore{}, adminID)
		_, err := uc.Execute(context.Background(), 0)
		assert.True(t, domainerrors.IsUnauthorized(err))
	})
}

// ============================================
// Visibility
// ============================================

func TestVisibility(t *testing.T) {
	const adminID = 123456789
	store := &mockStore{}
	get := NewGetVisibilityUseCase(store)
	toggle := NewToggleVisibilityUseCase(store, adminID)

	visible, err := get.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, visible, "visible by default")

	visible, err = toggle.Execute(context.Background(), adminID)
	require.NoError(t, err)
	assert.False(t, visible)

	visible, err = get.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, visible)

	visible, err = toggle.Execute(context.Background(), adminID)
	require.NoError(t, err)
	assert.True(t, visible)
}

func TestToggleVisibility_NonAdmin(t *testing.T) {
	store := &mockStore{}
	toggle := NewToggleVisibilityUseCase(store, 123456789)

	_, err := toggle.Execute(context.Background(), 42)
	assert.True(t, domainerrors.IsUnauthorized(err))

	visible, err := NewGetVisibilityUseCase(store).Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, visible, "rejected toggle must not change the flag")
}
