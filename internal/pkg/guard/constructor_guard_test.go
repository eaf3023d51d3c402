package guard_test

import (
	"errors"
	"testing"

	"routing/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("stop not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	var errWindowNotConstructed = errors.New("Window must be created via newWindow")

	type window struct {
		fromMinute int
		toMinute   int
		guard      guard.ConstructorGuard
	}

	newWindow := func(from, to int) (window, error) {
		if from > to {
			return window{}, errors.New("from must not be after to")
		}
		return window{fromMinute: from, toMinute: to, guard: guard.NewConstructorGuard()}, nil
	}

	testCases := []struct {
		name    string
		build   func() (window, error)
		wantErr error
	}{
		{
			name:  "built_through_constructor",
			build: func() (window, error) { return newWindow(540, 570) },
		},
		{
			name:    "zero_value",
			build:   func() (window, error) { return window{}, nil },
			wantErr: errWindowNotConstructed,
		},
		{
			name:    "struct_literal_bypasses_constructor",
			build:   func() (window, error) { return window{fromMinute: 1, toMinute: 2}, nil },
			wantErr: errWindowNotConstructed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			w, err := tc.build()
			require.NoError(t, err)

			// Then
			err = w.guard.Validate(errWindowNotConstructed)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantErr, err)
		})
	}

	t.Run("constructor_rejects_reversed_bounds", func(t *testing.T) {
		_, err := newWindow(600, 540)
		require.Error(t, err)
	})
}

func TestConstructorGuard_SafeForConcurrentReads(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})

	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 500 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}
	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
