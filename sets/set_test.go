package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Set_Add(t *testing.T) {
	s := NewSet()
	assert.True(t, s.Add("fn"))
	assert.False(t, s.Add("fn"))
	assert.True(t, s.Has("fn"))
	assert.Equal(t, 1, s.Len())
}

func Test_Set_AddSet(t *testing.T) {
	s := NewSet("fn")
	assert.True(t, s.AddSet(NewSet("fn", "#")))
	assert.False(t, s.AddSet(NewSet("fn", "#")))
	assert.Equal(t, 2, s.Len())
}

func Test_Set_WithoutEpsilon(t *testing.T) {
	s := NewSet("fn", Epsilon)
	stripped := s.WithoutEpsilon()
	assert.False(t, stripped.HasEpsilon())
	assert.True(t, stripped.Has("fn"))
	// The receiver is untouched.
	assert.True(t, s.HasEpsilon())
}

func Test_Set_String(t *testing.T) {
	t.Run("sorted bytewise", func(t *testing.T) {
		assert.Equal(t, `{")", "name"}`, NewSet("name", ")").String())
	})

	t.Run("epsilon renders last", func(t *testing.T) {
		assert.Equal(t, `{"fn", "ε"}`, NewSet(Epsilon, "fn").String())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "{}", NewSet().String())
	})
}
