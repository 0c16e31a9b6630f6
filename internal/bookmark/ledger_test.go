package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_Toggle(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Load([]string{"q1", "q2", "q3"})
	before := l.All()

	for _, id := range []string{"q2", "q9"} {
		first := l.Toggle(id)
		second := l.Toggle(id)
		assert.NotEqual(t, first, second)
		assert.ElementsMatch(t, before, l.All(), "toggle %s twice", id)
	}

	assert.False(t, l.Toggle("q1"))
	assert.Equal(t, []string{"q3", "q2"}, l.All())
	assert.True(t, l.IsBookmarked("q3"))
	assert.False(t, l.IsBookmarked("q1"))

	assert.True(t, l.Toggle("q1"))
	assert.Equal(t, []string{"q3", "q2", "q1"}, l.All())

	assert.False(t, l.Toggle("q3"))
	assert.False(t, l.Toggle("q2"))
	assert.Equal(t, []string{"q1"}, l.All())
	assert.True(t, l.IsBookmarked("q1"))
}

func TestLedger_LoadAndClear(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Load([]string{"q1", "", "q2", "q1"})
	assert.Equal(t, []string{"q1", "q2"}, l.All())
	assert.Equal(t, 2, l.Len())

	all := l.All()
	all[0] = "changed"
	assert.True(t, l.IsBookmarked("q1"))

	l.Clear()
	assert.Empty(t, l.All())
	assert.NotNil(t, l.All())
	assert.False(t, l.IsBookmarked("q2"))
}
