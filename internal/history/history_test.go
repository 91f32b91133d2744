package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushCapsAndDedupes(t *testing.T) {
	var h []string
	for i := 1; i <= 10; i++ {
		h = Push(h, fmt.Sprintf("t%d", i))
	}
	assert.Equal(t, []string{"t10", "t9", "t8", "t7", "t6", "t5", "t4"}, h)

	h = Push(h, "t7")
	assert.Equal(t, []string{"t7", "t10", "t9", "t8", "t6", "t5", "t4"}, h)

	h = Push(h, "t7")
	assert.Len(t, h, MaxEntries)
	assert.Equal(t, "t7", h[0])
}

func TestPushDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b"}
	out := Push(in, "b")
	assert.Equal(t, []string{"a", "b"}, in)
	assert.Equal(t, []string{"b", "a"}, out)
}

func TestPushExactMatchOnly(t *testing.T) {
	assert.Equal(t, []string{"ABC", "abc"}, Push([]string{"abc"}, "ABC"))
}

func TestPushIgnoresBlank(t *testing.T) {
	assert.Equal(t, []string{"a"}, Push([]string{"a"}, "  "))
}

func TestRecorderWithMemoryStore(t *testing.T) {
	ctx := context.Background()
	r := NewRecorder(NewMemoryStore())

	for _, term := range []string{"1001", "1002", "1001", "1003"} {
		_, err := r.Record(ctx, "dana", term)
		require.NoError(t, err)
	}
	_, err := r.Record(ctx, "sam", "2001")
	require.NoError(t, err)

	got, err := r.List(ctx, "dana")
	require.NoError(t, err)
	assert.Equal(t, []string{"1003", "1001", "1002"}, got)

	require.NoError(t, r.Clear(ctx, "dana"))
	got, err = r.List(ctx, "dana")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.List(ctx, "sam")
	require.NoError(t, err)
	assert.Equal(t, []string{"2001"}, got)
}
