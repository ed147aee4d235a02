package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnown(t *testing.T) {
	for _, typ := range Types() {
		assert.True(t, Known(typ), typ)
	}
	assert.False(t, Known("trivia"))
	assert.False(t, Known(""))
}

func TestRandom(t *testing.T) {
	q, ok := Random(RoundTypeRiddle)
	require.True(t, ok)
	assert.Equal(t, RoundTypeRiddle, q.Type)
	assert.NotEmpty(t, q.Prompt)
	assert.NotEmpty(t, q.Answers)
	assert.Greater(t, q.Reward, 0)

	_, ok = Random("trivia")
	assert.False(t, ok)
}

func TestRandomAutoNeverDaily(t *testing.T) {
	for i := 0; i < 100; i++ {
		q := RandomAuto()
		assert.NotEqual(t, RoundTypeDaily, q.Type)
		assert.NotEmpty(t, q.Answers)
	}
}
