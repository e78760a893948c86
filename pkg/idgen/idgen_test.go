package idgen

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeGeneratorIsStrictlyIncreasing(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	g := NewTimeGenerator(func() time.Time { return frozen })

	first := g.NewID()
	second := g.NewID()
	third := g.NewID()

	assert.Equal(t, "1700000000000", first)
	assert.Equal(t, "1700000000001", second)
	assert.Equal(t, "1700000000002", third)
}

func TestTimeGeneratorFollowsClock(t *testing.T) {
	now := time.UnixMilli(1_000)
	g := NewTimeGenerator(func() time.Time { return now })

	a, _ := strconv.ParseInt(g.NewID(), 10, 64)
	now = now.Add(5 * time.Second)
	b, _ := strconv.ParseInt(g.NewID(), 10, 64)

	assert.Equal(t, int64(1_000), a)
	assert.Equal(t, int64(6_000), b)
}

func TestSequence(t *testing.T) {
	s := NewSequence("p")
	assert.Equal(t, "p-1", s.NewID())
	assert.Equal(t, "p-2", s.NewID())

	bare := NewSequence("")
	assert.Equal(t, "1", bare.NewID())
}

func TestNew(t *testing.T) {
	g, err := New(StrategyUUID)
	require.NoError(t, err)
	_, err = uuid.Parse(g.NewID())
	assert.NoError(t, err)

	g, err = New("")
	require.NoError(t, err)
	assert.IsType(t, &TimeGenerator{}, g)

	_, err = New("snowflake")
	assert.Error(t, err)
}
