package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	rq := require.New(t)
	stats := Default().Stats()

	rq.Equal(4, stats.Operators)
	rq.Equal(12, stats.Tariffs)
	rq.Equal("Megafon", stats.CheapestOperator)
	rq.Equal(Tariff{Name: "Тариф 1", Price: 200}, stats.Cheapest)
	rq.Len(stats.ByOperator, 4)

	mts := stats.ByOperator[1]
	rq.Equal("MTS", mts.Name)
	rq.Equal(3, mts.Tariffs)
	rq.Equal(int64(299), mts.Cheapest.Price)
	rq.Equal(int64(899), mts.Priciest.Price)
	rq.Equal("565.67", mts.Mean.StringFixed(2))

	megafon := stats.ByOperator[0]
	rq.Equal("433.33", megafon.Mean.StringFixed(2))
}

func TestStatsEmptyCatalog(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	stats := c.Stats()
	assert.Zero(t, stats.Operators)
	assert.Zero(t, stats.Tariffs)
	assert.Empty(t, stats.ByOperator)
	assert.Empty(t, stats.CheapestOperator)
}
