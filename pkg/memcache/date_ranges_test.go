package mem_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	mem "itinero/pkg/memcache"
)

func TestDateRanges_SetAndCurrent(t *testing.T) {
	ranges := mem.NewDateRanges()

	_, _, ok := ranges.Current("itin-1", "dest-1")
	assert.False(t, ok)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	ranges.Set("itin-1", "dest-1", from, to)

	gotFrom, gotTo, ok := ranges.Current("itin-1", "dest-1")
	assert.True(t, ok)
	assert.Equal(t, from, gotFrom)
	assert.Equal(t, to, gotTo)

	// pairs are independent
	_, _, ok = ranges.Current("itin-1", "dest-2")
	assert.False(t, ok)
}

func TestDateRanges_Forget(t *testing.T) {
	ranges := mem.NewDateRanges()
	ranges.Set("itin-1", "dest-1", time.Now(), time.Now().Add(72*time.Hour))

	ranges.Forget("itin-1", "dest-1")

	_, _, ok := ranges.Current("itin-1", "dest-1")
	assert.False(t, ok)
}
