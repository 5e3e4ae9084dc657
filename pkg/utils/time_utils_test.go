package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/pkg/utils"
)

func TestParseDateOnly(t *testing.T) {
	got, err := utils.ParseDateOnly("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), got)

	_, err = utils.ParseDateOnly("03/06/2024")
	assert.Error(t, err)

	_, err = utils.ParseDateOnly("")
	assert.Error(t, err)
}

func TestFormatDateOnly(t *testing.T) {
	assert.Equal(t, "", utils.FormatDateOnly(time.Time{}))

	d := time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-03", utils.FormatDateOnly(d))
}

func TestParseClock(t *testing.T) {
	minutes, err := utils.ParseClock("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	minutes, err = utils.ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = utils.ParseClock("24:00")
	assert.Error(t, err)

	_, err = utils.ParseClock("10am")
	assert.Error(t, err)
}

func TestTruncateToDay(t *testing.T) {
	d := time.Date(2024, 6, 3, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), utils.TruncateToDay(d))
}
