package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/internal/catalog"
)

func TestNormalize_RejectsRecordsWithoutIdentity(t *testing.T) {
	_, err := catalog.Normalize(catalog.Activity{Name: "No id"})
	assert.Error(t, err)

	_, err = catalog.Normalize(catalog.Activity{PlaceID: "p1", Name: "   "})
	assert.Error(t, err)
}

func TestNormalize_FixesUpFields(t *testing.T) {
	raw := catalog.Activity{
		PlaceID:     "  p1 ",
		Name:        " Museum ",
		PriceLevel:  "PRICE_LEVEL_BOGUS",
		Coordinates: []float64{10.78}, // incomplete pair
		OpenHours: []catalog.OpenPeriod{
			{Day: 1, OpenHour: 9, CloseHour: 17},
			{Day: 9, OpenHour: 9, CloseHour: 17},
		},
	}

	got, err := catalog.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "p1", got.PlaceID)
	assert.Equal(t, "Museum", got.Name)
	assert.Empty(t, string(got.PriceLevel))
	assert.False(t, got.HasCoordinates())
	require.Len(t, got.OpenHours, 1)
	assert.Equal(t, 1, got.OpenHours[0].Day)
}

func TestActivity_PrimaryType(t *testing.T) {
	assert.Equal(t, "", catalog.Activity{}.PrimaryType())
	assert.Equal(t, "museum", catalog.Activity{Types: []string{"museum", "tourist_attraction"}}.PrimaryType())
}
