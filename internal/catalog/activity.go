package catalog

import (
	"errors"
	"strings"
)

// PriceTier mirrors the places collaborator's price level enum.
type PriceTier string

const (
	PriceFree          PriceTier = "PRICE_LEVEL_FREE"
	PriceInexpensive   PriceTier = "PRICE_LEVEL_INEXPENSIVE"
	PriceModerate      PriceTier = "PRICE_LEVEL_MODERATE"
	PriceExpensive     PriceTier = "PRICE_LEVEL_EXPENSIVE"
	PriceVeryExpensive PriceTier = "PRICE_LEVEL_VERY_EXPENSIVE"
)

func (p PriceTier) Valid() bool {
	switch p {
	case PriceFree, PriceInexpensive, PriceModerate, PriceExpensive, PriceVeryExpensive:
		return true
	}
	return false
}

// OpenPeriod is one opening window: day 0 (Sunday) through 6 (Saturday).
type OpenPeriod struct {
	Day         int `json:"day"`
	OpenHour    int `json:"open_hour"`
	OpenMinute  int `json:"open_minute"`
	CloseHour   int `json:"close_hour"`
	CloseMinute int `json:"close_minute"`
}

type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

// Activity is a catalog place record. Immutable once fetched; the scheduler
// only holds its PlaceID as a weak reference.
type Activity struct {
	PlaceID     string       `json:"place_id"`
	Name        string       `json:"name"`
	Types       []string     `json:"types"` // first entry is the primary category
	Rating      float64      `json:"rating"`
	PriceLevel  PriceTier    `json:"price_level"`
	Address     string       `json:"address"`
	Coordinates []float64    `json:"coordinates"` // [lat, lng]
	Phone       string       `json:"phone_number"`
	Website     string       `json:"website_url"`
	PhotoNames  []string     `json:"photo_names"`
	OpenHours   []OpenPeriod `json:"open_hours"`
	Reviews     []Review     `json:"reviews"`
}

// PrimaryType returns the first category tag, or "" if untagged.
func (a Activity) PrimaryType() string {
	if len(a.Types) == 0 {
		return ""
	}
	return a.Types[0]
}

// HasCoordinates reports whether the record carries a usable lat/lng pair.
func (a Activity) HasCoordinates() bool {
	return len(a.Coordinates) == 2
}

var errMalformedActivity = errors.New("malformed activity record")

// Normalize validates a raw collaborator record and fixes up what it can.
// Records without a place id or name are rejected; opening periods with
// out-of-range days are dropped; unknown price levels collapse to "".
func Normalize(a Activity) (Activity, error) {
	a.PlaceID = strings.TrimSpace(a.PlaceID)
	a.Name = strings.TrimSpace(a.Name)
	if a.PlaceID == "" || a.Name == "" {
		return Activity{}, errMalformedActivity
	}

	if !a.HasCoordinates() {
		a.Coordinates = nil
	}
	if !a.PriceLevel.Valid() {
		a.PriceLevel = ""
	}

	periods := a.OpenHours[:0]
	for _, p := range a.OpenHours {
		if p.Day < 0 || p.Day > 6 {
			continue
		}
		periods = append(periods, p)
	}
	a.OpenHours = periods

	return a, nil
}
