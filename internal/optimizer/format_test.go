package optimizer

import (
	"testing"

	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoute_Nil(t *testing.T) {
	assert.Nil(t, FormatRoute(nil))
}

func TestFormatRoute_Transfer(t *testing.T) {
	o := sampleOffers()[1]
	fr := FormatRoute(&o)
	require.NotNil(t, fr)

	assert.Equal(t, []network.Code{"IST", "ADB", "ESB"}, fr.Path)
	assert.Len(t, fr.Segments, 2)
	assert.Equal(t, 800.0, fr.Summary.Price)
	assert.Equal(t, "TRY", fr.Summary.Currency)
	assert.Equal(t, 300, fr.Summary.DurationMinutes)
	assert.Equal(t, 1, fr.Summary.TransferCount)
	assert.False(t, fr.Summary.IsDirect)
	require.NotNil(t, fr.Summary.ArrivalTime)
	assert.Equal(t, 14, fr.Summary.ArrivalTime.Hour())
	assert.Equal(t, "B", fr.Offer.ID)
}

func TestFormatRoute_Direct(t *testing.T) {
	o := sampleOffers()[0]
	fr := FormatRoute(&o)

	assert.Equal(t, []network.Code{"IST", "ESB"}, fr.Path)
	assert.True(t, fr.Summary.IsDirect)
	assert.Equal(t, 0, fr.Summary.TransferCount)
	assert.Equal(t, 120, fr.Summary.DurationMinutes)
}

func TestFormatRoute_NoItinerary(t *testing.T) {
	fr := FormatRoute(&models.FlightOffer{ID: "x", Price: 5, Currency: "TRY"})
	require.NotNil(t, fr)

	assert.Empty(t, fr.Path)
	assert.Nil(t, fr.Summary.ArrivalTime)
	assert.Equal(t, 5.0, fr.Summary.Price)
}

func TestRoutes_Format(t *testing.T) {
	res := New(testNetwork()).Optimize(models.SearchResult{Offers: sampleOffers()}, params("12:00"))
	f := res.Routes.Format()

	require.NotNil(t, f.Cheapest)
	assert.Equal(t, "D", f.Cheapest.Offer.ID)
	assert.Equal(t, "A", f.Balanced.Offer.ID)

	empty := Routes{}.Format()
	assert.Nil(t, empty.Cheapest)
	assert.Nil(t, empty.Fastest)
}
