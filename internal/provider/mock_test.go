package provider

import (
	"context"
	"fmt"
	"testing"

	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNetwork() *network.FlightNetwork {
	return network.Build([]models.Airport{
		{IATA: "IST", Lat: 41.26, Lon: 28.74, Flights: "ESB;ADB;AYT"},
		{IATA: "SAW", Lat: 40.90, Lon: 29.31, Flights: "ADB;ESB"},
		{IATA: "ESB", Lat: 40.13, Lon: 32.99, Flights: "IST;SAW;ADB"},
		{IATA: "ADB", Lat: 38.29, Lon: 27.16, Flights: "IST;SAW;ESB"},
		{IATA: "AYT", Lat: 36.90, Lon: 30.80, Flights: "IST;TZX"},
		{IATA: "TZX", Lat: 40.99, Lon: 39.79, Flights: "AYT"},
	})
}

func testMock(cabins ...string) *Mock {
	n := testNetwork()
	m := NewMock(func() *network.FlightNetwork { return n }, "TRY", cabins...)
	seq := 0
	m.newID = func() string {
		seq++
		return fmt.Sprintf("offer-%d", seq)
	}
	return m
}

func search(from, to string) models.SearchParams {
	return models.SearchParams{Origin: from, Destination: to, DepartureDate: "2026-11-02"}
}

func TestMock_DirectAndHubOffers(t *testing.T) {
	offers, err := testMock().Search(context.Background(), search("ADB", "ESB"))
	require.NoError(t, err)
	require.Len(t, offers, 4)

	direct := offers[0]
	assert.Equal(t, "offer-1", direct.ID)
	assert.Equal(t, "TRY", direct.Currency)
	it, ok := direct.FirstItinerary()
	require.True(t, ok)
	assert.True(t, it.IsDirect)
	assert.Equal(t, 0, it.TransferCount)
	assert.Equal(t, "TK", it.Segments[0].Carrier)
	assert.Equal(t, "Türk Hava Yolları", it.Segments[0].Airline)
	assert.Equal(t, "2026-11-02T08:00:00", it.Segments[0].Departure.Time)

	assert.Less(t, offers[1].Price, direct.Price, "second direct offer is discounted")
	assert.Equal(t, "PC", offers[1].Itineraries[0].Segments[0].Carrier)

	via := []string{
		offers[2].Itineraries[0].Segments[0].Arrival.Airport,
		offers[3].Itineraries[0].Segments[0].Arrival.Airport,
	}
	assert.Equal(t, []string{"IST", "SAW"}, via)

	for _, o := range offers[2:] {
		it := o.Itineraries[0]
		assert.False(t, it.IsDirect)
		assert.Equal(t, 1, it.TransferCount)
		assert.Equal(t, "ADB", it.Segments[0].Departure.Airport)
		assert.Equal(t, "ESB", it.Segments[1].Arrival.Airport)
	}
}

func TestMock_DurationsAreConsistent(t *testing.T) {
	offers, err := testMock().Search(context.Background(), search("ADB", "ESB"))
	require.NoError(t, err)

	for _, o := range offers {
		it := o.Itineraries[0]
		dep, err := it.Segments[0].Departure.At()
		require.NoError(t, err)
		arr, err := it.Segments[len(it.Segments)-1].Arrival.At()
		require.NoError(t, err)
		assert.Equal(t, FormatDuration(int(arr.Sub(dep).Minutes())), it.Duration)
	}

	transfer := offers[2].Itineraries[0]
	landed, _ := transfer.Segments[0].Arrival.At()
	departed, _ := transfer.Segments[1].Departure.At()
	assert.Equal(t, float64(layover), departed.Sub(landed).Minutes())
}

func TestMock_ShortestRouteTransfer(t *testing.T) {
	offers, err := testMock().Search(context.Background(), search("TZX", "IST"))
	require.NoError(t, err)
	require.Len(t, offers, 1)

	segs := offers[0].Itineraries[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, "AYT", segs[0].Arrival.Airport)
	assert.Equal(t, "XQ", segs[0].Carrier)
}

func TestMock_UnsoldCabinIsEmpty(t *testing.T) {
	p := search("ADB", "ESB")
	p.CabinClass = "business"

	offers, err := testMock().Search(context.Background(), p)
	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)

	offers, err = testMock(models.CabinEconomy, models.CabinBusiness).Search(context.Background(), p)
	require.NoError(t, err)
	assert.NotEmpty(t, offers)
}

func TestMock_Errors(t *testing.T) {
	m := testMock()
	ctx := context.Background()

	_, err := m.Search(ctx, models.SearchParams{Origin: "ADB", Destination: "ESB"})
	assert.ErrorIs(t, err, ErrMissingParams)

	p := search("ADB", "ESB")
	p.DepartureDate = "02.11.2026"
	_, err = m.Search(ctx, p)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = m.Search(ctx, search("ADB", "XXX"))
	assert.ErrorIs(t, err, ErrUnknownAirport)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = m.Search(canceled, search("ADB", "ESB"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMock_SameAirport(t *testing.T) {
	offers, err := testMock().Search(context.Background(), search("IST", "IST"))
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "PT2H30M", FormatDuration(150))
	assert.Equal(t, "PT3H", FormatDuration(180))
	assert.Equal(t, "PT45M", FormatDuration(45))
	assert.Equal(t, "PT0M", FormatDuration(0))
}
