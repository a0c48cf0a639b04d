package network

import (
	"testing"

	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleAirports is the IST/ESB/ADB scenario: ESB and ADB only reach IST.
func triangleAirports() []models.Airport {
	return []models.Airport{
		{IATA: "IST", City: "İstanbul", Name: "İstanbul Havalimanı", Lat: 41.26, Lon: 28.74, Flights: "ESB;ADB"},
		{IATA: "ESB", City: "Ankara", Name: "Esenboğa", Lat: 40.13, Lon: 32.99, Flights: "IST"},
		{IATA: "ADB", City: "İzmir", Name: "Adnan Menderes", Lat: 38.29, Lon: 27.16, Flights: "IST"},
	}
}

func TestBuild_Triangle(t *testing.T) {
	n := Build(triangleAirports())

	assert.Equal(t, 3, n.Graph.Len())
	assert.Equal(t, 2, n.Graph.EdgeCount())
	assert.Len(t, n.Links, 4, "links are not deduplicated")
	assert.Equal(t, map[Code]int{"IST": 2, "ESB": 1, "ADB": 1}, n.OutDegree)
	assert.Empty(t, n.Dropped)

	c := n.Coordinates["ESB"]
	assert.Equal(t, Coordinate{Lat: 40.13, Lon: 32.99, City: "Ankara", Name: "Esenboğa"}, c)

	first := n.Links[0]
	assert.Equal(t, Code("IST"), first.Source)
	assert.Equal(t, Code("ESB"), first.Target)
	assert.Equal(t, "İstanbul", first.SourceCity)
	assert.Equal(t, "Ankara", first.TargetCity)
	assert.InDelta(t, spatial.HaversineKm(41.26, 28.74, 40.13, 32.99), first.Distance, 1e-12)
}

func TestBuild_GraphIsSymmetric(t *testing.T) {
	airports := append(triangleAirports(),
		models.Airport{IATA: "AYT", Lat: 36.90, Lon: 30.80, Flights: "IST;ESB"},
		models.Airport{IATA: "TZX", Lat: 40.99, Lon: 39.79, Flights: "IST"},
	)
	n := Build(airports)

	for _, a := range n.Graph.Nodes() {
		for _, b := range n.Graph.Neighbors(a) {
			wab, ok := n.Graph.Weight(a, b)
			require.True(t, ok)
			wba, ok := n.Graph.Weight(b, a)
			require.True(t, ok, "%s→%s has no reverse edge", a, b)
			assert.Equal(t, wab, wba)
		}
	}
}

func TestBuild_DropsUnknownCodesAndKeepsIsolatedAirports(t *testing.T) {
	n := Build([]models.Airport{
		{IATA: "IST", Lat: 41.26, Lon: 28.74, Flights: "ESB;XXX;;"},
		{IATA: "ESB", Lat: 40.13, Lon: 32.99},
		{IATA: "VAN", Lat: 38.47, Lon: 43.33, Flights: ""},
	})

	assert.Equal(t, 1, n.OutDegree["IST"])
	assert.Equal(t, 0, n.OutDegree["ESB"])
	assert.Equal(t, 0, n.OutDegree["VAN"])
	assert.True(t, n.Graph.HasNode("VAN"))
	assert.Equal(t, 0, n.Graph.Degree("VAN"))
	assert.Equal(t, []DroppedCode{{Source: "IST", Target: "XXX"}}, n.Dropped)

	// ESB declares nothing but is still reachable through IST's declaration.
	_, ok := n.Graph.Weight("ESB", "IST")
	assert.True(t, ok)
}

func TestBuild_TrimsWhitespaceAroundCodes(t *testing.T) {
	n := Build([]models.Airport{
		{IATA: "IST", Lat: 41.26, Lon: 28.74, Flights: "ESB ; ADB\t; "},
		{IATA: "ESB", Lat: 40.13, Lon: 32.99},
		{IATA: "ADB", Lat: 38.29, Lon: 27.16},
	})

	assert.Equal(t, 2, n.OutDegree["IST"])
	assert.Empty(t, n.Dropped)
	assert.ElementsMatch(t, []Code{"ADB", "ESB"}, n.Graph.Neighbors("IST"))
}

func TestFlightNetwork_Airport(t *testing.T) {
	n := Build(triangleAirports())

	a, ok := n.Airport("ADB")
	require.True(t, ok)
	assert.Equal(t, "İzmir", a.City)

	_, ok = n.Airport("XXX")
	assert.False(t, ok)
}

func TestEndToEnd_ESBToADBTransfersAtIST(t *testing.T) {
	n := Build(triangleAirports())

	path := n.FindRoute("ESB", "ADB")
	require.Equal(t, []Code{"ESB", "IST", "ADB"}, path)

	total, err := TotalDistance(path, n.Graph)
	require.NoError(t, err)
	want := spatial.HaversineKm(40.13, 32.99, 41.26, 28.74) + spatial.HaversineKm(41.26, 28.74, 38.29, 27.16)
	assert.InDelta(t, want, total, 1e-9)
}

func TestStats(t *testing.T) {
	airports := append(triangleAirports(), models.Airport{IATA: "VAN", Lat: 38.47, Lon: 43.33})
	n := Build(airports)

	s := n.Stats()
	assert.Equal(t, 4, s.TotalAirports)
	assert.Equal(t, 4, s.TotalConnections)
	assert.Equal(t, 2, s.UniqueConnections)
	assert.Equal(t, 2.0, s.AverageConnections)
	require.NotNil(t, s.MostConnected)
	assert.Equal(t, "IST", s.MostConnected.IATA)
	assert.Equal(t, 2, s.MostConnected.OutDegree)
	require.NotNil(t, s.LeastConnected)
	assert.Equal(t, "VAN", s.LeastConnected.IATA)
	assert.Equal(t, 0, s.LeastConnected.OutDegree)
	assert.InDelta(t, s.LinkDistance.Sum, s.TotalDistanceKm, 1e-9)
	assert.Equal(t, 4, s.LinkDistance.Count)
	assert.Equal(t, Bounds{MinLat: 38.29, MinLon: 27.16, MaxLat: 41.26, MaxLon: 43.33}, s.Bounds)
}

func TestStats_TiesPickFirstInDatasetOrder(t *testing.T) {
	n := Build([]models.Airport{
		{IATA: "AAA", Flights: "BBB"},
		{IATA: "BBB", Flights: "AAA"},
	})

	s := n.Stats()
	assert.Equal(t, "AAA", s.MostConnected.IATA)
	assert.Equal(t, "AAA", s.LeastConnected.IATA)
}

func TestStats_Empty(t *testing.T) {
	s := Build(nil).Stats()
	assert.Equal(t, 0, s.TotalAirports)
	assert.Nil(t, s.MostConnected)
	assert.Equal(t, 0.0, s.AverageConnections)
}
