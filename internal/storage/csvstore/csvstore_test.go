package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safarnama/internal/domain"
	"safarnama/internal/storage/csvstore"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCities_LoadAndFind(t *testing.T) {
	path := writeFixture(t, "cities.csv",
		"city,country,latitude,longitude,province\n"+
			"Islamabad,Pakistan,33.7294,73.0931,Islamabad Capital Territory\n"+
			"Lahore,Pakistan,31.5204,74.3587,Punjab\n")

	c, err := csvstore.OpenCities(path)
	require.NoError(t, err)

	rec, ok := c.Find("  LAHORE ")
	require.True(t, ok)
	assert.Equal(t, "Lahore", rec.Name)
	assert.Equal(t, 31.5204, rec.Lat)
	assert.Equal(t, "Punjab", rec.Province)

	_, ok = c.Find("Gilgit")
	assert.False(t, ok)

	assert.Len(t, c.All(), 2)
}

func TestCities_AppendAndFlushRewritesFile(t *testing.T) {
	path := writeFixture(t, "cities.csv",
		"city,country,latitude,longitude,province\n"+
			"Islamabad,Pakistan,33.7294,73.0931,Islamabad Capital Territory\n")

	c, err := csvstore.OpenCities(path)
	require.NoError(t, err)

	c.Append(domain.CityRecord{
		Name: "Gilgit", Country: "Pakistan",
		Lat: 35.9221, Lon: 74.3087, Province: "Unknown",
	})
	require.NoError(t, c.Flush())

	// Re-open from disk: the appended row must survive.
	c2, err := csvstore.OpenCities(path)
	require.NoError(t, err)
	rec, ok := c2.Find("gilgit")
	require.True(t, ok)
	assert.Equal(t, 35.9221, rec.Lat)
	assert.Equal(t, "Unknown", rec.Province)
	assert.Len(t, c2.All(), 2)
}

func TestCities_MissingColumn(t *testing.T) {
	path := writeFixture(t, "cities.csv",
		"city,country\nIslamabad,Pakistan\n")

	_, err := csvstore.OpenCities(path)
	assert.Error(t, err)
}

func TestHotels_SortedByRatingThenPrice(t *testing.T) {
	path := writeFixture(t, "hotels.csv",
		"city,hotel_id,name,price_per_night,rating,category,location,description,amenities\n"+
			"Islamabad,ISL003,Budget Inn,3500,3.7,Budget,Somewhere,Cheap rooms,WiFi\n"+
			"Islamabad,ISL001,Serena Hotel,15000,4.8,Luxury,Diplomatic Enclave,Spa and dining,WiFi;Pool;Spa\n"+
			"Islamabad,ISL002,Mid Hotel,7500,4.8,Business,Blue Area,Business rooms,WiFi;Gym\n")

	h, err := csvstore.OpenHotels(path)
	require.NoError(t, err)

	hs := h.ByCity("islamabad")
	require.Len(t, hs, 3)
	// Equal ratings tie-break on price.
	assert.Equal(t, "ISL002", hs[0].ID)
	assert.Equal(t, "ISL001", hs[1].ID)
	assert.Equal(t, "ISL003", hs[2].ID)

	rec, ok := h.ByID("ISL001")
	require.True(t, ok)
	assert.Equal(t, []string{"WiFi", "Pool", "Spa"}, rec.Amenities)
	assert.Equal(t, 15000.0, rec.PricePerNight)

	_, ok = h.ByID("NOPE999")
	assert.False(t, ok)
	assert.Empty(t, h.ByCity("Nowhere"))
}

func TestTravelCosts_BidirectionalLookup(t *testing.T) {
	path := writeFixture(t, "travel_costs.csv",
		"origin,destination,car,bus,train,flight\n"+
			"Islamabad,Lahore,4090,2727,2045,8522\n")

	tc, err := csvstore.OpenTravelCosts(path)
	require.NoError(t, err)

	e, ok := tc.Fare("islamabad", "LAHORE")
	require.True(t, ok)
	assert.Equal(t, 2727.0, e.Bus)

	e, ok = tc.Fare("Lahore", "Islamabad")
	require.True(t, ok)
	assert.Equal(t, 8522.0, e.Flight)

	_, ok = tc.Fare("Islamabad", "Karachi")
	assert.False(t, ok)
}

func TestPlaces_Filters(t *testing.T) {
	attractions := writeFixture(t, "attractions.csv",
		"city,name,category,description,rating,entry_fee,location\n"+
			"Lahore,Badshahi Mosque,Religious,Mughal-era mosque,4.9,0,Walled City\n"+
			"Lahore,Lahore Fort,Historical,Historic fort complex,4.7,40,Walled City\n")
	restaurants := writeFixture(t, "restaurants.csv",
		"city,name,cuisine,specialties,rating,price_range\n"+
			"Lahore,Butt Karahi,Pakistani,Karahi;BBQ,4.7,$$\n"+
			"Lahore,Cafe Aylanto,International,Italian;Grilled,4.6,$$$\n")

	p, err := csvstore.OpenPlaces(attractions, restaurants)
	require.NoError(t, err)

	assert.Len(t, p.Attractions("lahore", ""), 2)
	hist := p.Attractions("Lahore", "historical")
	require.Len(t, hist, 1)
	assert.Equal(t, "Lahore Fort", hist[0].Name)
	assert.Equal(t, 40.0, hist[0].EntryFee)

	pak := p.Restaurants("Lahore", "Pakistani")
	require.Len(t, pak, 1)
	assert.Equal(t, []string{"Karahi", "BBQ"}, pak[0].Specialties)

	assert.Empty(t, p.Attractions("Karachi", ""))
}

func TestWriteTravelCosts_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travel_costs.csv")
	entries := []domain.TravelCostEntry{
		{Origin: "Islamabad", Destination: "Lahore", Car: 4090, Bus: 2727, Train: 2045, Flight: 8522},
		{Origin: "Islamabad", Destination: "Karachi", Car: 14000, Bus: 9300, Train: 7000, Flight: 29000},
	}
	require.NoError(t, csvstore.WriteTravelCosts(path, entries))

	tc, err := csvstore.OpenTravelCosts(path)
	require.NoError(t, err)
	e, ok := tc.Fare("Karachi", "Islamabad")
	require.True(t, ok)
	assert.Equal(t, 9300.0, e.Bus)
}

func TestWriteHotels_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.csv")
	hotels := []domain.HotelRecord{{
		ID: "ISL001", City: "Islamabad", Name: "Serena Hotel",
		PricePerNight: 15000, Rating: 4.8, Category: "Luxury",
		Location: "Diplomatic Enclave", Description: "Spa and dining",
		Amenities: []string{"WiFi", "Pool"},
	}}
	require.NoError(t, csvstore.WriteHotels(path, hotels))

	h, err := csvstore.OpenHotels(path)
	require.NoError(t, err)
	rec, ok := h.ByID("ISL001")
	require.True(t, ok)
	assert.Equal(t, "Serena Hotel", rec.Name)
	assert.Equal(t, []string{"WiFi", "Pool"}, rec.Amenities)
}
