package geozone

import "spotQuest/domain"

// toronto is the launch catalog. Order matters: Kensington Market is listed
// before Chinatown, and The Annex before Yorkville, so the shared edges
// resolve to the first of each pair.
var toronto = []domain.Neighborhood{
	{Name: "Kensington Market", Area: "Downtown West", Center: domain.LatLng{Lat: 43.6548, Lng: -79.4007}, RadiusMeters: 400},
	{Name: "Chinatown", Area: "Downtown West", Center: domain.LatLng{Lat: 43.6532, Lng: -79.3976}, RadiusMeters: 400},
	{Name: "Queen West", Area: "Downtown West", Center: domain.LatLng{Lat: 43.6477, Lng: -79.4030}, RadiusMeters: 600},
	{Name: "Distillery District", Area: "Downtown East", Center: domain.LatLng{Lat: 43.6503, Lng: -79.3596}, RadiusMeters: 400},
	{Name: "St. Lawrence Market", Area: "Downtown East", Center: domain.LatLng{Lat: 43.6487, Lng: -79.3716}, RadiusMeters: 400},
	{Name: "The Beaches", Area: "East End", Center: domain.LatLng{Lat: 43.6710, Lng: -79.2967}, RadiusMeters: 1200},
	{Name: "Leslieville", Area: "East End", Center: domain.LatLng{Lat: 43.6625, Lng: -79.3330}, RadiusMeters: 800},
	{Name: "The Annex", Area: "Midtown", Center: domain.LatLng{Lat: 43.6700, Lng: -79.4070}, RadiusMeters: 800},
	{Name: "Yorkville", Area: "Midtown", Center: domain.LatLng{Lat: 43.6710, Lng: -79.3930}, RadiusMeters: 500},
	{Name: "Little Italy", Area: "West End", Center: domain.LatLng{Lat: 43.6551, Lng: -79.4180}, RadiusMeters: 500},
	{Name: "Liberty Village", Area: "West End", Center: domain.LatLng{Lat: 43.6385, Lng: -79.4200}, RadiusMeters: 600},
	{Name: "Roncesvalles", Area: "West End", Center: domain.LatLng{Lat: 43.6490, Lng: -79.4500}, RadiusMeters: 700},
}

// Default returns the index over the built-in catalog.
func Default() *Index {
	idx, err := New(toronto)
	if err != nil {
		panic(err)
	}
	return idx
}
