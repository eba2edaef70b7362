package geozone

import (
	"math"
	"testing"

	"spotQuest/domain"
)

func TestZoneForCatalogPoints(t *testing.T) {
	idx := Default()

	tests := []struct {
		name     string
		lat, lng float64
		want     string
		wantOK   bool
	}{
		{name: "kensington center", lat: 43.6548, lng: -79.4007, want: "Kensington Market", wantOK: true},
		{name: "beaches center", lat: 43.6710, lng: -79.2967, want: "The Beaches", wantOK: true},
		{name: "chinatown east edge", lat: 43.6525, lng: -79.3950, want: "Chinatown", wantOK: true},
		{name: "queen west south", lat: 43.6440, lng: -79.4030, want: "Queen West", wantOK: true},
		{name: "annex and yorkville overlap", lat: 43.6705, lng: -79.3990, want: "The Annex", wantOK: true},
		{name: "null island", lat: 0, lng: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.ZoneFor(tt.lat, tt.lng)
			if ok != tt.wantOK {
				t.Fatalf("ok: want=%v got=%v", tt.wantOK, ok)
			}
			if ok && got.Name != tt.want {
				t.Fatalf("zone: want=%q got=%q", tt.want, got.Name)
			}
		})
	}
}

func TestZoneForFirstDeclaredWins(t *testing.T) {
	a := domain.Neighborhood{Name: "A", Area: "x", Center: domain.LatLng{Lat: 10, Lng: 10}, RadiusMeters: 5000}
	b := domain.Neighborhood{Name: "B", Area: "x", Center: domain.LatLng{Lat: 10.01, Lng: 10}, RadiusMeters: 5000}

	// The query point sits on B's center, so nearest-center would pick B.
	ab, err := New([]domain.Neighborhood{a, b})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got, _ := ab.ZoneFor(10.01, 10); got.Name != "A" {
		t.Fatalf("want first declared A, got=%q", got.Name)
	}

	ba, err := New([]domain.Neighborhood{b, a})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got, _ := ba.ZoneFor(10.01, 10); got.Name != "B" {
		t.Fatalf("want first declared B, got=%q", got.Name)
	}
}

func TestZoneForBoundaryIsInclusive(t *testing.T) {
	center := domain.LatLng{Lat: 0, Lng: 0}
	// one thousandth of a degree of latitude at the equator
	edge := HaversineMeters(0, 0, 0.001, 0)

	idx, err := New([]domain.Neighborhood{{Name: "Edge", Area: "x", Center: center, RadiusMeters: edge}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, ok := idx.ZoneFor(0.001, 0); !ok {
		t.Fatalf("point at exactly the radius should be inside")
	}
	if _, ok := idx.ZoneFor(0.0011, 0); ok {
		t.Fatalf("point beyond the radius should be outside")
	}
}

func TestNewRejectsBadCatalogs(t *testing.T) {
	z := domain.Neighborhood{Name: "A", Center: domain.LatLng{}, RadiusMeters: 10}

	if _, err := New([]domain.Neighborhood{z, z}); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if _, err := New([]domain.Neighborhood{{Name: "", RadiusMeters: 10}}); err == nil {
		t.Fatalf("expected missing name error")
	}
	if _, err := New([]domain.Neighborhood{{Name: "Z", RadiusMeters: 0}}); err == nil {
		t.Fatalf("expected radius error")
	}
}

func TestZonesReturnsCopy(t *testing.T) {
	idx := Default()
	zones := idx.Zones()
	if len(zones) != idx.Len() {
		t.Fatalf("len: want=%d got=%d", idx.Len(), len(zones))
	}

	zones[0].Name = "mutated"
	if idx.Zones()[0].Name == "mutated" {
		t.Fatalf("Zones must not expose the backing slice")
	}
}

func TestHaversineMeters(t *testing.T) {
	// One degree of latitude is ~111.195 km on a 6371 km sphere.
	got := HaversineMeters(0, 0, 1, 0)
	if math.Abs(got-111195) > 1 {
		t.Fatalf("one degree: want ~111195m got=%f", got)
	}

	got = HaversineMeters(43.6548, -79.4007, 43.6532, -79.3976)
	if math.Abs(got-306) > 2 {
		t.Fatalf("kensington->chinatown: want ~306m got=%f", got)
	}
}
