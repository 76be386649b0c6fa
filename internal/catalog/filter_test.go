package catalog

import (
	"net/url"
	"testing"

	"github.com/andamanescapes/travel-backend/internal/models"
)

func sampleActivities() []models.Activity {
	return []models.Activity{
		{Name: "Scuba Diving at Havelock", Destination: "Havelock Island", Price: 1000, Category: "adventure"},
		{Name: "Mangrove Kayaking", Destination: "Mayabunder", Price: 5000, Category: "nature"},
		{Name: "Radhanagar Beach Walk", Destination: "Havelock Island", Price: 500, Category: "leisure"},
	}
}

func TestFilterActivitiesByMaxPrice(t *testing.T) {
	activities := sampleActivities()

	filtered := FilterActivities(activities, Filter{MaxPrice: 2000})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 activities under 2000, got %d", len(filtered))
	}
	for _, a := range filtered {
		if a.Price > 2000 {
			t.Errorf("activity %q priced %.0f exceeds max price", a.Name, a.Price)
		}
	}
}

func TestFilterPriceRangeIsInclusive(t *testing.T) {
	activities := []models.Activity{
		{Name: "low", Price: 1000},
		{Name: "mid", Price: 2000},
		{Name: "high", Price: 3000},
	}

	filtered := FilterActivities(activities, Filter{MinPrice: 1000, MaxPrice: 2000})
	if len(filtered) != 2 {
		t.Fatalf("expected boundary prices to be included, got %d results", len(filtered))
	}
	if filtered[0].Name != "low" || filtered[1].Name != "mid" {
		t.Errorf("unexpected results: %v, %v", filtered[0].Name, filtered[1].Name)
	}
}

func TestEmptyFilterReturnsFullSet(t *testing.T) {
	activities := sampleActivities()

	filtered := FilterActivities(activities, Filter{})
	if len(filtered) != len(activities) {
		t.Fatalf("empty filter should return all %d activities, got %d", len(activities), len(filtered))
	}
}

func TestFilterByCategory(t *testing.T) {
	filtered := FilterActivities(sampleActivities(), Filter{Category: "Adventure"})
	if len(filtered) != 1 {
		t.Fatalf("expected 1 adventure activity, got %d", len(filtered))
	}
	if filtered[0].Name != "Scuba Diving at Havelock" {
		t.Errorf("unexpected activity: %s", filtered[0].Name)
	}
}

func TestFilterByDestinationSubstring(t *testing.T) {
	filtered := FilterActivities(sampleActivities(), Filter{Destination: "havelock"})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 Havelock activities, got %d", len(filtered))
	}
}

func TestFilterBySearchText(t *testing.T) {
	filtered := FilterActivities(sampleActivities(), Filter{Search: "kayak"})
	if len(filtered) != 1 {
		t.Fatalf("expected 1 match for 'kayak', got %d", len(filtered))
	}
}

func TestFilterHotels(t *testing.T) {
	hotels := []models.Hotel{
		{Name: "Sea Shell Resort", Location: "Havelock Island", Price: 7500},
		{Name: "Marina Lodge", Location: "Port Blair", Price: 2500},
	}

	filtered := FilterHotels(hotels, Filter{Destination: "port blair", MaxPrice: 3000})
	if len(filtered) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(filtered))
	}
	if filtered[0].Name != "Marina Lodge" {
		t.Errorf("unexpected hotel: %s", filtered[0].Name)
	}
}

func TestFilterFromQuery(t *testing.T) {
	q, _ := url.ParseQuery("minPrice=100&maxPrice=2000&category=adventure&destination=Havelock&search=dive")
	f := FilterFromQuery(q)

	if f.MinPrice != 100 || f.MaxPrice != 2000 {
		t.Errorf("unexpected price range: %.0f-%.0f", f.MinPrice, f.MaxPrice)
	}
	if f.Category != "adventure" || f.Destination != "Havelock" || f.Search != "dive" {
		t.Errorf("unexpected filter: %+v", f)
	}
}

func TestFilterFromQueryIgnoresBadNumbers(t *testing.T) {
	q, _ := url.ParseQuery("minPrice=abc&maxPrice=-5")
	f := FilterFromQuery(q)

	if f.MinPrice != 0 || f.MaxPrice != 0 {
		t.Errorf("bad numbers should be ignored, got %+v", f)
	}
}
