// Package catalog implements the search, filter and pagination pipeline
// applied to the hotel and activity collections.
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/andamanescapes/travel-backend/internal/models"
)

// Filter holds the optional catalog filters. Zero values mean "no
// constraint"; MaxPrice of 0 is unbounded.
type Filter struct {
	MinPrice    float64
	MaxPrice    float64
	Category    string
	Destination string
	Search      string
}

// FilterFromQuery parses the supported filter parameters from a request
// query. Unparseable numbers are treated as absent.
func FilterFromQuery(q url.Values) Filter {
	f := Filter{
		Category:    strings.TrimSpace(q.Get("category")),
		Destination: strings.TrimSpace(q.Get("destination")),
		Search:      strings.TrimSpace(q.Get("search")),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil && v > 0 {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil && v > 0 {
		f.MaxPrice = v
	}
	return f
}

// matchPrice checks the inclusive [MinPrice, MaxPrice] range.
func (f Filter) matchPrice(price float64) bool {
	if f.MinPrice > 0 && price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && price > f.MaxPrice {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// MatchHotel reports whether a hotel passes every set filter.
func (f Filter) MatchHotel(h models.Hotel) bool {
	if !f.matchPrice(h.Price) {
		return false
	}
	if f.Destination != "" && !containsFold(h.Location, f.Destination) {
		return false
	}
	if f.Search != "" && !containsFold(h.Name, f.Search) && !containsFold(h.Description, f.Search) {
		return false
	}
	return true
}

// MatchActivity reports whether an activity passes every set filter.
func (f Filter) MatchActivity(a models.Activity) bool {
	if !f.matchPrice(a.Price) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(a.Category, f.Category) {
		return false
	}
	if f.Destination != "" && !containsFold(a.Destination, f.Destination) {
		return false
	}
	if f.Search != "" && !containsFold(a.Name, f.Search) && !containsFold(a.Description, f.Search) {
		return false
	}
	return true
}

// FilterHotels returns the subset of hotels matching the filter, in the
// original order.
func FilterHotels(hotels []models.Hotel, f Filter) []models.Hotel {
	filtered := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if f.MatchHotel(h) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// FilterActivities returns the subset of activities matching the filter,
// in the original order.
func FilterActivities(activities []models.Activity, f Filter) []models.Activity {
	filtered := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if f.MatchActivity(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
