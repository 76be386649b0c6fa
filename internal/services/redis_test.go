package services

import "testing"

func TestCatalogCacheKey(t *testing.T) {
	if key := CatalogCacheKey("hotels", ""); key != "catalog:hotels" {
		t.Errorf("unexpected key: %s", key)
	}
	if key := CatalogCacheKey("activities", "maxPrice=2000&page=2"); key != "catalog:activities?maxPrice=2000&page=2" {
		t.Errorf("unexpected key: %s", key)
	}
}
