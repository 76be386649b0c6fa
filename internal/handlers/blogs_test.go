package handlers

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestLookupErrorDistinguishesMissingFromFailure(t *testing.T) {
	status, msg := lookupError(gorm.ErrRecordNotFound, "Blog not found", "Failed to fetch blog")
	if status != 404 || msg != "Blog not found" {
		t.Errorf("missing record: got %d %q", status, msg)
	}

	status, msg = lookupError(errors.New("connection refused"), "Blog not found", "Failed to fetch blog")
	if status != 500 || msg != "Failed to fetch blog" {
		t.Errorf("database failure: got %d %q", status, msg)
	}

	// Wrapped not-found errors still count as missing records.
	wrapped := fmt.Errorf("lookup blog: %w", gorm.ErrRecordNotFound)
	status, _ = lookupError(wrapped, "Blog not found", "Failed to fetch blog")
	if status != 404 {
		t.Errorf("wrapped not-found must map to 404, got %d", status)
	}
}
