package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Booking reference prefixes, one per booking variant.
const (
	HotelBookingPrefix    = "AND-H"
	ActivityBookingPrefix = "AND-A"
)

// GenerateBookingReference builds a short, human-readable booking reference
// like AND-H-9F2C41D8 from a random UUID.
func GenerateBookingReference(prefix string) string {
	id := uuid.New()
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s", prefix, short)
}
