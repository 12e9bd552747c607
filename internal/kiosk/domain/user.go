package domain

import "strings"

const (
	// MinNameLen is the shortest display name accepted at registration.
	MinNameLen = 3

	// MaxSlotID is the highest template slot the sensor bank addresses.
	// Slot 0 is reserved, so valid user ids are 1..MaxSlotID.
	MaxSlotID = 255
)

// UnknownName is the display name resolved for attendance events whose
// user record has since been deleted.
const UnknownName = "Desconocido"

// User is an enrolled identity. ID doubles as the template slot in the
// sensor bank; exactly one template exists per enrolled id.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// NormalizeName canonicalizes a display name for uniqueness checks:
// surrounding whitespace is ignored and comparison is case-insensitive.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidSlot reports whether id is inside the sensor bank's addressable range.
func ValidSlot(id int) bool {
	return id >= 1 && id <= MaxSlotID
}

// ValidName reports whether the trimmed name meets the minimum length.
func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= MinNameLen
}
