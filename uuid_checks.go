package validate

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDString reports whether s is a standard 36-character UUID. Shape is
// checked before parsing to reject malformed input cheaply.
func UUIDString(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if !uuidShape(s) {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// NonNilUUID reports whether id is set to a value other than the nil UUID.
func NonNilUUID(id uuid.UUID) bool {
	return id != uuid.Nil
}

// NonNilUUIDString reports whether s parses as a UUID other than the nil
// UUID.
func NonNilUUIDString(s string) bool {
	if !uuidShape(s) {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id != uuid.Nil
}

// UUIDVersion returns a check that passes when the UUID has the given
// version.
func UUIDVersion(version int) func(uuid.UUID) bool {
	return func(id uuid.UUID) bool {
		return id.Version() == uuid.Version(version)
	}
}

// UUIDVersionString returns a check that passes when the string parses as a
// UUID of the given version.
func UUIDVersionString(version int) func(string) bool {
	return func(s string) bool {
		if !uuidShape(s) {
			return false
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return false
		}
		return id.Version() == uuid.Version(version)
	}
}

// uuidShape checks length and hyphen positions, the fast rejection path
// before uuid.Parse.
func uuidShape(s string) bool {
	if len(s) != 36 {
		return false
	}
	return s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}
