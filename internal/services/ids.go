package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID builds the short prefixed ids used across the schema
// (job-1a2b3c4d, app-…, store-…, profile-…, emp-…).
func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "-" + hex[:8]
}

// newLongID is the 12-hex variant used for application ids.
func newLongID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "-" + hex[:12]
}

// nowISO returns the current UTC time as the ISO-8601 string the legacy
// schema stores for job and application timestamps.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// marshalStrings serializes a string list for a JSON-string column; nil
// becomes "[]".
func marshalStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
