package utils

import (
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// GetEnvVariable lấy environment variable với fallback default value
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

var (
	forbiddenFilenameChars = regexp.MustCompile(`[\x00-\x1f/\\:*?"<>|]+`)
	collapseSpaces         = regexp.MustCompile(`\s+`)
)

// ExportBaseName derives a download filename stem from the card title.
// The title is kept as typed ("Dune" stays "Dune"); only characters that
// break filesystems or Content-Disposition headers are stripped.
// Empty/unusable titles fall back to the given default ("review").
func ExportBaseName(title, fallback string) string {
	name := forbiddenFilenameChars.ReplaceAllString(title, "")
	name = collapseSpaces.ReplaceAllString(name, " ")
	name = strings.Trim(name, " .")
	if name == "" {
		return fallback
	}
	return name
}

// Helper: Generate slug for storage object keys
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)

	// Replace spaces with hyphens
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Keep only: a-z, 0-9, hyphens
	reg := regexp.MustCompile(`[^a-z0-9-]+`)
	cleaned := reg.ReplaceAllString(hyphenated, "")

	// Remove multiple consecutive hyphens
	reg = regexp.MustCompile(`-+`)
	normalized := reg.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}
