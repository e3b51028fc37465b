// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// Allows + prefix followed by up to 15 digits
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// CleanPhone strips the separators people type into phone numbers.
func CleanPhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(CleanPhone(phone))
}

// E164 returns the cleaned number with a leading +, as Twilio expects.
func E164(phone string) string {
	cleaned := CleanPhone(phone)
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}
	return cleaned
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL path segment: "Mind & Body" becomes "mind-body".
func Slugify(title string) string {
	return strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(title), "-"), "-")
}
