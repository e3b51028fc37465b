package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := map[string]bool{
		"+254 758 283 613": true,
		"(254) 758-283613": true,
		"0758283613":       false,
		"+1":               false,
		"phone":            false,
	}
	for in, want := range tests {
		if got := ValidatePhone(in); got != want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestE164(t *testing.T) {
	if got := E164("254 758-283-613"); got != "+254758283613" {
		t.Errorf("E164() = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Mind & Body: A Guide":  "mind-body-a-guide",
		"  Coping with Stress ": "coping-with-stress",
		"2025 Workshop!!":       "2025-workshop",
		"***":                   "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
