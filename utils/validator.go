// utils/validator.go
package utils

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/goccy/go-json"
)

const (
	DateLayout   = "2006-01-02"
	Clock24      = "15:04"
	clock12Parse = "3:04 PM"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clock24Pattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	clock12Pattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5]\d (AM|PM)$`)
)

// GetValidator returns the shared validator with the notblank rule registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("register notblank validator: %v", err))
		}
	})
	return validate
}

// DecodePayload parses a JSON object body into field -> string values.
// null values decode as empty strings; other scalars are stringified. Numbers
// keep their literal text so long digit strings such as phones survive.
func DecodePayload(body []byte) (map[string]string, error) {
	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	data := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			data[key] = ""
		case string:
			data[key] = v
		case json.Number:
			data[key] = v.String()
		default:
			data[key] = fmt.Sprint(v)
		}
	}
	return data, nil
}

// CheckRequired reports every required field that is absent or whitespace-only,
// in the order the fields were given.
func CheckRequired(data map[string]string, required []string) error {
	v := GetValidator()

	var missing []string
	for _, field := range required {
		if err := v.Var(data[field], "required,notblank"); err != nil {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// ParseDate accepts exactly YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if !datePattern.MatchString(s) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseTime accepts 24-hour HH:MM, or 12-hour H:MM AM/PM when the value
// mentions AM or PM (in any case).
func ParseTime(value string) (time.Time, error) {
	s := strings.ToUpper(strings.TrimSpace(value))

	if strings.Contains(s, "AM") || strings.Contains(s, "PM") {
		if !clock12Pattern.MatchString(s) {
			return time.Time{}, ErrInvalidTime
		}
		t, err := time.Parse(clock12Parse, s)
		if err != nil {
			return time.Time{}, ErrInvalidTime
		}
		return t, nil
	}

	if !clock24Pattern.MatchString(s) {
		return time.Time{}, ErrInvalidTime
	}
	t, err := time.Parse(Clock24, s)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return t, nil
}

// NormalizeEmail trims surrounding whitespace and lowercases.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail is a deliberately coarse check: an "@" followed somewhere by a ".".
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at >= 0 && strings.Contains(email[at+1:], ".")
}

// CheckEmail returns ErrInvalidEmail when email fails ValidEmail.
func CheckEmail(email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}
