package httpx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRate — строка лимита не разобрана.
var ErrInvalidRate = errors.New("invalid rate")

// Rate — потолок запросов: Limit запросов за окно Window.
type Rate struct {
	Limit  int
	Window time.Duration
}

var rateUnits = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// ParseRate — разбирает "10/minute", "10 per minute", "100/hours".
func ParseRate(s string) (Rate, error) {
	raw := strings.ToLower(strings.TrimSpace(s))

	var count, unit string
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		count, unit = raw[:i], raw[i+1:]
	} else if parts := strings.Fields(raw); len(parts) == 3 && parts[1] == "per" {
		count, unit = parts[0], parts[2]
	} else {
		return Rate{}, fmt.Errorf("%w: %q (want N/unit or N per unit)", ErrInvalidRate, s)
	}

	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || n <= 0 {
		return Rate{}, fmt.Errorf("%w: %q: count must be a positive integer", ErrInvalidRate, s)
	}

	unit = strings.TrimSuffix(strings.TrimSpace(unit), "s")
	window, ok := rateUnits[unit]
	if !ok {
		return Rate{}, fmt.Errorf("%w: %q: unknown unit %q", ErrInvalidRate, s, unit)
	}
	return Rate{Limit: n, Window: window}, nil
}

// MustParseRate — ParseRate для констант; паникует на ошибке.
func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Decode — реализация envconfig.Decoder.
func (r *Rate) Decode(value string) error {
	parsed, err := ParseRate(value)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// String — "10/minute".
func (r Rate) String() string {
	for name, d := range rateUnits {
		if r.Window == d {
			return fmt.Sprintf("%d/%s", r.Limit, name)
		}
	}
	return fmt.Sprintf("%d/%s", r.Limit, r.Window)
}

// IsZero — лимит не задан.
func (r Rate) IsZero() bool { return r.Limit <= 0 || r.Window <= 0 }
