package jwt

import (
	"fmt"
	"strings"
	"time"
)

const (
	hoursInDay = 24
)

// ParseDuration extends time.ParseDuration with a day suffix, e.g. "7d".
func ParseDuration(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		d, err := time.ParseDuration(days + "h")
		if err != nil {
			return 0, fmt.Errorf("jwt: invalid duration %q", s)
		}

		return d * hoursInDay, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("jwt: invalid duration %q", s)
	}

	return d, nil
}
