package http

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxCursorSeconds keeps a cursor representable as Unix microseconds.
const maxCursorSeconds = math.MaxInt64/int64(time.Second/time.Microsecond) - 1

// formatCursor renders t as "<seconds>.<microseconds>", the precision
// timestamps are stored with, so a device polling with the returned value
// never sees the same change twice.
func formatCursor(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}

// parseCursor accepts integer or decimal epoch seconds. Digits beyond
// microseconds are dropped. An empty value is the zero cursor. Seconds
// that do not fit in Unix microseconds are rejected.
func parseCursor(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && frac == "") {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCursor, s)
	}

	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || sec < 0 || sec > maxCursorSeconds {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCursor, s)
	}

	var usec int64
	if hasFrac {
		for _, c := range frac {
			if c < '0' || c > '9' {
				return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCursor, s)
			}
		}
		if len(frac) > 6 {
			frac = frac[:6]
		}
		usec, _ = strconv.ParseInt(frac+strings.Repeat("0", 6-len(frac)), 10, 64)
	}

	return time.Unix(sec, usec*int64(time.Microsecond)).UTC(), nil
}
