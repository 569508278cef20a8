package youtube

import (
	"fmt"
	"strings"
)

// parseISODuration converts the ISO-8601 durations reported by the API
// ("PT1H2M3S", "P1DT2H", "PT45S") to seconds. Year and month designators
// are rejected; the API never reports them for videos.
func parseISODuration(s string) (int64, error) {
	if !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var (
		total  int64
		num    int64
		digits bool
		inTime bool
	)
	for _, ch := range s[1:] {
		switch {
		case ch >= '0' && ch <= '9':
			num = num*10 + int64(ch-'0')
			digits = true
		case ch == 'T':
			if digits {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			inTime = true
		case ch == 'W' && !inTime:
			total += num * 7 * 24 * 3600
			num, digits = 0, false
		case ch == 'D' && !inTime:
			total += num * 24 * 3600
			num, digits = 0, false
		case ch == 'H' && inTime:
			total += num * 3600
			num, digits = 0, false
		case ch == 'M' && inTime:
			total += num * 60
			num, digits = 0, false
		case ch == 'S' && inTime:
			total += num
			num, digits = 0, false
		default:
			return 0, fmt.Errorf("invalid duration %q: unsupported designator %q", s, ch)
		}
	}
	if digits {
		return 0, fmt.Errorf("invalid duration %q: trailing number", s)
	}
	return total, nil
}
