package parse

import (
	"regexp"
	"strconv"
)

var (
	minutesRe     = regexp.MustCompile(`(?i)(\d+)\s*min`)
	hoursRe       = regexp.MustCompile(`(?i)(\d+)\s*hour`)
	daysRe        = regexp.MustCompile(`(?i)(\d+)\s*day`)
	isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)
)

// DurationToMinutes converts free-text durations ("15 minutes", "1 hour",
// "2 days") and ISO-8601 durations ("PT1H30M") to whole minutes. Only the
// first matching unit pattern applies; there is no combined
// "1 hour 30 minutes" support. Unrecognized input yields nil, never an error.
func DurationToMinutes(raw string) *int {
	if raw == "" {
		return nil
	}

	if m := minutesRe.FindStringSubmatch(raw); m != nil {
		return atoiPtr(m[1], 1)
	}
	if m := hoursRe.FindStringSubmatch(raw); m != nil {
		return atoiPtr(m[1], 60)
	}
	if m := daysRe.FindStringSubmatch(raw); m != nil {
		return atoiPtr(m[1], 1440)
	}

	if m := isoDurationRe.FindStringSubmatch(raw); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		total := hours*60 + minutes
		return &total
	}

	return nil
}

func atoiPtr(s string, factor int) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	total := n * factor
	return &total
}
