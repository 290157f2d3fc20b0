package testutil

import "time"

// NowAt pins a component's clock to a fixed instant.
func NowAt(instant time.Time) func() time.Time {
	return func() time.Time { return instant }
}

// MustParseRFC3339 parses an RFC3339 timestamp, panicking on bad test input.
func MustParseRFC3339(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("testutil: bad RFC3339 literal " + value + ": " + err.Error())
	}
	return parsed
}
