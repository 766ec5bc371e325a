package slackexport

// In this file: slack timestamp parsing functions.

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrNotATimestamp is returned when a message carries a malformed ts value.
var ErrNotATimestamp = errors.New("not a slack timestamp")

// parseSlackTS parses a slack timestamp (i.e. "1577694990.000400",
// fractional seconds since the epoch) and returns the instant in UTC.
func parseSlackTS(ts string) (time.Time, error) {
	sSec, sFrac, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(sSec, 10, 64)
	if err != nil {
		return time.Time{}, ErrNotATimestamp
	}
	var nsec int64
	if sFrac != "" {
		if len(sFrac) > 9 {
			sFrac = sFrac[:9]
		}
		nsec, err = strconv.ParseInt(sFrac, 10, 64)
		if err != nil {
			return time.Time{}, ErrNotATimestamp
		}
		for i := len(sFrac); i < 9; i++ {
			nsec *= 10
		}
	}
	return time.Unix(sec, nsec).UTC(), nil
}

// formatSlackTS renders the instant back in the slack timestamp format with
// microsecond precision.
func formatSlackTS(ts time.Time) string {
	return strconv.FormatInt(ts.Unix(), 10) + "." + padMicro(ts.Nanosecond()/1000)
}

func padMicro(usec int) string {
	s := strconv.Itoa(usec)
	return strings.Repeat("0", 6-len(s)) + s
}
