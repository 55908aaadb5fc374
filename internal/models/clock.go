package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a time of day in seconds since midnight. Lateness and
// punch ordering are computed on this value directly, so a parsed time
// is never re-anchored onto a calendar date.
type ClockTime int

// ParseClockTime accepts "HH:MM:SS" or "HH:MM", with a one or two digit
// hour. Out-of-range fields fail the parse.
func ParseClockTime(s string) (ClockTime, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		nums[i] = n
	}
	if nums[0] > 23 || nums[1] > 59 || nums[2] > 59 {
		return 0, false
	}
	return ClockTime(nums[0]*3600 + nums[1]*60 + nums[2]), true
}

// MinutesAfter returns the whole minutes elapsed from other to t,
// truncated toward zero. Negative when t is earlier.
func (t ClockTime) MinutesAfter(other ClockTime) int {
	return int(t-other) / 60
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)%3600/60, int(t)%60)
}
