package main

import "math"

// Weekly loss-rate band in kg/week. 0.8 is the safe maximum, 0.2 the minimum
// for meaningful progress; both also bound the admissible timeline range.
const (
	maxWeeklyLossKG = 0.8
	minWeeklyLossKG = 0.2
)

// Timeline bounds in weeks.
const (
	minTimelineWeeks = 1
	maxTimelineWeeks = 52
)

// safeTimelineRange derives the admissible range of timeline durations from
// the current and goal weight. When no loss is needed (current <= goal) the
// range is unconstrained. Otherwise the bounds come from the loss-rate band
// and are clamped into [1, 52]; min <= max holds by construction.
func safeTimelineRange(currentKG, goalKG float64) (minWeeks, maxWeeks int) {
	if currentKG <= goalKG {
		return minTimelineWeeks, maxTimelineWeeks
	}
	weightToLose := currentKG - goalKG
	minWeeks = int(math.Ceil(weightToLose / maxWeeklyLossKG))
	maxWeeks = int(math.Floor(weightToLose / minWeeklyLossKG))
	if minWeeks < minTimelineWeeks {
		minWeeks = minTimelineWeeks
	}
	if minWeeks > maxTimelineWeeks {
		minWeeks = maxTimelineWeeks
	}
	if maxWeeks < minWeeks {
		maxWeeks = minWeeks
	}
	if maxWeeks > maxTimelineWeeks {
		maxWeeks = maxTimelineWeeks
	}
	return minWeeks, maxWeeks
}

// clampTimeline pulls a requested timeline into [minWeeks, maxWeeks].
func clampTimeline(weeks, minWeeks, maxWeeks int) int {
	if weeks < minWeeks {
		return minWeeks
	}
	if weeks > maxWeeks {
		return maxWeeks
	}
	return weeks
}

// weeklyLossRate returns the kg/week implied by losing (current - goal) over
// the given timeline, or 0 when no loss is needed.
func weeklyLossRate(currentKG, goalKG float64, weeks int) float64 {
	if currentKG <= goalKG || weeks <= 0 {
		return 0
	}
	return (currentKG - goalKG) / float64(weeks)
}

// isSafeLossRate reports whether a weekly loss rate sits inside the safe band.
// Drives the "adjust your timeline for safer results" warning in the client.
func isSafeLossRate(rate float64) bool {
	return rate >= minWeeklyLossKG && rate <= maxWeeklyLossKG
}
