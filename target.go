package main

import "math"

// Product policy constants for the weight-loss deficit. 7700 kJ is the energy
// equivalent of one kg, the deficit is capped at 25% of TDEE, and the daily
// target never drops below the sex-specific floor.
const (
	kjPerKG            = 7700
	maxDeficitFraction = 0.25
	minDailyKJMale     = 1500
	minDailyKJOther    = 1200
)

// dailyCalorieTarget combines TDEE, timeline, and goal into the daily kJ
// target. Only a weight-loss goal with actual weight to lose produces a
// deficit; everything else gets TDEE rounded.
func dailyCalorieTarget(d *userDetails, tdee float64, weeks int) int {
	if d.Goal == nil || *d.Goal != "weight-loss" ||
		d.CurrentWeightKG == nil || d.GoalWeightKG == nil ||
		*d.CurrentWeightKG <= *d.GoalWeightKG || weeks <= 0 {
		return int(math.Round(tdee))
	}

	totalDeficitNeeded := (*d.CurrentWeightKG - *d.GoalWeightKG) * kjPerKG
	dailyDeficitNeeded := totalDeficitNeeded / float64(weeks*7)
	maxSafeDeficit := tdee * maxDeficitFraction
	actualDeficit := math.Min(dailyDeficitNeeded, maxSafeDeficit)

	floor := float64(minDailyKJOther)
	if d.Sex != nil && *d.Sex == "male" {
		floor = minDailyKJMale
	}
	return int(math.Round(math.Max(tdee-actualDeficit, floor)))
}

// deriveDailyCalories recomputes the persisted daily target from the full
// profile: TDEE, then the timeline clamped into its safe range, then the
// target. Returns ok=false when any field the derivation needs is missing —
// callers leave the stored value untouched in that case.
func deriveDailyCalories(d *userDetails) (int, bool) {
	if d.Sex == nil || d.Age == nil || d.HeightCM == nil ||
		d.CurrentWeightKG == nil || d.GoalWeightKG == nil ||
		d.ActivityLevel == nil || d.TimelineWeeks == nil {
		return 0, false
	}
	tdee := computeTDEE(d)
	minWeeks, maxWeeks := safeTimelineRange(*d.CurrentWeightKG, *d.GoalWeightKG)
	weeks := clampTimeline(*d.TimelineWeeks, minWeeks, maxWeeks)
	return dailyCalorieTarget(d, tdee, weeks), true
}

// zigzagFactors vary the daily target across the week so menus aren't
// identical every day. The factors average to 1.0, keeping the weekly total
// unchanged. Index 0 = Monday.
var zigzagFactors = [planDays]float64{1.10, 0.95, 1.05, 1.00, 0.90, 1.08, 0.92}

// weeklyTargets expands a single daily target into seven day-specific budgets.
func weeklyTargets(dailyKJ int) [planDays]int {
	var targets [planDays]int
	for i, f := range zigzagFactors {
		targets[i] = int(math.Round(float64(dailyKJ) * f))
	}
	return targets
}
