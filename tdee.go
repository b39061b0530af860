package main

import "math"

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used for
// input validation in patchUserDetails.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly-active":    1.375,
	"moderately-active": 1.55,
	"very-active":       1.725,
}

// fallbackDailyKJ is returned by computeTDEE for incomplete profiles instead
// of an error — callers always get a usable number.
const fallbackDailyKJ = 1500

// computeBMR computes Basal Metabolic Rate (Mifflin-St Jeor) with sex-specific
// constants. Female and other share the female constants.
func computeBMR(sex string, weightKG, heightCM float64, ageYears int) float64 {
	if sex == "male" {
		return 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*float64(ageYears)
	}
	return 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*float64(ageYears)
}

// computeTDEE computes Total Daily Energy Expenditure (BMR × activity
// multiplier) from the user's profile. An incomplete profile — any nil or zero
// required field, or an unknown activity level — yields fallbackDailyKJ rather
// than NaN or an error.
func computeTDEE(d *userDetails) float64 {
	if d.Sex == nil || d.Age == nil || d.HeightCM == nil ||
		d.CurrentWeightKG == nil || d.ActivityLevel == nil {
		return fallbackDailyKJ
	}
	if *d.Age == 0 || *d.HeightCM == 0 || *d.CurrentWeightKG == 0 {
		return fallbackDailyKJ
	}
	mult, found := activityMultipliers[*d.ActivityLevel]
	if !found {
		return fallbackDailyKJ
	}
	return computeBMR(*d.Sex, *d.CurrentWeightKG, *d.HeightCM, *d.Age) * mult
}

// populateComputedPlan fills the computed-only fields on d from the profile.
// No-ops if the fields needed for BMR/TDEE are missing. The safe timeline range
// and loss rate additionally need a goal weight and timeline.
func populateComputedPlan(d *userDetails) {
	if d.Sex == nil || d.Age == nil || d.HeightCM == nil ||
		d.CurrentWeightKG == nil || d.ActivityLevel == nil {
		return
	}
	bmr := int(math.Round(computeBMR(*d.Sex, *d.CurrentWeightKG, *d.HeightCM, *d.Age)))
	tdee := int(math.Round(computeTDEE(d)))
	d.ComputedBMR = &bmr
	d.ComputedTDEE = &tdee

	if d.GoalWeightKG == nil {
		return
	}
	minWeeks, maxWeeks := safeTimelineRange(*d.CurrentWeightKG, *d.GoalWeightKG)
	d.SafeMinWeeks = &minWeeks
	d.SafeMaxWeeks = &maxWeeks

	if d.TimelineWeeks == nil || *d.TimelineWeeks == 0 {
		return
	}
	rate := weeklyLossRate(*d.CurrentWeightKG, *d.GoalWeightKG, *d.TimelineWeeks)
	safe := isSafeLossRate(rate)
	d.WeeklyLossRateKG = &rate
	d.RateIsSafe = &safe
}
