package main

import "testing"

/* ─── dailyCalorieTarget tests ───────────────────────────────────────── */

// TestDailyCalorieTarget_DeficitCappedAt25Percent reproduces the onboarding
// scenario end to end: male, 30y, 180cm, 90kg → 75kg, moderately-active,
// requested 15 weeks clamped up to 19.
//
// TDEE = 1987.602 × 1.55 = 3080.7831. The deficit the timeline asks for
// (15 × 7700 / 133 ≈ 868.4 kJ/day) exceeds the 25% ceiling (770.195775), so
// target = round(3080.7831 − 770.195775) = 2311.
func TestDailyCalorieTarget_DeficitCappedAt25Percent(t *testing.T) {
	d := makeDetails("male", 30, 180, 90, 75, "moderately-active", 15)
	tdee := computeTDEE(d)

	minWeeks, maxWeeks := safeTimelineRange(*d.CurrentWeightKG, *d.GoalWeightKG)
	weeks := clampTimeline(*d.TimelineWeeks, minWeeks, maxWeeks)
	if weeks != 19 {
		t.Fatalf("clamped weeks = %d, want 19", weeks)
	}

	if target := dailyCalorieTarget(d, tdee, weeks); target != 2311 {
		t.Errorf("dailyCalorieTarget = %d, want 2311", target)
	}
}

// TestDailyCalorieTarget_UncappedDeficit verifies the timeline-implied deficit
// is used when it sits below the 25% ceiling. Same profile over 52 weeks:
// 115500 / 364 ≈ 317.3 < 770.2, target = round(3080.7831 − 317.3077) = 2763.
func TestDailyCalorieTarget_UncappedDeficit(t *testing.T) {
	d := makeDetails("male", 30, 180, 90, 75, "moderately-active", 52)
	tdee := computeTDEE(d)
	if target := dailyCalorieTarget(d, tdee, 52); target != 2763 {
		t.Errorf("dailyCalorieTarget = %d, want 2763", target)
	}
}

// TestDailyCalorieTarget_SexSpecificFloors verifies the target never drops
// below 1500 (male) / 1200 (female, other) regardless of how aggressive the
// deficit comes out.
func TestDailyCalorieTarget_SexSpecificFloors(t *testing.T) {
	cases := []struct {
		name string
		sex  string
		want int
	}{
		{"male floor", "male", 1500},
		{"female floor", "female", 1200},
		{"other floor", "other", 1200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Sedentary with a small frame keeps TDEE low enough that the
			// capped deficit lands below the floor.
			d := makeDetails(tc.sex, 90, 150, 45, 35, "sedentary", 13)
			tdee := computeTDEE(d)
			target := dailyCalorieTarget(d, tdee, 13)
			if target != tc.want {
				t.Errorf("dailyCalorieTarget = %d, want floor %d (tdee %f)", target, tc.want, tdee)
			}
		})
	}
}

// TestDailyCalorieTarget_FloorHoldsAcrossProfiles sweeps weight-loss profiles
// and asserts the floor invariant in bulk.
func TestDailyCalorieTarget_FloorHoldsAcrossProfiles(t *testing.T) {
	for _, sex := range []string{"male", "female", "other"} {
		floor := minDailyKJOther
		if sex == "male" {
			floor = minDailyKJMale
		}
		for age := 18; age <= 100; age += 11 {
			for weeks := 1; weeks <= 52; weeks += 7 {
				d := makeDetails(sex, age, 150, 100, 50, "sedentary", weeks)
				tdee := computeTDEE(d)
				if target := dailyCalorieTarget(d, tdee, weeks); target < floor {
					t.Fatalf("%s age %d weeks %d: target %d below floor %d", sex, age, weeks, target, floor)
				}
			}
		}
	}
}

// TestDailyCalorieTarget_NoDeficitCases verifies the target is simply the
// rounded TDEE when no deficit applies.
func TestDailyCalorieTarget_NoDeficitCases(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(d *userDetails)
	}{
		{"no goal set", func(d *userDetails) { d.Goal = nil }},
		{"already at goal weight", func(d *userDetails) { d.GoalWeightKG = d.CurrentWeightKG }},
		{"below goal weight", func(d *userDetails) { above := *d.CurrentWeightKG + 5; d.GoalWeightKG = &above }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := makeDetails("male", 30, 180, 90, 75, "moderately-active", 19)
			tc.mutFn(d)
			tdee := computeTDEE(d)
			if target := dailyCalorieTarget(d, tdee, 19); target != 3081 {
				t.Errorf("dailyCalorieTarget = %d, want rounded TDEE 3081", target)
			}
		})
	}
}

/* ─── deriveDailyCalories tests ──────────────────────────────────────── */

// TestDeriveDailyCalories_ClampsTimelineFirst verifies the stored timeline is
// pulled into its safe range before the target derivation.
func TestDeriveDailyCalories_ClampsTimelineFirst(t *testing.T) {
	d := makeDetails("male", 30, 180, 90, 75, "moderately-active", 15)
	target, ok := deriveDailyCalories(d)
	if !ok {
		t.Fatal("expected ok=true for complete profile")
	}
	// Same result as deriving at the clamped 19 weeks.
	if target != 2311 {
		t.Errorf("deriveDailyCalories = %d, want 2311", target)
	}
}

// TestDeriveDailyCalories_IncompleteProfile verifies ok=false when a required
// field is missing, so callers leave the stored value untouched.
func TestDeriveDailyCalories_IncompleteProfile(t *testing.T) {
	d := makeDetails("male", 30, 180, 90, 75, "moderately-active", 15)
	d.TimelineWeeks = nil
	if _, ok := deriveDailyCalories(d); ok {
		t.Error("expected ok=false when timeline_weeks is nil")
	}
}

/* ─── weeklyTargets tests ────────────────────────────────────────────── */

// TestWeeklyTargets_ZigzagPattern verifies the literal factor vector against
// a 2000 kJ daily target.
func TestWeeklyTargets_ZigzagPattern(t *testing.T) {
	want := [planDays]int{2200, 1900, 2100, 2000, 1800, 2160, 1840}
	if got := weeklyTargets(2000); got != want {
		t.Errorf("weeklyTargets(2000) = %v, want %v", got, want)
	}
}

// TestWeeklyTargets_WeeklyAverageNeutral verifies the factors keep the weekly
// total at 7 × the daily target for a target with exact products.
func TestWeeklyTargets_WeeklyAverageNeutral(t *testing.T) {
	targets := weeklyTargets(2000)
	var sum int
	for _, kj := range targets {
		sum += kj
	}
	if sum != 7*2000 {
		t.Errorf("weekly total = %d, want %d", sum, 7*2000)
	}
}
