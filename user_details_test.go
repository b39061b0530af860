package main

import (
	"encoding/json"
	"net/http"
	"testing"
)

/* ─── GET /api/user-details ──────────────────────────────────────────── */

// TestGetUserDetails_PopulatesComputedFields verifies the computed plan fields
// ride along with the stored row and are never persisted.
func TestGetUserDetails_PopulatesComputedFields(t *testing.T) {
	profiles := &memProfileStore{row: completeProfile()}
	router := setupTestRouter(profiles, &memSelectionStore{})

	w := doJSON(router, "GET", "/api/user-details", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp userDetails
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.ComputedTDEE == nil || *resp.ComputedTDEE != 3081 {
		t.Errorf("computed_tdee = %v, want 3081", resp.ComputedTDEE)
	}
	if resp.SafeMinWeeks == nil || *resp.SafeMinWeeks != 19 {
		t.Errorf("safe_min_weeks = %v, want 19", resp.SafeMinWeeks)
	}
	if profiles.row.ComputedTDEE != nil {
		t.Error("computed fields leaked into the stored row")
	}
}

/* ─── PATCH /api/user-details validation ─────────────────────────────── */

// TestPatchUserDetails_RejectsInvalidFields verifies each enum and numeric
// range is enforced before anything is written.
func TestPatchUserDetails_RejectsInvalidFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad sex", `{"sex":"unknown"}`},
		{"age too low", `{"age":17}`},
		{"age too high", `{"age":101}`},
		{"height too low", `{"height_cm":119}`},
		{"height too high", `{"height_cm":251}`},
		{"weight too low", `{"current_weight_kg":29}`},
		{"weight too high", `{"current_weight_kg":301}`},
		{"goal weight too low", `{"goal_weight_kg":29}`},
		{"bad activity level", `{"activity_level":"couch"}`},
		{"bad dietary preference", `{"dietary_preference":"carnivore"}`},
		{"bad goal", `{"goal":"muscle-gain"}`},
		{"timeline too low", `{"timeline_weeks":0}`},
		{"timeline too high", `{"timeline_weeks":53}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := &memProfileStore{row: completeProfile()}
			router := setupTestRouter(profiles, &memSelectionStore{})
			w := doJSON(router, "PATCH", "/api/user-details", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			// The stored row must be untouched after a rejected patch.
			if profiles.row.Sex == nil || *profiles.row.Sex != "male" {
				t.Error("stored row changed after rejected patch")
			}
		})
	}
}

/* ─── PATCH /api/user-details recompute-and-persist ──────────────────── */

// TestPatchUserDetails_RecomputesDailyCalories verifies that patching a field
// the calorie target depends on rewrites calculated_daily_calories in the
// store on the same request.
func TestPatchUserDetails_RecomputesDailyCalories(t *testing.T) {
	profiles := &memProfileStore{row: completeProfile()}
	router := setupTestRouter(profiles, &memSelectionStore{})

	// completeProfile carries a stale 2000; patching the timeline must rewrite
	// it to the derived value for 19 weeks (2311, see target tests).
	w := doJSON(router, "PATCH", "/api/user-details", `{"timeline_weeks":19}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if profiles.row.CalculatedDailyCalories == nil || *profiles.row.CalculatedDailyCalories != 2311 {
		t.Errorf("stored calculated_daily_calories = %v, want 2311", profiles.row.CalculatedDailyCalories)
	}
}

// TestPatchUserDetails_DietaryPreferenceDoesNotRecompute verifies the one
// profile field the target doesn't depend on leaves the cached value alone.
func TestPatchUserDetails_DietaryPreferenceDoesNotRecompute(t *testing.T) {
	profiles := &memProfileStore{row: completeProfile()}
	router := setupTestRouter(profiles, &memSelectionStore{})

	w := doJSON(router, "PATCH", "/api/user-details", `{"dietary_preference":"vegan"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if profiles.row.CalculatedDailyCalories == nil || *profiles.row.CalculatedDailyCalories != 2000 {
		t.Errorf("stored calculated_daily_calories = %v, want untouched 2000", profiles.row.CalculatedDailyCalories)
	}
	if profiles.row.DietaryPreference == nil || *profiles.row.DietaryPreference != "vegan" {
		t.Errorf("dietary_preference = %v, want vegan", profiles.row.DietaryPreference)
	}
}

// TestPatchUserDetails_ClampsTimelineIntoSafeRange verifies a timeline outside
// the safe range is stored clamped, not as requested. 90kg → 75kg admits
// 19–52 weeks; requesting 15 stores 19.
func TestPatchUserDetails_ClampsTimelineIntoSafeRange(t *testing.T) {
	profiles := &memProfileStore{row: completeProfile()}
	router := setupTestRouter(profiles, &memSelectionStore{})

	w := doJSON(router, "PATCH", "/api/user-details", `{"timeline_weeks":15}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if profiles.row.TimelineWeeks == nil || *profiles.row.TimelineWeeks != 19 {
		t.Errorf("stored timeline_weeks = %v, want clamped 19", profiles.row.TimelineWeeks)
	}
}

// TestPatchUserDetails_IdempotentRecompute verifies re-sending the same patch
// yields the same stored target — the derivation has no hidden accumulation.
func TestPatchUserDetails_IdempotentRecompute(t *testing.T) {
	profiles := &memProfileStore{row: completeProfile()}
	router := setupTestRouter(profiles, &memSelectionStore{})

	doJSON(router, "PATCH", "/api/user-details", `{"current_weight_kg":88}`)
	first := *profiles.row.CalculatedDailyCalories
	doJSON(router, "PATCH", "/api/user-details", `{"current_weight_kg":88}`)
	second := *profiles.row.CalculatedDailyCalories

	if first != second {
		t.Errorf("repeated identical patch changed target: %d then %d", first, second)
	}
}

// TestPatchUserDetails_IncompleteProfileKeepsStoredTarget verifies that a
// patch on a profile still missing derivation inputs leaves the cached target
// untouched rather than writing a bogus one.
func TestPatchUserDetails_IncompleteProfileKeepsStoredTarget(t *testing.T) {
	d := completeProfile()
	d.GoalWeightKG = nil
	profiles := &memProfileStore{row: d}
	router := setupTestRouter(profiles, &memSelectionStore{})

	w := doJSON(router, "PATCH", "/api/user-details", `{"age":31}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if profiles.row.CalculatedDailyCalories == nil || *profiles.row.CalculatedDailyCalories != 2000 {
		t.Errorf("stored calculated_daily_calories = %v, want untouched 2000", profiles.row.CalculatedDailyCalories)
	}
	if profiles.row.Age == nil || *profiles.row.Age != 31 {
		t.Errorf("age = %v, want 31", profiles.row.Age)
	}
}
