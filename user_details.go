package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Enum values accepted by patchUserDetails. Activity levels are validated
// against activityMultipliers in tdee.go.
var (
	validSexes = map[string]bool{
		"male":   true,
		"female": true,
		"other":  true,
	}
	validDietaryPreferences = map[string]bool{
		"vegetarian":     true,
		"non-vegetarian": true,
		"vegan":          true,
		"no-preference":  true,
	}
	validGoals = map[string]bool{
		"weight-loss": true,
	}
)

// getUserDetails returns the profile for the authenticated user. Computed
// fields (BMR, TDEE, safe timeline range, loss rate) are populated when the
// profile is complete enough to derive them.
// GET /api/user-details.
func (h *Handler) getUserDetails(c *gin.Context) {
	userID := c.GetInt("user_id")

	d, err := h.profiles.Get(c, userID)
	if err != nil {
		apiError(c, http.StatusNotFound, "user details not found")
		return
	}

	populateComputedPlan(&d)

	c.JSON(http.StatusOK, d)
}

// validatePatch checks every provided field against its enum or numeric range.
// Out-of-range values are rejected here, before anything touches the stored
// row — the derivation functions assume pre-validated inputs.
func validatePatch(body *patchUserDetailsRequest) (string, bool) {
	if body.Sex != nil && !validSexes[*body.Sex] {
		return "sex must be one of: male, female, other", false
	}
	if body.Age != nil && (*body.Age < 18 || *body.Age > 100) {
		return "age must be between 18 and 100", false
	}
	if body.HeightCM != nil && (*body.HeightCM < 120 || *body.HeightCM > 250) {
		return "height_cm must be between 120 and 250", false
	}
	if body.CurrentWeightKG != nil && (*body.CurrentWeightKG < 30 || *body.CurrentWeightKG > 300) {
		return "current_weight_kg must be between 30 and 300", false
	}
	if body.GoalWeightKG != nil && (*body.GoalWeightKG < 30 || *body.GoalWeightKG > 300) {
		return "goal_weight_kg must be between 30 and 300", false
	}
	if body.ActivityLevel != nil {
		if _, found := activityMultipliers[*body.ActivityLevel]; !found {
			return "activity_level must be one of: sedentary, lightly-active, moderately-active, very-active", false
		}
	}
	if body.DietaryPreference != nil && !validDietaryPreferences[*body.DietaryPreference] {
		return "dietary_preference must be one of: vegetarian, non-vegetarian, vegan, no-preference", false
	}
	if body.Goal != nil && !validGoals[*body.Goal] {
		return "goal must be: weight-loss", false
	}
	if body.TimelineWeeks != nil && (*body.TimelineWeeks < minTimelineWeeks || *body.TimelineWeeks > maxTimelineWeeks) {
		return "timeline_weeks must be between 1 and 52", false
	}
	return "", true
}

// touchesCalorieInputs reports whether the patch changes any field the daily
// calorie target derives from. Dietary preference is the one profile field
// the target doesn't depend on.
func touchesCalorieInputs(body *patchUserDetailsRequest) bool {
	return body.Sex != nil || body.Age != nil || body.HeightCM != nil ||
		body.CurrentWeightKG != nil || body.GoalWeightKG != nil ||
		body.ActivityLevel != nil || body.Goal != nil || body.TimelineWeeks != nil
}

// patchUserDetails updates only the provided profile fields.
// PATCH /api/user-details. Uses pointer fields in the request body to
// distinguish "not provided" from zero — only non-nil fields get merged.
//
// When the patch touches a field the calorie target depends on, the timeline
// is clamped into its safe range and calculated_daily_calories is re-derived
// and persisted on the same request. Re-running a patch with the same values
// yields the same stored target.
func (h *Handler) patchUserDetails(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchUserDetailsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := validatePatch(&body); !ok {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	d, err := h.profiles.Get(c, userID)
	if err != nil {
		apiError(c, http.StatusNotFound, "user details not found")
		return
	}

	// Merge non-nil patch fields into the stored row.
	if body.Sex != nil {
		d.Sex = body.Sex
	}
	if body.Age != nil {
		d.Age = body.Age
	}
	if body.HeightCM != nil {
		d.HeightCM = body.HeightCM
	}
	if body.CurrentWeightKG != nil {
		d.CurrentWeightKG = body.CurrentWeightKG
	}
	if body.GoalWeightKG != nil {
		d.GoalWeightKG = body.GoalWeightKG
	}
	if body.ActivityLevel != nil {
		d.ActivityLevel = body.ActivityLevel
	}
	if body.DietaryPreference != nil {
		d.DietaryPreference = body.DietaryPreference
	}
	if body.Goal != nil {
		d.Goal = body.Goal
	}
	if body.TimelineWeeks != nil {
		d.TimelineWeeks = body.TimelineWeeks
	}

	if touchesCalorieInputs(&body) {
		// Clamp the timeline into its safe range before deriving, and persist
		// the clamped value — the stored timeline always satisfies the range
		// its own weights imply.
		if d.TimelineWeeks != nil && d.CurrentWeightKG != nil && d.GoalWeightKG != nil {
			minWeeks, maxWeeks := safeTimelineRange(*d.CurrentWeightKG, *d.GoalWeightKG)
			clamped := clampTimeline(*d.TimelineWeeks, minWeeks, maxWeeks)
			d.TimelineWeeks = &clamped
		}
		if target, ok := deriveDailyCalories(&d); ok {
			d.CalculatedDailyCalories = &target
		}
	}

	updated, err := h.profiles.Put(c, d)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update user details")
		return
	}

	populateComputedPlan(&updated)

	c.JSON(http.StatusOK, updated)
}
