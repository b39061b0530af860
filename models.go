package main

import "time"

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// userDetails maps to user_details. One row per user, created empty at signup
// and filled in by the onboarding wizard. Profile fields are pointers so pgx
// can scan NULLs and JSON omits nothing the client needs to distinguish.
//
// calculated_daily_calories is a derived, cached field: every update to a
// profile field it depends on rewrites it in the same request (see
// patchUserDetails), never inside a read.
type userDetails struct {
	UserID                  int        `json:"user_id" db:"user_id"`
	Sex                     *string    `json:"sex" db:"sex"`
	Age                     *int       `json:"age" db:"age"`
	HeightCM                *float64   `json:"height_cm" db:"height_cm"`
	CurrentWeightKG         *float64   `json:"current_weight_kg" db:"current_weight_kg"`
	GoalWeightKG            *float64   `json:"goal_weight_kg" db:"goal_weight_kg"`
	ActivityLevel           *string    `json:"activity_level" db:"activity_level"`
	DietaryPreference       *string    `json:"dietary_preference" db:"dietary_preference"`
	Goal                    *string    `json:"goal" db:"goal"`
	TimelineWeeks           *int       `json:"timeline_weeks" db:"timeline_weeks"`
	CalculatedDailyCalories *int       `json:"calculated_daily_calories" db:"calculated_daily_calories"`
	CreatedAt               *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt               *time.Time `json:"updated_at" db:"updated_at"`

	// Computed fields — populated server-side from the profile; not stored in
	// DB. db:"-" tells RowToStructByName to skip these during scanning.
	ComputedBMR      *int     `json:"computed_bmr,omitempty" db:"-"`
	ComputedTDEE     *int     `json:"computed_tdee,omitempty" db:"-"`
	SafeMinWeeks     *int     `json:"safe_min_weeks,omitempty" db:"-"`
	SafeMaxWeeks     *int     `json:"safe_max_weeks,omitempty" db:"-"`
	WeeklyLossRateKG *float64 `json:"weekly_loss_rate_kg,omitempty" db:"-"`
	RateIsSafe       *bool    `json:"rate_is_safe,omitempty" db:"-"`
}

// meal maps to the meals table — the immutable reference catalog. Energy is
// in kJ, the unit every target in the system uses.
type meal struct {
	ID       int      `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Category string   `json:"category" db:"category"`
	KJ       int      `json:"kj" db:"kj"`
	ProteinG float64  `json:"protein_g" db:"protein_g"`
	CarbsG   float64  `json:"carbs_g" db:"carbs_g"`
	FatG     float64  `json:"fat_g" db:"fat_g"`
	Tags     []string `json:"tags" db:"tags"`
	ImageURL *string  `json:"image_url" db:"image_url"`
}

// mealSelectionRow is one (day, meal, quantity) tuple, the persisted shape of
// the weekly_meal_plan table. Rows reference meals by id; they don't own them.
type mealSelectionRow struct {
	DayIndex int `json:"day_index" db:"day_index"`
	MealID   int `json:"meal_id" db:"meal_id"`
	Quantity int `json:"quantity" db:"quantity"`
}

// weightEntry maps to weight_log — one weigh-in per user per date, shown as
// the progress chart on the profile page.
type weightEntry struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      string     `json:"date" db:"date"`
	WeightKG  float64    `json:"weight_kg" db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

/* ─── Request / Response types ───────────────────────────────────────── */

// patchUserDetailsRequest is the request body for PATCH /api/user-details.
// All fields are pointers — only non-nil fields get merged into the stored row.
type patchUserDetailsRequest struct {
	Sex               *string  `json:"sex"`
	Age               *int     `json:"age"`
	HeightCM          *float64 `json:"height_cm"`
	CurrentWeightKG   *float64 `json:"current_weight_kg"`
	GoalWeightKG      *float64 `json:"goal_weight_kg"`
	ActivityLevel     *string  `json:"activity_level"`
	DietaryPreference *string  `json:"dietary_preference"`
	Goal              *string  `json:"goal"`
	TimelineWeeks     *int     `json:"timeline_weeks"`
}

// planMealRequest is the request body for POST and DELETE /api/meal-plan/meals.
type planMealRequest struct {
	DayIndex int `json:"day_index"`
	MealID   int `json:"meal_id"`
}

// saveMealPlanRequest is the request body for PUT /api/meal-plan — the full
// selection set, replacing whatever was stored before.
type saveMealPlanRequest struct {
	Selections []mealSelectionRow `json:"selections"`
}

// mealPlanResponse is the response shape for the meal-plan endpoints: the
// seven zigzag day targets, the current selection rows, and per-day state.
type mealPlanResponse struct {
	Targets    [planDays]int      `json:"targets"`
	Selections []mealSelectionRow `json:"selections"`
	DayTotals  [planDays]int      `json:"day_totals"`
	Complete   bool               `json:"complete"`
}
