package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultDailyKJ is the daily target used while a user's profile hasn't
// produced a calculated value yet — the finalize screen still needs budgets.
const defaultDailyKJ = 2000

// ledgerForUser builds the user's meal ledger: zigzag targets from the stored
// daily calorie target, selections from the selection store. A selection-store
// read failure falls back to an empty ledger (the user re-picks); a profile
// read failure does not, since without it the targets would be wrong.
func (h *Handler) ledgerForUser(c *gin.Context, userID int) (*mealLedger, error) {
	d, err := h.profiles.Get(c, userID)
	if err != nil {
		return nil, err
	}

	dailyKJ := defaultDailyKJ
	if d.CalculatedDailyCalories != nil && *d.CalculatedDailyCalories > 0 {
		dailyKJ = *d.CalculatedDailyCalories
	}

	ledger := newMealLedger(h.catalog.byID, weeklyTargets(dailyKJ))
	rows, err := h.selections.List(c, userID)
	if err != nil {
		log.Printf("[mealPlan] failed to load selections for user %d, starting empty: %v", userID, err)
		return ledger, nil
	}
	ledger.Load(rows)
	return ledger, nil
}

func mealPlanJSON(c *gin.Context, status int, ledger *mealLedger) {
	c.JSON(status, mealPlanResponse{
		Targets:    ledger.targets,
		Selections: ledger.Rows(),
		DayTotals:  ledger.DayTotals(),
		Complete:   ledger.IsComplete(),
	})
}

// getMealPlan returns the seven day targets, the saved selections, and per-day
// totals/completeness for the authenticated user.
// GET /api/meal-plan.
func (h *Handler) getMealPlan(c *gin.Context) {
	userID := c.GetInt("user_id")

	ledger, err := h.ledgerForUser(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to load meal plan")
		return
	}

	mealPlanJSON(c, http.StatusOK, ledger)
}

// addPlanMeal adds one serving of a meal to a day, enforcing the day's target.
// POST /api/meal-plan/meals. A serving that would push the day over target is
// rejected with 422 and no state change.
func (h *Handler) addPlanMeal(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body planMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ledger, err := h.ledgerForUser(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to load meal plan")
		return
	}

	if err := ledger.Add(body.DayIndex, body.MealID); err != nil {
		switch {
		case errors.Is(err, errBudgetExceeded):
			apiError(c, http.StatusUnprocessableEntity,
				fmt.Sprintf("adding this meal would exceed your daily target of %d kJ", ledger.targets[body.DayIndex]))
		case errors.Is(err, errUnknownMeal):
			apiError(c, http.StatusNotFound, err.Error())
		default:
			apiError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	if err := h.selections.Replace(c, userID, ledger.Rows()); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save meal plan")
		return
	}

	mealPlanJSON(c, http.StatusOK, ledger)
}

// removePlanMeal removes one serving of a meal from a day. Removing a meal
// that isn't selected is a no-op, not an error.
// DELETE /api/meal-plan/meals.
func (h *Handler) removePlanMeal(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body planMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.DayIndex < 0 || body.DayIndex >= planDays {
		apiError(c, http.StatusBadRequest, errInvalidDay.Error())
		return
	}

	ledger, err := h.ledgerForUser(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to load meal plan")
		return
	}

	ledger.Remove(body.DayIndex, body.MealID)

	if err := h.selections.Replace(c, userID, ledger.Rows()); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save meal plan")
		return
	}

	mealPlanJSON(c, http.StatusOK, ledger)
}

// saveMealPlan replaces the stored plan with the submitted selection set.
// PUT /api/meal-plan. The set is folded last-write-wins without re-checking
// day targets (the client enforced them add-by-add), but an incomplete week —
// any day with no meals — is refused.
func (h *Handler) saveMealPlan(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body saveMealPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ledger, err := h.ledgerForUser(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to load meal plan")
		return
	}

	ledger.Load(body.Selections)
	if !ledger.IsComplete() {
		apiError(c, http.StatusUnprocessableEntity, errIncompleteSelection.Error())
		return
	}

	if err := h.selections.Replace(c, userID, ledger.Rows()); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save meal plan")
		return
	}

	mealPlanJSON(c, http.StatusOK, ledger)
}
