package main

import (
	"errors"
	"sort"
)

// planDays is the length of a meal plan week.
const planDays = 7

// Recoverable business errors surfaced by the ledger. Handlers map these to
// 422 responses; neither is ever fatal.
var (
	errBudgetExceeded      = errors.New("adding this meal would exceed the day's calorie target")
	errIncompleteSelection = errors.New("select at least one meal per day")
	errUnknownMeal         = errors.New("meal not found in catalog")
	errInvalidDay          = errors.New("day index must be between 0 and 6")
)

// mealLedger tracks per-day meal quantities against the week's zigzag targets.
// Zero-quantity entries are never kept. Not safe for concurrent use; each
// request builds its own ledger from the persisted rows.
type mealLedger struct {
	catalog    map[int]meal
	targets    [planDays]int
	selections map[int]map[int]int // day -> meal id -> quantity
}

func newMealLedger(catalog map[int]meal, targets [planDays]int) *mealLedger {
	return &mealLedger{
		catalog:    catalog,
		targets:    targets,
		selections: make(map[int]map[int]int),
	}
}

// Add increments the quantity of a meal for a day. Hard-rejects with
// errBudgetExceeded when the day's total would pass its target — no partial
// state change, the caller retries with a different meal or removes first.
func (l *mealLedger) Add(day, mealID int) error {
	if day < 0 || day >= planDays {
		return errInvalidDay
	}
	m, found := l.catalog[mealID]
	if !found {
		return errUnknownMeal
	}
	if l.TotalFor(day)+m.KJ > l.targets[day] {
		return errBudgetExceeded
	}
	if l.selections[day] == nil {
		l.selections[day] = make(map[int]int)
	}
	l.selections[day][mealID]++
	return nil
}

// Remove decrements the quantity of a meal for a day, deleting the entry when
// it reaches zero. Removing a meal that isn't present is a no-op, not an error.
func (l *mealLedger) Remove(day, mealID int) {
	dayMeals := l.selections[day]
	if dayMeals == nil || dayMeals[mealID] == 0 {
		return
	}
	dayMeals[mealID]--
	if dayMeals[mealID] == 0 {
		delete(dayMeals, mealID)
	}
}

// TotalFor sums energy × quantity across the day's entries. Meals missing from
// the catalog (stale rows after a catalog change) contribute nothing.
func (l *mealLedger) TotalFor(day int) int {
	var total int
	for mealID, qty := range l.selections[day] {
		if m, found := l.catalog[mealID]; found {
			total += m.KJ * qty
		}
	}
	return total
}

// IsComplete reports whether every one of the 7 days has at least one meal
// with a positive quantity. Being under or over target doesn't matter.
func (l *mealLedger) IsComplete() bool {
	for day := 0; day < planDays; day++ {
		hasMeal := false
		for _, qty := range l.selections[day] {
			if qty > 0 {
				hasMeal = true
				break
			}
		}
		if !hasMeal {
			return false
		}
	}
	return true
}

// DayTotals returns TotalFor for each of the 7 days.
func (l *mealLedger) DayTotals() [planDays]int {
	var totals [planDays]int
	for day := range totals {
		totals[day] = l.TotalFor(day)
	}
	return totals
}

// Rows flattens the current non-zero entries into (day, meal, quantity)
// tuples ordered by day then meal id — the shape the selection store persists.
func (l *mealLedger) Rows() []mealSelectionRow {
	rows := []mealSelectionRow{}
	for day, dayMeals := range l.selections {
		for mealID, qty := range dayMeals {
			if qty > 0 {
				rows = append(rows, mealSelectionRow{DayIndex: day, MealID: mealID, Quantity: qty})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DayIndex != rows[j].DayIndex {
			return rows[i].DayIndex < rows[j].DayIndex
		}
		return rows[i].MealID < rows[j].MealID
	})
	return rows
}

// Load reconstructs the ledger from stored rows, last-write-wins per
// (day, meal). No validation against targets happens here — stored rows may
// predate a profile change, and stale selections are still the user's to edit.
func (l *mealLedger) Load(rows []mealSelectionRow) {
	l.selections = make(map[int]map[int]int)
	for _, row := range rows {
		if row.DayIndex < 0 || row.DayIndex >= planDays {
			continue
		}
		if l.selections[row.DayIndex] == nil {
			l.selections[row.DayIndex] = make(map[int]int)
		}
		if row.Quantity <= 0 {
			delete(l.selections[row.DayIndex], row.MealID)
			continue
		}
		l.selections[row.DayIndex][row.MealID] = row.Quantity
	}
}
