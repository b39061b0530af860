package main

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// profileStore is the persistence contract for user_details rows. Put is a
// full-row update (the handler merges patches before writing) and returns the
// stored row.
type profileStore interface {
	Get(ctx context.Context, userID int) (userDetails, error)
	Put(ctx context.Context, d userDetails) (userDetails, error)
}

// selectionStore is the persistence contract for weekly_meal_plan rows.
// Replace has full-replace semantics: delete every stored row for the user,
// then insert the given set. The last caller wins; there is no concurrency
// token.
type selectionStore interface {
	List(ctx context.Context, userID int) ([]mealSelectionRow, error)
	Replace(ctx context.Context, userID int, rows []mealSelectionRow) error
}

/* ─── Postgres implementations ───────────────────────────────────────── */

type pgProfileStore struct {
	db *pgxpool.Pool
}

func (s *pgProfileStore) Get(ctx context.Context, userID int) (userDetails, error) {
	return queryOne[userDetails](s.db, ctx,
		"SELECT * FROM user_details WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}

func (s *pgProfileStore) Put(ctx context.Context, d userDetails) (userDetails, error) {
	return queryOne[userDetails](s.db, ctx,
		`UPDATE user_details SET
			sex                       = @sex,
			age                       = @age,
			height_cm                 = @heightCM,
			current_weight_kg         = @currentWeightKG,
			goal_weight_kg            = @goalWeightKG,
			activity_level            = @activityLevel,
			dietary_preference        = @dietaryPreference,
			goal                      = @goal,
			timeline_weeks            = @timelineWeeks,
			calculated_daily_calories = @calculatedDailyCalories,
			updated_at                = now()
		 WHERE user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": d.UserID, "sex": d.Sex, "age": d.Age,
			"heightCM": d.HeightCM, "currentWeightKG": d.CurrentWeightKG,
			"goalWeightKG": d.GoalWeightKG, "activityLevel": d.ActivityLevel,
			"dietaryPreference": d.DietaryPreference, "goal": d.Goal,
			"timelineWeeks":           d.TimelineWeeks,
			"calculatedDailyCalories": d.CalculatedDailyCalories,
		})
}

type pgSelectionStore struct {
	db *pgxpool.Pool
}

func (s *pgSelectionStore) List(ctx context.Context, userID int) ([]mealSelectionRow, error) {
	return queryMany[mealSelectionRow](s.db, ctx,
		`SELECT day_index, meal_id, quantity FROM weekly_meal_plan
		 WHERE user_id = @userID
		 ORDER BY day_index, meal_id`,
		pgx.NamedArgs{"userID": userID})
}

// Replace deletes and reinserts inside one transaction so a failed insert
// never leaves the user with an empty plan.
func (s *pgSelectionStore) Replace(ctx context.Context, userID int, rows []mealSelectionRow) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"DELETE FROM weekly_meal_plan WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID}); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := tx.Exec(ctx,
			`INSERT INTO weekly_meal_plan (user_id, day_index, meal_id, quantity)
			 VALUES (@userID, @dayIndex, @mealID, @quantity)`,
			pgx.NamedArgs{
				"userID": userID, "dayIndex": row.DayIndex,
				"mealID": row.MealID, "quantity": row.Quantity,
			}); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

/* ─── Meal catalog ───────────────────────────────────────────────────── */

// mealCatalog is the immutable reference catalog, loaded once at startup.
// byID backs ledger lookups; meals keeps a stable id order for listings.
type mealCatalog struct {
	byID  map[int]meal
	meals []meal
}

func newMealCatalog(meals []meal) *mealCatalog {
	byID := make(map[int]meal, len(meals))
	for _, m := range meals {
		byID[m.ID] = m
	}
	sorted := make([]meal, len(meals))
	copy(sorted, meals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &mealCatalog{byID: byID, meals: sorted}
}

func loadMealCatalog(ctx context.Context, pool *pgxpool.Pool) (*mealCatalog, error) {
	meals, err := queryMany[meal](pool, ctx, "SELECT * FROM meals", pgx.NamedArgs{})
	if err != nil {
		return nil, err
	}
	return newMealCatalog(meals), nil
}
