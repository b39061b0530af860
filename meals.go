package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// validCategories is the set of allowed values for the meal category enum.
var validCategories = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snacks":    true,
	"desserts":  true,
}

// getMeals returns the meal catalog, optionally narrowed by category, dietary
// preference, and tag filters.
// GET /api/meals?category=lunch&diet=vegetarian&tag=high-protein&tag=popular.
// diet matches a single tag ("no-preference" matches everything); every tag
// param must be present on the meal.
func (h *Handler) getMeals(c *gin.Context) {
	category := c.Query("category")
	diet := c.Query("diet")
	tags := c.QueryArray("tag")

	if category != "" && !validCategories[category] {
		apiError(c, http.StatusBadRequest, "category must be one of: breakfast, lunch, dinner, snacks, desserts")
		return
	}
	if diet != "" && !validDietaryPreferences[diet] {
		apiError(c, http.StatusBadRequest, "diet must be one of: vegetarian, non-vegetarian, vegan, no-preference")
		return
	}

	meals := filterMeals(h.catalog.meals, category, diet, tags)
	c.JSON(http.StatusOK, meals)
}

// filterMeals applies the catalog filters in order: category, diet tag, then
// all requested tags. Always returns a non-nil slice so JSON renders [].
func filterMeals(meals []meal, category, diet string, tags []string) []meal {
	filtered := []meal{}
	for _, m := range meals {
		if category != "" && m.Category != category {
			continue
		}
		if diet != "" && diet != "no-preference" && !hasTag(m, diet) {
			continue
		}
		if !hasAllTags(m, tags) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

func hasTag(m meal, tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func hasAllTags(m meal, tags []string) bool {
	for _, tag := range tags {
		if !hasTag(m, tag) {
			return false
		}
	}
	return true
}
