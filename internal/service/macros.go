package service

import "github.com/limbo/myfit/pkg/entity"

// AggregateMacros sums every item of the given meals. Values are not rounded.
func AggregateMacros(meals []entity.MealLog) entity.MacroTotals {
	var totals entity.MacroTotals
	for _, meal := range meals {
		for _, item := range meal.Items {
			totals.Add(item)
		}
	}
	return totals
}

// LoggedMeals drops draft rows that hold no items.
func LoggedMeals(meals []entity.MealLog) []entity.MealLog {
	logged := make([]entity.MealLog, 0, len(meals))
	for _, m := range meals {
		if m.Logged() {
			logged = append(logged, m)
		}
	}
	return logged
}
