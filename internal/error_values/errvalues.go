package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrWrongOwner       = errors.New("resource belongs to another user")

	ErrSettingsNotFound = errors.New("settings not found")
	ErrInvalidSplit     = errors.New("split must be 1 to 4 unique letters from A-D")
	ErrExerciseNotFound = errors.New("exercise doesn't exist")
	ErrExerciseExists   = errors.New("exercise with such name already exists")
	ErrExerciseInUse    = errors.New("exercise has logged sets")
	ErrNoWorkoutLogs    = errors.New("no workout logs yet")

	ErrMealNotFound     = errors.New("meal doesn't exist")
	ErrPlanItemNotFound = errors.New("diet plan item doesn't exist")
	ErrFoodExists       = errors.New("food with such name already exists")
	ErrInvalidDate      = errors.New("invalid date")

	ErrValidation          = errors.New("validation error")
	ErrAIUnavailable       = errors.New("ai provider is not configured")
	ErrMalformedAIResponse = errors.New("ai response doesn't match expected schema")
	ErrProviderUnavailable = errors.New("lookup provider is not configured")
)
