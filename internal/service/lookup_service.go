package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/limbo/myfit/internal/cache"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/llm"
	"github.com/limbo/myfit/internal/metrics"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/entity"
)

const (
	minQueryLen      = 2
	localSearchLimit = 15
	kindFood         = "food"
	kindExercise     = "exercise"
)

type LookupService struct {
	foods     repository.FoodsRepositoryI
	ai        Generator
	nutrition FoodProvider
	exercises ExerciseProvider
	cache     LookupCache
	metrics   *metrics.Manager
	logger    *slog.Logger
}

type LookupDeps struct {
	Foods     repository.FoodsRepositoryI
	AI        Generator
	Nutrition FoodProvider
	Exercises ExerciseProvider
	Cache     LookupCache
	Metrics   *metrics.Manager
	Logger    *slog.Logger
}

func NewLookupService(deps LookupDeps) *LookupService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupService{
		foods:     deps.Foods,
		ai:        deps.AI,
		nutrition: deps.Nutrition,
		exercises: deps.Exercises,
		cache:     deps.Cache,
		metrics:   deps.Metrics,
		logger:    logger.With(slog.String("service", "lookup")),
	}
}

type foodCandidate struct {
	Name     string       `json:"name" validate:"required"`
	Calories entity.Grams `json:"calories"`
	Protein  entity.Grams `json:"protein"`
	Carbs    entity.Grams `json:"carbs"`
	Fat      entity.Grams `json:"fat"`
	Unit     string       `json:"unit"`
	Image    string       `json:"image"`
}

type foodCandidates struct {
	Foods []foodCandidate `json:"foods" validate:"dive"`
}

type exerciseCandidates struct {
	Exercises []entity.ExerciseMatch `json:"exercises"`
}

func (ls *LookupService) SearchFoods(ctx context.Context, uid uuid.UUID, query string) []entity.FoodMatch {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return []entity.FoodMatch{}
	}
	logger := ls.logger.With(slog.String("query", query))

	local, err := ls.foods.Search(ctx, uid, query, localSearchLimit)
	if err != nil {
		logger.Error("food search: local catalog", slog.String("error", err.Error()))
	}
	if len(local) > 0 {
		matches := make([]entity.FoodMatch, 0, len(local))
		for _, f := range local {
			matches = append(matches, entity.FoodMatch{
				Name:     f.Name,
				Calories: float64(f.Kcal),
				Protein:  f.Protein,
				Carbs:    f.Carbs,
				Fat:      f.Fat,
				Unit:     f.Portion,
			})
		}
		return matches
	}

	key := cache.Key(kindFood, query)
	var cached []entity.FoodMatch
	if ls.cacheGet(kindFood, key, &cached) {
		return cached
	}

	matches, err := ls.remoteFoods(ctx, query)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAIUnavailable) || errors.Is(err, errorvalues.ErrProviderUnavailable) {
			logger.Warn("food search: remote lookup not configured", slog.String("error", err.Error()))
		} else {
			logger.Error("food search: remote lookup", slog.String("error", err.Error()))
		}
		return []entity.FoodMatch{}
	}
	ls.cacheSet(key, matches)
	return matches
}

func (ls *LookupService) remoteFoods(ctx context.Context, query string) ([]entity.FoodMatch, error) {
	answer, err := ls.ai.Generate(ctx, llm.Request{
		Prompt: "Translate this food search query from Brazilian Portuguese to English. " +
			"Reply with the translated term only. If it is already English, repeat it unchanged: \"" + query + "\"",
	})
	if err != nil {
		return nil, err
	}
	english := strings.ToLower(llm.Plain(answer))
	if english == "" {
		return nil, errorvalues.ErrMalformedAIResponse
	}

	raw, err := ls.nutrition.SearchFoods(ctx, english)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []entity.FoodMatch{}, nil
	}

	payload, err := sonic.MarshalString(raw)
	if err != nil {
		return nil, err
	}
	answer, err = ls.ai.Generate(ctx, llm.Request{
		Prompt: "You are a nutrition database assistant. Translate the names of these foods from English to " +
			"Brazilian Portuguese keeping every nutrient value exactly as given. " +
			"Return an object with a single 'foods' array.\nData: " + payload,
		Schema: llm.FoodListSchema,
	})
	if err != nil {
		return nil, err
	}
	var parsed foodCandidates
	if err = llm.Decode(answer, &parsed); err != nil {
		return nil, err
	}
	if err = validate.Struct(parsed); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedAIResponse, err)
	}

	matches := make([]entity.FoodMatch, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		unit := f.Unit
		if unit == "" {
			unit = "100g"
		}
		matches = append(matches, entity.FoodMatch{
			Name:     f.Name,
			Calories: float64(f.Calories),
			Protein:  float64(f.Protein),
			Carbs:    float64(f.Carbs),
			Fat:      float64(f.Fat),
			Unit:     unit,
			Image:    f.Image,
		})
	}
	return matches, nil
}

func (ls *LookupService) SearchExercises(ctx context.Context, query string) []entity.ExerciseMatch {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return []entity.ExerciseMatch{}
	}
	logger := ls.logger.With(slog.String("query", query))

	key := cache.Key(kindExercise, query)
	var cached []entity.ExerciseMatch
	if ls.cacheGet(kindExercise, key, &cached) {
		return cached
	}

	matches, err := ls.remoteExercises(ctx, query)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAIUnavailable) || errors.Is(err, errorvalues.ErrProviderUnavailable) {
			logger.Warn("exercise search: remote lookup not configured", slog.String("error", err.Error()))
		} else {
			logger.Error("exercise search: remote lookup", slog.String("error", err.Error()))
		}
		return []entity.ExerciseMatch{}
	}
	ls.cacheSet(key, matches)
	return matches
}

func (ls *LookupService) remoteExercises(ctx context.Context, query string) ([]entity.ExerciseMatch, error) {
	answer, err := ls.ai.Generate(ctx, llm.Request{
		Prompt: "Turn this Brazilian Portuguese exercise name into the short English search term (1-3 words) " +
			"most likely to match an English exercise database. Reply with the term only.\n" +
			"Examples: \"Agachamento Smith\" -> smith squat; \"Cadeira extensora\" -> leg extension.\n" +
			"Term: \"" + query + "\"",
	})
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(llm.Plain(answer))
	if term == "" {
		return nil, errorvalues.ErrMalformedAIResponse
	}

	raw, err := ls.exercises.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		words := strings.Fields(term)
		if last := words[len(words)-1]; last != term {
			raw, err = ls.exercises.SearchByName(ctx, last)
			if err != nil {
				ls.logger.Warn("exercise search: fallback term", slog.String("term", last), slog.String("error", err.Error()))
				raw = nil
			}
		}
	}
	if len(raw) == 0 {
		return []entity.ExerciseMatch{}, nil
	}

	payload, err := sonic.MarshalString(raw)
	if err != nil {
		return nil, err
	}
	answer, err = ls.ai.Generate(ctx, llm.Request{
		Prompt: "Translate these exercises from English to Brazilian Portuguese. Keep id and gifUrl exactly the same. " +
			"Return an object with a single 'exercises' array.\nData: " + payload,
		Schema: llm.ExerciseListSchema,
	})
	if err != nil {
		return nil, err
	}
	var parsed exerciseCandidates
	if err = llm.Decode(answer, &parsed); err != nil {
		return nil, err
	}

	// gif urls are taken from upstream, never from the model
	gifs := make(map[string]string, len(raw))
	for _, r := range raw {
		gifs[r.ID] = r.GifURL
	}
	matches := make([]entity.ExerciseMatch, 0, len(parsed.Exercises))
	for _, ex := range parsed.Exercises {
		if ex.Name == "" {
			continue
		}
		if gif, ok := gifs[ex.ID]; ok {
			ex.GifURL = gif
		}
		matches = append(matches, ex)
	}
	return matches, nil
}

func (ls *LookupService) ExerciseImage(ctx context.Context, exerciseID string) ([]byte, string, error) {
	if err := validate.Var(exerciseID, "required,alphanum,max=16"); err != nil {
		return nil, "", errorvalues.ErrValidation
	}
	data, contentType, err := ls.exercises.Image(ctx, exerciseID)
	if err != nil {
		return nil, "", err
	}
	if contentType == "" {
		contentType = "image/gif"
	}
	return data, contentType, nil
}

func (ls *LookupService) cacheGet(kind string, key []byte, out any) bool {
	if ls.cache == nil {
		return false
	}
	hit := ls.cache.Get(key, out)
	if ls.metrics != nil {
		result := "miss"
		if hit {
			result = "hit"
		}
		ls.metrics.CounterLookupCache.WithLabelValues(kind, result).Inc()
	}
	return hit
}

func (ls *LookupService) cacheSet(key []byte, value any) {
	if ls.cache == nil {
		return
	}
	if err := ls.cache.Set(key, value); err != nil {
		ls.logger.Warn("lookup cache: storing", slog.String("error", err.Error()))
	}
}
