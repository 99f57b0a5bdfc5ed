package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/llm"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/bizday"
	"github.com/limbo/myfit/pkg/entity"
)

const (
	insightDays          = 7
	maxExamImageBytes    = 8 << 20
	insightNotConfigured = "Configuração da IA pendente. Defina GOOGLE_GEMINI_API_KEY no ambiente do servidor."
	insightFailed        = "Ocorreu um erro ao processar seu insight. Tente novamente em alguns instantes."
	examNotConfigured    = "Análise por IA indisponível no momento."
	examUnreadable       = "Não foi possível ler os dados do exame. Envie uma foto mais nítida."
	examFailed           = "Erro ao analisar o exame. Tente novamente."
)

type CoachService struct {
	settings repository.SettingsRepositoryI
	logs     repository.WorkoutLogsRepositoryI
	meals    repository.MealsRepositoryI
	body     repository.BodyCompositionRepositoryI
	ai       Generator
	logger   *slog.Logger
	now      func() time.Time
}

func NewCoachService(settings repository.SettingsRepositoryI, logs repository.WorkoutLogsRepositoryI, meals repository.MealsRepositoryI,
	body repository.BodyCompositionRepositoryI, ai Generator, logger *slog.Logger) *CoachService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CoachService{
		settings: settings,
		logs:     logs,
		meals:    meals,
		body:     body,
		ai:       ai,
		logger:   logger.With(slog.String("service", "coach")),
		now:      time.Now,
	}
}

func (cs *CoachService) WeeklyInsight(ctx context.Context, uid uuid.UUID) string {
	logger := cs.logger.With(slog.String("uid", uid.String()))
	now := cs.now()
	firstDay := bizday.DaysAgo(now, insightDays)
	from, _, _ := bizday.Bounds(firstDay)
	_, to, _ := bizday.Bounds(bizday.Today(now))
	fromDate, _ := bizday.Parse(firstDay)
	toDate, _ := bizday.Parse(bizday.Today(now))

	settings, err := loadSettings(ctx, cs.settings, uid)
	if err != nil {
		logger.Error("weekly insight: loading settings", slog.String("error", err.Error()))
		return insightFailed
	}
	logs, err := cs.logs.ListBetween(ctx, uid, from, to)
	if err != nil {
		logger.Error("weekly insight: loading workout logs", slog.String("error", err.Error()))
		return insightFailed
	}
	meals, err := cs.meals.ListBetween(ctx, uid, fromDate, toDate)
	if err != nil {
		logger.Error("weekly insight: loading meals", slog.String("error", err.Error()))
		return insightFailed
	}

	text, err := cs.ai.Generate(ctx, llm.Request{Prompt: insightPrompt(settings.AIContext, logs, LoggedMeals(meals))})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAIUnavailable) {
			return insightNotConfigured
		}
		logger.Error("weekly insight: generating", slog.String("error", err.Error()))
		return insightFailed
	}
	return text
}

func insightPrompt(goal string, logs []entity.WorkoutLogView, meals []entity.MealLog) string {
	if strings.TrimSpace(goal) == "" {
		goal = "Sem objetivo específico cadastrado."
	}

	var training strings.Builder
	for _, l := range logs {
		fmt.Fprintf(&training, "- %s %s: %gkg x %d", bizday.Of(l.CreatedAt), l.ExerciseName, l.Weight, l.Reps)
		if l.Notes != "" {
			fmt.Fprintf(&training, " (nota: %s)", l.Notes)
		}
		training.WriteString("\n")
	}
	if training.Len() == 0 {
		training.WriteString("Nenhum treino registrado.\n")
	}

	var diet strings.Builder
	for _, m := range meals {
		items, _ := sonic.MarshalString(m.Items)
		totals := AggregateMacros([]entity.MealLog{m})
		fmt.Fprintf(&diet, "- %s %s (%.0f kcal): %s\n", m.Date, m.MealName, totals.Calories, items)
	}
	if diet.Len() == 0 {
		diet.WriteString("Nenhuma refeição registrada.\n")
	}

	return "Você é o treinador virtual do MyFit. Tom motivador, técnico e direto.\n\n" +
		"OBJETIVO DO USUÁRIO:\n" + goal + "\n\n" +
		"TREINOS DOS ÚLTIMOS 7 DIAS:\n" + training.String() + "\n" +
		"REFEIÇÕES DOS ÚLTIMOS 7 DIAS:\n" + diet.String() + "\n" +
		"TAREFAS:\n" +
		"1. Avalie se treino e dieta estão alinhados ao objetivo, considerando as notas sobre desconforto ou fluidez.\n" +
		"2. Dê um insight prático para a próxima semana.\n" +
		"3. Seja breve: no máximo 4 parágrafos curtos."
}

type bodyCompositionReading struct {
	WeightKg       float64 `json:"weight_kg" validate:"gt=0,lt=400"`
	BodyFatPct     float64 `json:"body_fat_pct" validate:"gte=0,lt=80"`
	MuscleMassKg   float64 `json:"muscle_mass_kg" validate:"gte=0,lt=200"`
	VisceralFat    float64 `json:"visceral_fat" validate:"gte=0,lte=60"`
	BasalMetabolic int     `json:"basal_metabolic_rate" validate:"gte=0,lte=10000"`
	BodyWaterPct   float64 `json:"body_water_pct" validate:"gte=0,lte=100"`
}

const bioimpedancePrompt = "Extraia os dados desta imagem de exame de bioimpedância. " +
	"Use kg para massas e porcentagem para gordura corporal e água. " +
	"Campos ausentes devem ser 0. Responda apenas com o JSON pedido."

func (cs *CoachService) AnalyzeBioimpedance(ctx context.Context, uid uuid.UUID, image []byte, mime string) entity.Result[entity.BodyComposition] {
	logger := cs.logger.With(slog.String("uid", uid.String()))
	if len(image) == 0 || len(image) > maxExamImageBytes {
		return entity.Result[entity.BodyComposition]{Error: "Envie uma imagem de até 8 MB."}
	}
	if mime == "" {
		mime = http.DetectContentType(image)
	}
	if !strings.HasPrefix(mime, "image/") {
		return entity.Result[entity.BodyComposition]{Error: "O arquivo enviado não é uma imagem."}
	}

	raw, err := cs.ai.Generate(ctx, llm.Request{
		Prompt:    bioimpedancePrompt,
		Image:     image,
		ImageMIME: mime,
		Schema:    llm.BodyCompositionSchema,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAIUnavailable) {
			return entity.Result[entity.BodyComposition]{Error: examNotConfigured}
		}
		logger.Error("bioimpedance: generating", slog.String("error", err.Error()))
		return entity.Result[entity.BodyComposition]{Error: examFailed}
	}

	var reading bodyCompositionReading
	if err = llm.Decode(raw, &reading); err != nil {
		logger.Warn("bioimpedance: decoding", slog.String("error", err.Error()))
		return entity.Result[entity.BodyComposition]{Error: examUnreadable}
	}
	if err = validate.Struct(reading); err != nil {
		logger.Warn("bioimpedance: reading out of range", slog.String("error", err.Error()))
		return entity.Result[entity.BodyComposition]{Error: examUnreadable}
	}

	bc := entity.BodyComposition{
		UserID:         uid,
		WeightKg:       reading.WeightKg,
		BodyFatPct:     reading.BodyFatPct,
		MuscleMassKg:   reading.MuscleMassKg,
		VisceralFat:    reading.VisceralFat,
		BasalMetabolic: reading.BasalMetabolic,
		BodyWaterPct:   reading.BodyWaterPct,
		RecordedAt:     cs.now(),
	}
	id, err := cs.body.Create(ctx, &bc)
	if err != nil {
		logger.Error("bioimpedance: saving", slog.String("error", err.Error()))
		return entity.Result[entity.BodyComposition]{Error: examFailed}
	}
	bc.ID = id
	return entity.Result[entity.BodyComposition]{Success: true, Data: &bc}
}

func (cs *CoachService) BodyCompositionHistory(ctx context.Context, uid uuid.UUID, limit int) ([]entity.BodyComposition, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	history, err := cs.body.List(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("body composition repository error: " + err.Error())
	}
	return history, nil
}
