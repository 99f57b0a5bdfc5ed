package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/internal/service"
	"github.com/limbo/myfit/pkg/entity"
)

const seedTimeout = 2 * time.Minute

var (
	seedFile string
	seedUser string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load seed data",
}

var seedFoodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Load the shared food catalog, existing names are kept",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()
		foods, err := parseFoodSeed(f)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
		defer cancel()
		pool := repository.NewPool(dbConfig())
		defer pool.Close()
		inserted, err := repository.NewFoodsRepo(pool).SeedSystem(ctx, foods)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d of %d foods\n", inserted, len(foods))
		return nil
	},
}

var seedPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Replace a user's diet protocol with the plan from file",
	RunE: func(cmd *cobra.Command, args []string) error {
		uid, err := uuid.Parse(seedUser)
		if err != nil {
			return fmt.Errorf("--user must be a user id: %w", err)
		}
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()
		plan, err := parsePlanSeed(f)
		if err != nil {
			return err
		}

		service.InitValidator()
		ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
		defer cancel()
		pool := repository.NewPool(dbConfig())
		defer pool.Close()
		diet := service.NewDietService(repository.NewMealsRepo(pool), repository.NewDietPlanRepo(pool),
			repository.NewFoodsRepo(pool), repository.NewWorkoutLogsRepo(pool), nil)
		if err = diet.ReplacePlan(ctx, uid, plan); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Diet plan of %s replaced with %d meals\n", uid, len(plan))
		return nil
	},
}

// foodSeed mirrors the catalog export, which keeps the portuguese column names.
type foodSeed struct {
	Name    string  `json:"nome"`
	Group   string  `json:"grupo"`
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"prot"`
	Carbs   float64 `json:"carb"`
	Fat     float64 `json:"gord"`
	Portion string  `json:"porcao"`
}

func parseFoodSeed(r io.Reader) ([]entity.Food, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var rows []foodSeed
	if err = sonic.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode food seed: %w", err)
	}
	foods := make([]entity.Food, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("food seed row %d: empty name", i)
		}
		portion := strings.TrimSpace(row.Portion)
		if portion == "" {
			portion = "100g"
		}
		foods = append(foods, entity.Food{
			Name:    name,
			Group:   strings.TrimSpace(row.Group),
			Kcal:    int(math.Round(row.Kcal)),
			Protein: row.Protein,
			Carbs:   row.Carbs,
			Fat:     row.Fat,
			Portion: portion,
		})
	}
	return foods, nil
}

func parsePlanSeed(r io.Reader) ([]service.PlanItemRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var items []entity.DietPlanItem
	if err = sonic.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode diet plan: %w", err)
	}
	reqs := make([]service.PlanItemRequest, 0, len(items))
	for _, item := range items {
		reqs = append(reqs, service.PlanItemRequest{
			MealName:       item.MealName,
			ScheduledTime:  item.ScheduledTime,
			TargetProtein:  item.TargetProtein,
			TargetCarbs:    item.TargetCarbs,
			TargetFat:      item.TargetFat,
			TargetCalories: item.TargetCalories,
			Suggestions:    item.Suggestions,
			Items:          item.Items,
			Substitutions:  item.Substitutions,
			Order:          item.Order,
		})
	}
	return reqs, nil
}

func init() {
	seedCmd.PersistentFlags().StringVar(&seedFile, "file", "", "JSON file to load")
	seedCmd.MarkPersistentFlagRequired("file")
	seedPlanCmd.Flags().StringVar(&seedUser, "user", "", "Id of the user owning the plan")
	seedPlanCmd.MarkFlagRequired("user")
	seedCmd.AddCommand(seedFoodsCmd, seedPlanCmd)
}
