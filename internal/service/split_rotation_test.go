package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository/mocks"
	"github.com/limbo/myfit/internal/service"
	"github.com/limbo/myfit/pkg/entity"
)

func TestNextSplit(t *testing.T) {
	testCases := []struct {
		Desc     string
		Sequence string
		Last     string
		HasLast  bool
		Expected string
	}{
		{Desc: "no previous workout", Sequence: "ABC", Expected: "A"},
		{Desc: "middle of rotation", Sequence: "ABC", Last: "B", HasLast: true, Expected: "C"},
		{Desc: "wraps around", Sequence: "ABC", Last: "C", HasLast: true, Expected: "A"},
		{Desc: "case insensitive", Sequence: "ABCD", Last: "b", HasLast: true, Expected: "C"},
		{Desc: "sequence shrank after last workout", Sequence: "AB", Last: "C", HasLast: true, Expected: "A"},
		{Desc: "single label", Sequence: "A", Last: "A", HasLast: true, Expected: "A"},
		{Desc: "unordered sequence", Sequence: "CAB", Last: "A", HasLast: true, Expected: "B"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got := service.NextSplit(service.SplitSequence(tc.Sequence), tc.Last, tc.HasLast)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestNextSplitRotationProperty(t *testing.T) {
	for _, split := range []string{"A", "AB", "ABC", "ABCD", "DCBA", "BD"} {
		seq := service.SplitSequence(split)
		for i, label := range seq {
			assert.Equal(t, seq[(i+1)%len(seq)], service.NextSplit(seq, label, true), "split %s after %s", split, label)
		}
		assert.Equal(t, seq[0], service.NextSplit(seq, "", false))
		assert.Equal(t, seq[0], service.NextSplit(seq, "Z", true))
	}
}

func TestSplitDisplayName(t *testing.T) {
	testCases := []struct {
		Desc     string
		Label    string
		Groups   []string
		Expected string
	}{
		{Desc: "two groups", Label: "A", Groups: []string{"Peito", "Peito", "", "Ombros", "Braços"}, Expected: "Treino A — Peito & Ombros"},
		{Desc: "one group", Label: "C", Groups: []string{"Pernas"}, Expected: "Treino C — Pernas"},
		{Desc: "fallback A", Label: "A", Expected: "Treino A — Empurre"},
		{Desc: "fallback B", Label: "B", Groups: []string{"", " "}, Expected: "Treino B — Puxe"},
		{Desc: "fallback other", Label: "D", Expected: "Treino D — Pernas"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.SplitDisplayName(tc.Label, tc.Groups))
		})
	}
}

func TestNextWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	settingsRepo := mocks.NewMockSettingsRepositoryI(ctrl)
	exercisesRepo := mocks.NewMockExercisesRepositoryI(ctrl)
	logsRepo := mocks.NewMockWorkoutLogsRepositoryI(ctrl)
	serv := service.NewWorkoutService(settingsRepo, exercisesRepo, logsRepo, nil)

	uid := uuid.New()
	fallback := entity.NextWorkout{Label: "A", DisplayName: "Treino A — Empurre"}
	testCases := []struct {
		Desc         string
		Expected     entity.NextWorkout
		MockPrepFunc func()
	}{
		{
			Desc:     "rotates after last logged split",
			Expected: entity.NextWorkout{Label: "C", DisplayName: "Treino C — Pernas & Glúteos"},
			MockPrepFunc: func() {
				settingsRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.UserSettings{UserID: uid, WorkoutSplit: "ABC"}, nil)
				logsRepo.EXPECT().LastSplit(gomock.Any(), uid).Return("B", nil)
				exercisesRepo.EXPECT().MuscleGroupsBySplit(gomock.Any(), uid, "C").Return([]string{"Pernas", "Glúteos", "Pernas"}, nil)
			},
		},
		{
			Desc:     "first workout ever",
			Expected: entity.NextWorkout{Label: "A", DisplayName: "Treino A — Empurre"},
			MockPrepFunc: func() {
				settingsRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.UserSettings{UserID: uid, WorkoutSplit: "AB"}, nil)
				logsRepo.EXPECT().LastSplit(gomock.Any(), uid).Return("", errorvalues.ErrNoWorkoutLogs)
				exercisesRepo.EXPECT().MuscleGroupsBySplit(gomock.Any(), uid, "A").Return(nil, nil)
			},
		},
		{
			Desc:     "split changed after last workout",
			Expected: entity.NextWorkout{Label: "A", DisplayName: "Treino A — Peito"},
			MockPrepFunc: func() {
				settingsRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.UserSettings{UserID: uid, WorkoutSplit: "AB"}, nil)
				logsRepo.EXPECT().LastSplit(gomock.Any(), uid).Return("C", nil)
				exercisesRepo.EXPECT().MuscleGroupsBySplit(gomock.Any(), uid, "A").Return([]string{"Peito"}, nil)
			},
		},
		{
			Desc:     "settings unavailable",
			Expected: fallback,
			MockPrepFunc: func() {
				settingsRepo.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("connection refused"))
			},
		},
		{
			Desc:     "logs unavailable",
			Expected: fallback,
			MockPrepFunc: func() {
				settingsRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.UserSettings{UserID: uid, WorkoutSplit: "BC"}, nil)
				logsRepo.EXPECT().LastSplit(gomock.Any(), uid).Return("", errors.New("connection refused"))
			},
		},
		{
			Desc:     "muscle groups unavailable",
			Expected: fallback,
			MockPrepFunc: func() {
				settingsRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.UserSettings{UserID: uid, WorkoutSplit: "BC"}, nil)
				logsRepo.EXPECT().LastSplit(gomock.Any(), uid).Return("B", nil)
				exercisesRepo.EXPECT().MuscleGroupsBySplit(gomock.Any(), uid, "C").Return(nil, errors.New("timeout"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			assert.Equal(t, tc.Expected, serv.NextWorkout(context.Background(), uid))
		})
	}
}
