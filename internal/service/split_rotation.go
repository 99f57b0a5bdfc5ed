package service

import (
	"slices"
	"strings"

	"github.com/limbo/myfit/pkg/entity"
)

var fallbackWorkout = entity.NextWorkout{Label: "A", DisplayName: "Treino A — Empurre"}

// SplitSequence breaks the stored split string into labels.
func SplitSequence(split string) []string {
	seq := make([]string, 0, len(split))
	for _, r := range strings.ToUpper(split) {
		seq = append(seq, string(r))
	}
	return seq
}

// NextSplit picks the label after last in sequence, wrapping around.
// Without a previous workout, or when last is no longer in the sequence, the first label is used.
func NextSplit(sequence []string, last string, hasLast bool) string {
	if len(sequence) == 0 {
		return fallbackWorkout.Label
	}
	if !hasLast {
		return sequence[0]
	}
	for i, label := range sequence {
		if strings.EqualFold(label, last) {
			return sequence[(i+1)%len(sequence)]
		}
	}
	return sequence[0]
}

// SplitDisplayName renders "Treino X — muscles" from at most two distinct muscle groups.
func SplitDisplayName(label string, muscleGroups []string) string {
	distinct := make([]string, 0, 2)
	for _, g := range muscleGroups {
		g = strings.TrimSpace(g)
		if g == "" || slices.Contains(distinct, g) {
			continue
		}
		distinct = append(distinct, g)
		if len(distinct) == 2 {
			break
		}
	}

	muscles := strings.Join(distinct, " & ")
	if muscles == "" {
		switch label {
		case "A":
			muscles = "Empurre"
		case "B":
			muscles = "Puxe"
		default:
			muscles = "Pernas"
		}
	}
	return "Treino " + label + " — " + muscles
}
