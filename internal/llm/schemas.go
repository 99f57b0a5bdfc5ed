package llm

import "google.golang.org/genai"

func str() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
func num() *genai.Schema { return &genai.Schema{Type: genai.TypeNumber} }

// FoodListSchema describes {"foods": [...]} with nutrition per unit.
var FoodListSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"foods": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     str(),
					"calories": num(),
					"protein":  num(),
					"carbs":    num(),
					"fat":      num(),
					"unit":     str(),
					"image":    str(),
				},
				Required: []string{"name", "calories", "protein", "carbs", "fat", "unit"},
			},
		},
	},
	Required: []string{"foods"},
}

// ExerciseListSchema describes {"exercises": [...]}.
var ExerciseListSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"exercises": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":           str(),
					"name":         str(),
					"targetMuscle": str(),
					"equipment":    str(),
					"gifUrl":       str(),
				},
				Required: []string{"id", "name", "targetMuscle", "equipment", "gifUrl"},
			},
		},
	},
	Required: []string{"exercises"},
}

// BodyCompositionSchema describes one bioimpedance reading.
var BodyCompositionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"weight_kg":            num(),
		"body_fat_pct":         num(),
		"muscle_mass_kg":       num(),
		"visceral_fat":         num(),
		"basal_metabolic_rate": {Type: genai.TypeInteger},
		"body_water_pct":       num(),
	},
	Required: []string{"weight_kg", "body_fat_pct", "muscle_mass_kg"},
}
