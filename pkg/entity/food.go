package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Grams is a macro amount. Decoding never fails: null, missing and non-numeric values become zero,
// numeric strings are parsed.
type Grams float64

func (g *Grams) UnmarshalJSON(data []byte) error {
	*g = 0
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*g = Grams(v)
	return nil
}

type FoodItem struct {
	Name     string `json:"name"`
	Protein  Grams  `json:"protein"`
	Carbs    Grams  `json:"carbs"`
	Fat      Grams  `json:"fat"`
	Quantity Grams  `json:"qty"`
}

// UnmarshalJSON keeps an item even when some of its fields are malformed. A non-string name keeps
// its literal text, an element that is not an object decodes to the zero item.
func (f *FoodItem) UnmarshalJSON(data []byte) error {
	*f = FoodItem{}
	var raw struct {
		Name     json.RawMessage `json:"name"`
		Protein  Grams           `json:"protein"`
		Carbs    Grams           `json:"carbs"`
		Fat      Grams           `json:"fat"`
		Quantity Grams           `json:"qty"`
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil
	}
	f.Name = itemName(raw.Name)
	f.Protein, f.Carbs, f.Fat, f.Quantity = raw.Protein, raw.Carbs, raw.Fat, raw.Quantity
	return nil
}

func itemName(raw json.RawMessage) string {
	var name string
	if err := sonic.Unmarshal(raw, &name); err == nil {
		return name
	}
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" || text[0] == '{' || text[0] == '[' {
		return ""
	}
	return text
}

// Calories derives energy from macros. It is the only place the 4/4/9 formula lives.
func (f FoodItem) Calories() float64 {
	return MacroCalories(float64(f.Protein), float64(f.Carbs), float64(f.Fat))
}

func MacroCalories(protein, carbs, fat float64) float64 {
	return protein*KcalPerGramProtein + carbs*KcalPerGramCarbs + fat*KcalPerGramFat
}

// Add accumulates one item into the totals.
func (t *MacroTotals) Add(item FoodItem) {
	t.Protein += float64(item.Protein)
	t.Carbs += float64(item.Carbs)
	t.Fat += float64(item.Fat)
	t.Calories += item.Calories()
}
