package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/llm"
	"github.com/limbo/myfit/pkg/entity"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		Desc  string
		Raw   string
		Error error
		Want  int
	}{
		{Desc: "plain json", Raw: `{"foods":[{"name":"Arroz","calories":130,"protein":2.7,"carbs":28,"fat":0.3,"unit":"100g"}]}`, Want: 1},
		{Desc: "fenced json", Raw: "```json\n{\"foods\":[]}\n```", Want: 0},
		{Desc: "garbage", Raw: "desculpe, não consigo", Error: errorvalues.ErrMalformedAIResponse},
		{Desc: "empty", Raw: "  ", Error: errorvalues.ErrMalformedAIResponse},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var out struct {
				Foods []entity.FoodMatch `json:"foods"`
			}
			err := llm.Decode(tc.Raw, &out)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Len(t, out.Foods, tc.Want)
		})
	}
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "smith squat", llm.Plain("\"smith squat\"\n"))
	assert.Equal(t, "leg extension", llm.Plain("leg extension\nother line"))
}
