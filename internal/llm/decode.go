package llm

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/myfit/internal/error_values"
)

// Decode parses a structured model answer into out. Markdown code fences around the payload are tolerated.
func Decode(raw string, out any) error {
	payload := stripFences(raw)
	if payload == "" {
		return errorvalues.ErrMalformedAIResponse
	}
	if err := sonic.UnmarshalString(payload, out); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrMalformedAIResponse, err.Error())
	}
	return nil
}

// Plain cleans a free-text answer used as a search term.
func Plain(raw string) string {
	s := strings.TrimSpace(stripFences(raw))
	s = strings.NewReplacer(`"`, "", "'", "").Replace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
