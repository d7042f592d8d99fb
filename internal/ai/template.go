package ai

import (
	"fmt"
	"regexp"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// FormatTemplate substitutes {key} placeholders in tmpl from ctx. A key the
// context does not carry is replaced with a visible <key_unavailable> marker
// instead of failing; formatting a prompt must never abort a turn.
func FormatTemplate(tmpl string, ctx map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := match[1 : len(match)-1]
		if val, ok := ctx[key]; ok {
			return val
		}
		return fmt.Sprintf("<%s_unavailable>", key)
	})
}
