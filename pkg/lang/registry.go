package lang

import (
	"fmt"
	"strings"
)

// Registry resolves free-text language names to short, anonymized codes.
//
// Resolution is tolerant: aliases cover common English and Hebrew spellings
// and frequent typos, and multi-value input ("Hebrew, Russian") resolves to
// the first token that maps to a code. Strings that match nothing mint a new
// stable code, so two records carrying the same unknown language string
// still match each other.
//
// A Registry is deliberately an injected value, not a package singleton:
// each matching run constructs or seeds its own instance, which keeps runs
// reproducible and tests isolated. Minted codes can be exported and re-seeded
// so codes stay stable across runs.
type Registry struct {
	aliases map[string]string
	minted  map[string]string
	nextID  int
}

// NewRegistry creates a registry pre-loaded with the built-in alias table.
func NewRegistry() *Registry {
	r := &Registry{
		aliases: make(map[string]string, len(builtinAliases)),
		minted:  make(map[string]string),
		nextID:  1,
	}
	for alias, code := range builtinAliases {
		r.aliases[normalize(alias)] = code
	}
	return r
}

// Resolve maps a free-text language string to a code.
// Returns "" only for empty/blank input; any non-blank string resolves,
// minting a new code when nothing matches.
func (r *Registry) Resolve(freeText string) string {
	if strings.TrimSpace(freeText) == "" {
		return ""
	}

	// Multi-value input: first resolvable token wins
	tokens := splitTokens(freeText)
	for _, token := range tokens {
		if code, ok := r.aliases[token]; ok {
			return code
		}
		if code, ok := r.minted[token]; ok {
			return code
		}
	}

	// Nothing matched: mint a code for the first token so identical
	// unknown strings keep matching each other
	return r.mint(tokens[0])
}

// Match reports whether two resolved codes count as a language match.
// See the package-level Match; exposed as a method so the registry
// satisfies the matcher's LanguageResolver interface.
func (r *Registry) Match(codeA, codeB string) bool {
	return Match(codeA, codeB)
}

// Seed registers previously minted codes so they stay stable across runs.
// The counter advances past seeded codes to avoid collisions.
func (r *Registry) Seed(minted map[string]string) {
	for text, code := range minted {
		key := normalize(text)
		r.minted[key] = code

		var n int
		if _, err := fmt.Sscanf(code, "X%d", &n); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
}

// Minted returns a copy of the codes minted or seeded on this registry,
// keyed by normalized source text.
func (r *Registry) Minted() map[string]string {
	out := make(map[string]string, len(r.minted))
	for k, v := range r.minted {
		out[k] = v
	}
	return out
}

func (r *Registry) mint(normalized string) string {
	code := fmt.Sprintf("X%d", r.nextID)
	r.nextID++
	r.minted[normalized] = code
	return code
}

// splitTokens breaks multi-value input on common separators and
// normalizes each token. Always returns at least one token for
// non-blank input.
func splitTokens(freeText string) []string {
	raw := strings.FieldsFunc(freeText, func(c rune) bool {
		return c == ',' || c == '/' || c == ';' || c == '&' || c == '+'
	})

	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if n := normalize(t); n != "" {
			tokens = append(tokens, n)
		}
	}
	if len(tokens) == 0 {
		tokens = append(tokens, normalize(freeText))
	}
	return tokens
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}
