// Package catalog holds the static, read-only reference tables (currencies,
// cards, carriers, exchange guidance, visa requirements) consulted alongside
// the model's answers. All lookups are pure and safe for concurrent use.
package catalog

import "strings"

// rule maps destination keywords to a catalog key. Rules are evaluated in
// declared order and the first keyword contained in the destination wins, so
// rule order is part of the contract.
type rule struct {
	key      string
	keywords []string
}

func matchKey(destination string, rules []rule, fallback string) string {
	d := strings.ToLower(destination)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(d, kw) {
				return r.key
			}
		}
	}
	return fallback
}
