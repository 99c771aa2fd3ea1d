package engine

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// Match selects the rule to apply to an order.
//
// Rules are evaluated in list order, the first rule with any keyword
// matching any searchable field of any line item wins and the remaining
// rules are not evaluated. Matching is case-insensitive. Plain keywords
// match as substrings, keywords containing "*" are treated as glob
// patterns.
//
// The second return value is false when no rule matches. The order is
// then processed without allocation components.
func Match(lineItems []LineItem, rules []Rule) (Rule, bool) {
	fields := make([]string, 0, len(lineItems))
	for _, item := range lineItems {
		for _, field := range item.SearchableFields() {
			fields = append(fields, strings.ToLower(field))
		}
	}

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			pattern := keywordPattern(keyword)

			for _, field := range fields {
				if glob.Glob(pattern, field) {
					return rule, true
				}
			}
		}
	}

	return Rule{}, false
}

// keywordPattern wraps plain keywords in wildcards so that they match
// as substrings. Keywords that already contain a wildcard are used
// verbatim.
func keywordPattern(keyword string) string {
	keyword = strings.ToLower(keyword)
	if strings.Contains(keyword, glob.GLOB) {
		return keyword
	}

	return glob.GLOB + keyword + glob.GLOB
}
