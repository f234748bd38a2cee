// Package keyref collects translation-key references from source text.
//
// A reference is a lookup call whose sole argument is a quoted literal:
// t('nav.home') or t("nav.home"). Matching is textual and deliberately
// loose — any identifier ending in t qualifies, matching the lookup
// convention of i18next-style APIs. Key path syntax is not validated.
package keyref

import "regexp"

var callRe = regexp.MustCompile(`t\(['"]([^'"]+)['"]\)`)

// Collect returns the set of key paths referenced in content. Duplicates
// collapse; order is irrelevant.
func Collect(content string) map[string]bool {
	keys := make(map[string]bool)
	for _, m := range callRe.FindAllStringSubmatch(content, -1) {
		keys[m[1]] = true
	}
	return keys
}
