package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy

	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// Markup cleans untrusted markup down to a user-generated-content allowlist
// (formatting, links, lists, tables, images). Scripts, event handlers and
// unsafe URLs are removed. Blank input yields an empty string.
func Markup(raw string) string {
	return clean(markupSanitizer(), raw)
}

// Strict removes every element and returns only the text content, with the
// text itself HTML-escaped by bluemonday.
func Strict(raw string) string {
	return clean(strictSanitizer(), raw)
}

func clean(policy *bluemonday.Policy, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		policy.AllowAttrs("class").Globally()
		markupPolicy = policy
	})
	return markupPolicy
}

func strictSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
