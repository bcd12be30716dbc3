package htmltag

import (
	"html/template"

	"github.com/goliatone/go-htmltag/pkg/sanitize"
	"github.com/goliatone/go-htmltag/pkg/stringify"
)

// TrustedHTML is implemented by values whose text must be inserted without
// escaping.
type TrustedHTML interface {
	TrustedHTML() string
}

// TrustedString holds markup the caller asserts is already safe. The zero
// value is an empty trusted string.
type TrustedString struct {
	str string
}

// Trusted wraps str so the composer inserts it verbatim. The payload is not
// validated; the caller is responsible for its safety.
func Trusted(str string) TrustedString {
	return TrustedString{str: str}
}

// Sanitized cleans raw with the user-generated-content policy from
// pkg/sanitize and wraps the result as trusted markup.
func Sanitized(raw string) TrustedString {
	return Trusted(sanitize.Markup(raw))
}

// TrustedHTML returns the wrapped payload.
func (t TrustedString) TrustedHTML() string {
	return t.str
}

func (t TrustedString) String() string {
	return t.str
}

// trustedPayload classifies value. Nil pointers are never trusted, even when
// their type implements TrustedHTML with a value receiver.
func trustedPayload(value any) (string, bool) {
	if stringify.Nil(value) {
		return "", false
	}
	switch v := value.(type) {
	case TrustedHTML:
		return v.TrustedHTML(), true
	case template.HTML:
		return string(v), true
	default:
		return "", false
	}
}
