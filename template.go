package htmltag

// Template is a reusable set of fragments, the counterpart of the strings
// array a tagged template literal carries between calls. A template built
// from no fragments holds a single empty fragment, so it takes no values and
// renders as the empty string. The zero Template behaves the same way and
// uses the Default composer.
type Template struct {
	fragments []string
	composer  *Composer
}

// New captures fragments for repeated execution with the Default composer.
func New(fragments ...string) *Template {
	return Default.Template(fragments...)
}

// Template captures fragments bound to c.
func (c *Composer) Template(fragments ...string) *Template {
	captured := make([]string, len(fragments))
	copy(captured, fragments)
	return &Template{fragments: captured, composer: c}
}

// Slots returns the number of values Execute expects.
func (t *Template) Slots() int {
	return len(t.parts()) - 1
}

// Execute renders the template with values, returning ErrFragmentCount when
// the value count does not match Slots.
func (t *Template) Execute(values ...any) (string, error) {
	composer := t.composer
	if composer == nil {
		composer = Default
	}
	return composer.Compose(t.parts(), values)
}

// MustExecute is like Execute but panics on a count mismatch. It suits
// templates declared as package-level variables.
func (t *Template) MustExecute(values ...any) string {
	out, err := t.Execute(values...)
	if err != nil {
		panic(err)
	}
	return out
}

// Fragments returns a copy of the captured fragments.
func (t *Template) Fragments() []string {
	parts := t.parts()
	out := make([]string, len(parts))
	copy(out, parts)
	return out
}

func (t *Template) parts() []string {
	if len(t.fragments) == 0 {
		return []string{""}
	}
	return t.fragments
}
