package htmltag

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-htmltag/pkg/escape"
	"github.com/goliatone/go-htmltag/pkg/stringify"
)

// Option customises a Composer.
type Option func(*Composer)

// WithEscaper replaces the escaper applied to plain values.
func WithEscaper(fn func(string) string) Option {
	return func(c *Composer) {
		if fn != nil {
			c.escape = fn
		}
	}
}

// WithStringifier replaces the conversion used to turn plain values into text
// before escaping.
func WithStringifier(fn func(any) string) Option {
	return func(c *Composer) {
		if fn != nil {
			c.stringify = fn
		}
	}
}

// WithRenderFalsy disables the falsy-skip rule when enabled, so values such as
// 0 and false are stringified and escaped like any other plain value. Nil
// values still render as nothing.
func WithRenderFalsy(enabled bool) Option {
	return func(c *Composer) {
		c.renderFalsy = enabled
	}
}

// WithLogger attaches a logger. Dropped falsy values are reported at debug
// level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer joins fragments and values into HTML. A Composer is immutable once
// built and safe for concurrent use. The zero value is usable and behaves like
// NewComposer with no options.
type Composer struct {
	escape      func(string) string
	stringify   func(any) string
	renderFalsy bool
	logger      *zap.Logger
}

// Default is the composer behind the package-level HTML and Compose helpers.
var Default = NewComposer()

// NewComposer constructs a Composer applying any provided options on top of
// the built-in escaper and stringifier.
func NewComposer(options ...Option) *Composer {
	c := &Composer{
		escape:    escape.String,
		stringify: stringify.String,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// HTML composes fragments and values with the Default composer.
func HTML(fragments []string, values ...any) string {
	return Default.HTML(fragments, values...)
}

// Compose composes with the Default composer, rejecting mismatched counts.
func Compose(fragments []string, values []any) (string, error) {
	return Default.Compose(fragments, values)
}

// HTML writes each fragment verbatim followed by the value at the same
// position. Values beyond len(fragments)-1 are ignored and missing values
// render as nothing.
func (c *Composer) HTML(fragments []string, values ...any) string {
	var out strings.Builder
	for i, fragment := range fragments {
		out.WriteString(fragment)
		if i >= len(fragments)-1 || i >= len(values) {
			continue
		}
		out.WriteString(c.value(i, values[i]))
	}
	return out.String()
}

// Compose behaves like HTML but returns ErrFragmentCount unless
// len(fragments) == len(values)+1.
func (c *Composer) Compose(fragments []string, values []any) (string, error) {
	if len(fragments) != len(values)+1 {
		return "", fmt.Errorf("htmltag: compose %d fragments with %d values: %w", len(fragments), len(values), ErrFragmentCount)
	}
	return c.HTML(fragments, values...), nil
}

func (c *Composer) value(index int, value any) string {
	if payload, ok := trustedPayload(value); ok {
		return payload
	}
	if stringify.Falsy(value) {
		if !c.renderFalsy || stringify.Nil(value) {
			c.log().Debug("htmltag: falsy value rendered as empty",
				zap.Int("position", index),
				zap.Any("value", value),
			)
			return ""
		}
	}
	return c.escaper()(c.stringifier()(value))
}

func (c *Composer) escaper() func(string) string {
	if c.escape == nil {
		return escape.String
	}
	return c.escape
}

func (c *Composer) stringifier() func(any) string {
	if c.stringify == nil {
		return stringify.String
	}
	return c.stringify
}

func (c *Composer) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}
