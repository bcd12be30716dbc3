// Package htmltag builds HTML strings from literal fragments and interpolated
// values, escaping every value unless the caller wrapped it with Trusted.
//
//	page := htmltag.HTML(
//		[]string{"<h1>", "</h1><div>", "</div>"},
//		title,                   // escaped
//		htmltag.Trusted(body),   // inserted verbatim
//	)
//
// Fragments are written exactly as authored. For N fragments the composer
// expects N-1 values; Compose enforces that count while HTML tolerates a
// mismatch, rendering missing values as nothing and ignoring extras.
//
// # Falsy values
//
// Plain values that are "falsy" (nil, nil pointers, "", false, numeric zero and
// NaN) render as nothing. Interpolating 0 into "x=" and ";" yields "x=;", not
// "x=0;". This mirrors the tagged-template helper the package was modelled on
// and is kept for output compatibility. Use a Composer built with
// WithRenderFalsy(true) when zero and false must appear in the output.
//
// The package does not parse or validate HTML and does not understand
// attribute or script contexts. Escaping covers the five characters &, <, >,
// " and '. Use Sanitized when untrusted markup must be embedded as markup.
package htmltag
