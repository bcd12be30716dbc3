// Package escape converts arbitrary text into HTML-entity-safe text. Only the
// five characters that can open markup or terminate an attribute value are
// rewritten:
//
//	&  ->  &amp;
//	<  ->  &lt;
//	>  ->  &gt;
//	"  ->  &quot;
//	'  ->  &#039;
//
// Escaping is not idempotent: escaping "&amp;" yields "&amp;amp;". Callers must
// escape a value exactly once.
package escape
