package htmltag

import "errors"

// ErrFragmentCount reports a composition whose fragment count is not exactly
// one more than its value count.
var ErrFragmentCount = errors.New("htmltag: fragment count must equal value count plus one")
