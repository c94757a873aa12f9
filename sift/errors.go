package sift

import "errors"

// ErrNoValue is returned by typed extraction from a failed Value, that is a
// lookup that found nothing and had no default substituted. Test for it
// with errors.Is.
var ErrNoValue = errors.New("sift: no value")
