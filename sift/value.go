package sift

import (
	"fmt"
	"strconv"
	"time"
)

// Value is a conversion handle over a single looked-up argument. Lookups
// never fail loudly: a missing positional or parameter yields a failed
// handle, which extracts to zero values and ErrNoValue. Check OK, chain a
// default with Or, or just extract and let the error tell.
type Value struct {
	raw string
	ok  bool
}

// OK reports whether the lookup behind the handle found a value.
func (v Value) OK() bool { return v.ok }

// String returns the raw text, or "" for a failed handle.
func (v Value) String() string { return v.raw }

// Or substitutes def when the handle failed; a valid handle returns itself
// unchanged. The default is rendered as text at full round-trip precision,
// so Or(0.1).Float64() gives back exactly 0.1.
func (v Value) Or(def any) Value {
	if v.ok {
		return v
	}
	return Value{raw: formatDefault(def), ok: true}
}

func formatDefault(def any) string {
	switch d := def.(type) {
	case string:
		return d
	case float64:
		return strconv.FormatFloat(d, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(d), 'g', -1, 32)
	default:
		return fmt.Sprint(def)
	}
}

// Bool extracts the value with strconv.ParseBool semantics.
func (v Value) Bool() (bool, error) {
	if !v.ok {
		return false, ErrNoValue
	}
	b, err := strconv.ParseBool(v.raw)
	if err != nil {
		return false, fmt.Errorf("sift: parse %q as bool: %w", v.raw, err)
	}
	return b, nil
}

// Int extracts the value as a decimal int. Values outside the platform's
// int range are a range error.
func (v Value) Int() (int, error) {
	if !v.ok {
		return 0, ErrNoValue
	}
	n, err := strconv.ParseInt(v.raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("sift: parse %q as int: %w", v.raw, err)
	}
	return int(n), nil
}

// Int64 extracts the value as a decimal int64.
func (v Value) Int64() (int64, error) {
	if !v.ok {
		return 0, ErrNoValue
	}
	n, err := strconv.ParseInt(v.raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sift: parse %q as int: %w", v.raw, err)
	}
	return n, nil
}

// Uint64 extracts the value as a decimal uint64.
func (v Value) Uint64() (uint64, error) {
	if !v.ok {
		return 0, ErrNoValue
	}
	n, err := strconv.ParseUint(v.raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sift: parse %q as uint: %w", v.raw, err)
	}
	return n, nil
}

// Float64 extracts the value as a float64.
func (v Value) Float64() (float64, error) {
	if !v.ok {
		return 0, ErrNoValue
	}
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, fmt.Errorf("sift: parse %q as float: %w", v.raw, err)
	}
	return f, nil
}

// Duration extracts the value with time.ParseDuration semantics, so "1h30m"
// and "250ms" work.
func (v Value) Duration() (time.Duration, error) {
	if !v.ok {
		return 0, ErrNoValue
	}
	d, err := time.ParseDuration(v.raw)
	if err != nil {
		return 0, fmt.Errorf("sift: parse %q as duration: %w", v.raw, err)
	}
	return d, nil
}
