package sift

import "strings"

// Mode holds the classifier policy bits. Combine bits with bitwise OR and
// hand the result to New or Parse.
type Mode uint32

const (
	// PreferFlagForUnregOption classifies an unregistered option that is
	// followed by a value token as a flag; the value token is then
	// classified on its own. This is the default policy.
	PreferFlagForUnregOption Mode = 1 << iota

	// PreferParamForUnregOption classifies an unregistered option that is
	// followed by a value token as a parameter consuming that token.
	// Mutually exclusive with PreferFlagForUnregOption.
	PreferParamForUnregOption

	// NoSplitOnEqualSign keeps '=' as part of the option name instead of
	// splitting --name=value at the first '='.
	NoSplitOnEqualSign

	// SingleDashIsMultiflag treats a single-dash option such as -abc as the
	// clustered flags a, b and c, unless "abc" itself is a registered
	// parameter name. A registered trailing character keeps its chance to
	// consume a value: with P registered, -abcP 42 gives flags a, b, c and
	// the parameter P=42.
	SingleDashIsMultiflag
)

var modeNames = []struct {
	bit  Mode
	name string
}{
	{PreferFlagForUnregOption, "PreferFlagForUnregOption"},
	{PreferParamForUnregOption, "PreferParamForUnregOption"},
	{NoSplitOnEqualSign, "NoSplitOnEqualSign"},
	{SingleDashIsMultiflag, "SingleDashIsMultiflag"},
}

// String renders the set bits joined by '|', or "0" for the empty mode.
func (m Mode) String() string {
	if m == 0 {
		return "0"
	}
	var parts []string
	for _, mn := range modeNames {
		if m&mn.bit != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "|")
}
