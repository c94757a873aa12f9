package sift

import (
	"iter"
	"slices"
)

// HasFlag reports whether any of the given names was seen as a flag by the
// last parse. Leading dashes in queries are ignored, so HasFlag("-v") and
// HasFlag("v") agree, and alternatives read naturally:
//
//	p.HasFlag("v", "verbose")
func (p *Parser) HasFlag(names ...string) bool {
	for _, name := range names {
		if _, ok := p.flags[trimDashes(name)]; ok {
			return true
		}
	}
	return false
}

// FlagCount returns how many times name was seen as a flag, so repeated
// flags such as -v -v can drive verbosity.
func (p *Parser) FlagCount(name string) int {
	return p.flags[trimDashes(name)]
}

// Flags returns the sorted names of every flag seen by the last parse.
func (p *Parser) Flags() []string {
	out := make([]string, 0, len(p.flags))
	for name := range p.flags {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Arg returns the i-th positional argument, or "" when i is out of range.
// The empty string is a sentinel, not an error.
func (p *Parser) Arg(i int) string {
	if i < 0 || i >= len(p.pos) {
		return ""
	}
	return p.pos[i]
}

// Args returns the positional arguments in order. The slice belongs to the
// parser; treat it as read-only.
func (p *Parser) Args() []string { return p.pos }

// NArgs returns the number of positional arguments.
func (p *Parser) NArgs() int { return len(p.pos) }

// ArgValue returns a conversion handle over the i-th positional argument,
// or a failed handle when i is out of range.
func (p *Parser) ArgValue(i int) Value {
	if i < 0 || i >= len(p.pos) {
		return Value{}
	}
	return Value{raw: p.pos[i], ok: true}
}

// Param returns a handle over the first value recorded for the first of the
// given names that has one, or a failed handle when none match. Leading
// dashes in queries are ignored.
func (p *Parser) Param(names ...string) Value {
	for _, name := range names {
		if vals, ok := p.params.Get(trimDashes(name)); ok && len(vals) > 0 {
			return Value{raw: vals[0], ok: true}
		}
	}
	return Value{}
}

// ParamCount returns the number of values recorded under name.
func (p *Parser) ParamCount(name string) int {
	vals, _ := p.params.Get(trimDashes(name))
	return len(vals)
}

// ParamAll returns a lazy view over every value recorded under name, in the
// order they appeared. Ranging over the result restarts the walk, and the
// view keeps observing the parse it came from even after a re-parse.
func (p *Parser) ParamAll(name string) iter.Seq[string] {
	vals, _ := p.params.Get(trimDashes(name))
	return func(yield func(string) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Params returns a lazy view over every (name, value) pair of the last
// parse: names in first-appearance order, values per name in the order they
// appeared.
func (p *Parser) Params() iter.Seq2[string, string] {
	params := p.params
	return func(yield func(string, string) bool) {
		for pair := params.Oldest(); pair != nil; pair = pair.Next() {
			for _, v := range pair.Value {
				if !yield(pair.Key, v) {
					return
				}
			}
		}
	}
}
