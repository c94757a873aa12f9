package sift

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dzonerzy/go-sift/internal/intern"
)

// Parser classifies argument vectors into positional arguments, flags and
// parameters without any schema. The mode and the registered-parameter set
// are configuration; the three result collections are rebuilt from scratch
// by every parse, so views handed out earlier keep observing the snapshot
// they came from.
//
// A Parser must be created with New. It is safe for concurrent reads once a
// parse has completed; Parse and AddParam must not run concurrently with
// anything else on the same Parser.
type Parser struct {
	mode       Mode
	registered map[string]struct{}

	pos    []string
	flags  map[string]int
	params *orderedmap.OrderedMap[string, []string]
}

// New returns a Parser with the given mode bits OR-combined. No bits means
// PreferFlagForUnregOption. New panics when both prefer bits are set; that
// combination is contradictory and always a bug in the caller.
func New(mode ...Mode) *Parser {
	var m Mode
	for _, bit := range mode {
		m |= bit
	}
	if m&PreferFlagForUnregOption != 0 && m&PreferParamForUnregOption != 0 {
		panic("sift: PreferFlagForUnregOption and PreferParamForUnregOption are mutually exclusive")
	}
	if m&PreferParamForUnregOption == 0 {
		m |= PreferFlagForUnregOption
	}
	p := &Parser{
		mode:       m,
		registered: make(map[string]struct{}),
	}
	p.reset()
	return p
}

// Parse is shorthand for New(mode...).Parse(args).
func Parse(args []string, mode ...Mode) *Parser {
	return New(mode...).Parse(args)
}

// AddParam registers name (leading dashes ignored) as a parameter, so the
// classifier lets it consume a following value token even in the default
// flag-preferring mode. Registration is permanent: it survives every parse.
func (p *Parser) AddParam(name string) {
	p.registered[intern.Name(trimDashes(name))] = struct{}{}
}

// AddParams registers every given name. See AddParam.
func (p *Parser) AddParams(names ...string) {
	for _, name := range names {
		p.AddParam(name)
	}
}

// Parse classifies args in one pass and replaces the parser's collections
// with the result. Position 0 is not special: pass os.Args to keep the
// program name as the first positional, or os.Args[1:] to drop it.
//
// Parse cannot fail. Every token lands in exactly one collection; a value
// consumed by a parameter is part of that parameter's entry and is never
// classified on its own. Parse returns the receiver for chaining.
func (p *Parser) Parse(args []string) *Parser {
	p.reset()
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !isOption(tok) {
			p.pos = append(p.pos, tok)
			continue
		}
		name := trimDashes(tok)

		// name=value form. Decided before the multiflag and lookahead
		// steps and never consumes the next token.
		if p.mode&NoSplitOnEqualSign == 0 {
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				p.addParam(name[:eq], name[eq+1:])
				continue
			}
		}

		// Single-dash clusters. A whole name that is registered stays one
		// option; a registered trailing character peels off and falls
		// through to the lookahead with its chance to consume a value.
		if p.mode&SingleDashIsMultiflag != 0 && len(tok)-len(name) == 1 && !p.isRegistered(name) {
			runes := []rune(name)
			if len(runes) == 0 {
				continue
			}
			last := string(runes[len(runes)-1])
			if !p.isRegistered(last) {
				for _, r := range runes {
					p.addFlag(string(r))
				}
				continue
			}
			for _, r := range runes[:len(runes)-1] {
				p.addFlag(string(r))
			}
			name = last
		}

		// One-token lookahead decides flag vs parameter.
		if i+1 == len(args) || isOption(args[i+1]) {
			p.addFlag(name)
			continue
		}
		if p.isRegistered(name) || p.mode&PreferParamForUnregOption != 0 {
			p.addParam(name, args[i+1])
			i++
			continue
		}
		p.addFlag(name)
	}
	return p
}

// ParseLine splits line like a POSIX shell, honoring quotes and escapes,
// and classifies the result. The collections are replaced only when
// tokenizing succeeds.
func (p *Parser) ParseLine(line string) error {
	toks, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("sift: tokenize line: %w", err)
	}
	p.Parse(toks)
	return nil
}

// reset discards the collections of the previous parse. Fresh allocations,
// not in-place clearing: earlier views must keep their snapshot.
func (p *Parser) reset() {
	p.pos = nil
	p.flags = make(map[string]int)
	p.params = orderedmap.New[string, []string]()
}

func (p *Parser) addFlag(name string) {
	p.flags[intern.Name(name)]++
}

func (p *Parser) addParam(key, value string) {
	key = intern.Name(key)
	if vals, ok := p.params.Get(key); ok {
		p.params.Set(key, append(vals, value))
		return
	}
	p.params.Set(key, []string{value})
}

func (p *Parser) isRegistered(name string) bool {
	_, ok := p.registered[name]
	return ok
}

// isOption reports whether tok is an option token: it starts with '-' and
// does not parse as a number, so -3, -3.5 and -1e-9 stay positional.
func isOption(tok string) bool {
	return len(tok) > 0 && tok[0] == '-' && !isNumber(tok)
}

func isNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// trimDashes strips every leading dash. All-dash tokens such as - and --
// trim to the empty name, which is legal as a flag name or parameter key.
func trimDashes(tok string) string {
	return strings.TrimLeft(tok, "-")
}
