package sift

import "github.com/dzonerzy/go-sift/internal/fuzzy"

// Suggest returns the known name closest to input, or "" when nothing is
// within editing distance. Known names are the registered parameters plus
// the flag names and parameter keys of the last parse. Meant for hints like
//
//	unknown option --prot, did you mean --port?
func (p *Parser) Suggest(input string) string {
	candidates := make([]string, 0, len(p.registered)+len(p.flags)+p.params.Len())
	for name := range p.registered {
		candidates = append(candidates, name)
	}
	for name := range p.flags {
		candidates = append(candidates, name)
	}
	for pair := p.params.Oldest(); pair != nil; pair = pair.Next() {
		candidates = append(candidates, pair.Key)
	}
	return fuzzy.Closest(trimDashes(input), candidates)
}
