// Package moderation masks blacklisted words in user generated text before it is stored or pushed.
package moderation

import (
	"slices"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Leet speak folded back to letters before matching
var substitutions = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

// Filter matches every blacklisted word in one pass over the text.
// Matching ignores case, separators and leet substitutions; the output keeps
// the original layout, only the matched runes are replaced by mask.
type Filter struct {
	machine *goahocorasick.Machine
	mask    rune
}

func NewFilter(words []string, mask rune) (*Filter, error) {
	keys := make([]string, 0, len(words))
	for _, word := range words {
		folded, _ := fold(strings.TrimSpace(word))
		if len(folded) > 0 {
			keys = append(keys, string(folded))
		}
	}
	keys = lo.Uniq(keys)
	slices.Sort(keys)
	if len(keys) == 0 {
		return &Filter{mask: mask}, nil
	}

	patterns := lo.Map(keys, func(key string, _ int) []rune { return []rune(key) })
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Filter{machine: machine, mask: mask}, nil
}

// Clean returns text with every blacklisted word masked and whether anything was masked.
// A nil Filter leaves the text untouched.
func (f *Filter) Clean(text string) (string, bool) {
	if f == nil || f.machine == nil || text == "" {
		return text, false
	}
	folded, positions := fold(text)
	if len(folded) == 0 {
		return text, false
	}
	terms := f.machine.MultiPatternSearch(folded, false)
	if len(terms) == 0 {
		return text, false
	}

	out := []rune(text)
	for _, term := range terms {
		end := term.Pos + len(term.Word)
		if term.Pos < 0 || end > len(positions) {
			continue
		}
		// Separators inside the match are masked too, the ones around it are kept
		for i := positions[term.Pos]; i <= positions[end-1]; i++ {
			out[i] = f.mask
		}
	}
	return string(out), true
}

// fold lowers, substitutes and strips separators, remembering where every kept rune came from.
func fold(text string) ([]rune, []int) {
	runes := []rune(text)
	folded := make([]rune, 0, len(runes))
	positions := make([]int, 0, len(runes))
	for i, r := range runes {
		if sub, ok := substitutions[r]; ok {
			r = sub
		}
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		positions = append(positions, i)
	}
	return folded, positions
}
