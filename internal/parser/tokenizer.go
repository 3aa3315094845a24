package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of an argument value, such as "n/".
type Prefix string

const (
	PrefixName         Prefix = "n/"
	PrefixEmail        Prefix = "e/"
	PrefixPhone        Prefix = "p/"
	PrefixTelegram     Prefix = "tg/"
	PrefixCommittee    Prefix = "c/"
	PrefixOrganisation Prefix = "o/"
	PrefixTag          Prefix = "t/"
	PrefixRemark       Prefix = "r/"
	PrefixDescription  Prefix = "d/"
	PrefixProject      Prefix = "project/"
)

// Args holds the tokenised arguments of one command: the free text before
// the first prefix and every value keyed by its prefix, in input order.
type Args struct {
	preamble string
	values   map[Prefix][]string
}

type position struct {
	prefix Prefix
	start  int
}

// Tokenize splits input on the given prefixes. A prefix only counts when it
// starts the input or follows whitespace, so "a/b" inside a value is kept.
func Tokenize(input string, prefixes ...Prefix) Args {
	var found []position
	for _, p := range prefixes {
		for i := 0; i < len(input); {
			j := strings.Index(input[i:], string(p))
			if j < 0 {
				break
			}
			at := i + j
			if atWordStart(input, at) {
				found = append(found, position{prefix: p, start: at})
			}
			i = at + len(p)
		}
	}
	sort.Slice(found, func(a, b int) bool { return found[a].start < found[b].start })

	args := Args{values: make(map[Prefix][]string)}
	end := len(input)
	if len(found) > 0 {
		end = found[0].start
	}
	args.preamble = strings.TrimSpace(input[:end])
	for k, pos := range found {
		valueEnd := len(input)
		if k+1 < len(found) {
			valueEnd = found[k+1].start
		}
		value := strings.TrimSpace(input[pos.start+len(pos.prefix) : valueEnd])
		args.values[pos.prefix] = append(args.values[pos.prefix], value)
	}
	return args
}

func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}

func (a Args) Preamble() string { return a.preamble }

// Value returns the last value given for p.
func (a Args) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for p.
func (a Args) All(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

func (a Args) Has(p Prefix) bool { return len(a.values[p]) > 0 }

// Duplicates returns the prefixes among single that were given more than once.
func (a Args) Duplicates(single ...Prefix) []Prefix {
	var dups []Prefix
	for _, p := range single {
		if len(a.values[p]) > 1 {
			dups = append(dups, p)
		}
	}
	return dups
}
