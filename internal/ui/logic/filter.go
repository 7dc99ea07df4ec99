package logic

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/tchap/go-patricia/v2/patricia"

	"typeahead/internal/domain"
)

// FilterFunc produces the options matching search. A nil search means the
// user has not typed anything yet.
type FilterFunc func(options []domain.Option, search *string) []domain.Option

// Filter names accepted by Named
const (
	FilterSubstring = "substring"
	FilterFuzzy     = "fuzzy"
	FilterPrefix    = "prefix"
)

// Apply runs custom when set, otherwise the default substring filter
func Apply(options []domain.Option, search *string, custom FilterFunc) []domain.Option {
	if custom != nil {
		return custom(options, search)
	}
	return Substring(options, search)
}

// Substring keeps options whose label contains search, case-sensitive.
// An absent or empty search keeps everything.
func Substring(options []domain.Option, search *string) []domain.Option {
	return lo.Filter(options, func(option domain.Option, _ int) bool {
		return MatchesSubstring(option, search)
	})
}

// MatchesSubstring is the default match predicate
func MatchesSubstring(option domain.Option, search *string) bool {
	if search == nil || *search == "" {
		return true
	}
	label, ok := option.Label()
	if !ok {
		return false
	}
	return strings.Contains(label, *search)
}

// Fuzzy keeps options whose label fuzzy-matches search. Results stay in option order.
func Fuzzy(options []domain.Option, search *string) []domain.Option {
	if search == nil || *search == "" {
		return lo.Filter(options, func(domain.Option, int) bool { return true })
	}

	labels := make([]string, len(options))
	for i, o := range options {
		labels[i], _ = o.Label()
	}

	matches := fuzzy.Find(*search, labels)
	indexes := make([]int, 0, len(matches))
	for _, m := range matches {
		if _, ok := options[m.Index].Label(); ok {
			indexes = append(indexes, m.Index)
		}
	}
	sort.Ints(indexes)

	return lo.Map(indexes, func(i int, _ int) domain.Option {
		return options[i]
	})
}

// PrefixIndex answers label-prefix queries from a patricia trie built once per option set
type PrefixIndex struct {
	options []domain.Option
	trie    *patricia.Trie
}

// NewPrefixIndex indexes the labels of options. Options without a label are not indexed.
func NewPrefixIndex(options []domain.Option) *PrefixIndex {
	trie := patricia.NewTrie()
	for i, o := range options {
		label, ok := o.Label()
		if !ok {
			continue
		}
		key := patricia.Prefix(label)
		if existing := trie.Get(key); existing != nil {
			trie.Set(key, append(existing.([]int), i))
			continue
		}
		trie.Insert(key, []int{i})
	}
	return &PrefixIndex{options: options, trie: trie}
}

// Filter is a FilterFunc over the indexed option set; the options argument is ignored
func (p *PrefixIndex) Filter(_ []domain.Option, search *string) []domain.Option {
	if search == nil || *search == "" {
		return append([]domain.Option(nil), p.options...)
	}

	var indexes []int
	_ = p.trie.VisitSubtree(patricia.Prefix(*search), func(_ patricia.Prefix, item patricia.Item) error {
		indexes = append(indexes, item.([]int)...)
		return nil
	})
	sort.Ints(indexes)

	out := make([]domain.Option, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, p.options[i])
	}
	return out
}

// Named resolves a filter by configuration name. An empty name is the default.
func Named(name string, options []domain.Option) (FilterFunc, error) {
	switch name {
	case "", FilterSubstring:
		return Substring, nil
	case FilterFuzzy:
		return Fuzzy, nil
	case FilterPrefix:
		return NewPrefixIndex(options).Filter, nil
	default:
		return nil, errors.Newf("unknown filter %q (want %s, %s or %s)", name, FilterSubstring, FilterFuzzy, FilterPrefix)
	}
}
