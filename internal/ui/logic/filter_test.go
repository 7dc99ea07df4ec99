package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeahead/internal/domain"
)

func ptr(s string) *string { return &s }

func labels(options []domain.Option) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.String())
	}
	return out
}

var fruit = domain.Texts("apple", "bee", "pie", "pear")

func records() []domain.Option {
	return []domain.Option{
		domain.Record(map[string]string{"label": "Apple", "color": "red"}),
		domain.Record(map[string]string{"label": "Bee", "color": "blue"}),
		domain.Record(map[string]string{"color": "pearl"}),
		domain.Record(map[string]string{"label": "Pear", "color": "green"}),
		domain.Record(map[string]string{"label": "Banana", "color": "yellow"}),
	}
}

func TestSubstringEmptySearchKeepsEverything(t *testing.T) {
	assert.Equal(t, fruit, Substring(fruit, nil))
	assert.Equal(t, fruit, Substring(fruit, ptr("")))

	recs := records()
	assert.Equal(t, recs, Substring(recs, ptr("")), "records without label still match an empty search")
}

func TestSubstringMatches(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"prefix fragment", "pe", []string{"pear"}},
		{"inner fragment", "e", []string{"apple", "bee", "pie", "pear"}},
		{"suffix", "ie", []string{"pie"}},
		{"case sensitive", "Pe", []string{}},
		{"no match", "zz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(Substring(fruit, ptr(tt.search))))
		})
	}
}

func TestSubstringIsOrderedSubsequence(t *testing.T) {
	for _, search := range []string{"a", "e", "p", "ea", "pp"} {
		got := Substring(fruit, ptr(search))
		j := 0
		for _, o := range got {
			for j < len(fruit) && !fruit[j].Equal(o) {
				j++
			}
			require.Less(t, j, len(fruit), "result for %q is not a subsequence", search)
			j++
		}
		want := 0
		for _, o := range fruit {
			if MatchesSubstring(o, ptr(search)) {
				want++
			}
		}
		assert.Len(t, got, want)
	}
}

func TestSubstringRecords(t *testing.T) {
	got := Substring(records(), ptr("pear"))
	assert.Empty(t, got, "a record without label never matches, and Pear is case-sensitive")

	got = Substring(records(), ptr("Pe"))
	assert.Equal(t, []string{"Pear"}, labels(got))
}

func TestApplyUsesCustomFilter(t *testing.T) {
	var gotSearch *string
	custom := func(options []domain.Option, search *string) []domain.Option {
		gotSearch = search
		return options[:1]
	}

	got := Apply(fruit, ptr("zz"), custom)
	assert.Equal(t, []string{"apple"}, labels(got))
	require.NotNil(t, gotSearch)
	assert.Equal(t, "zz", *gotSearch)

	assert.Equal(t, []string{"pear"}, labels(Apply(fruit, ptr("pe"), nil)))
}

func TestFuzzyKeepsOptionOrder(t *testing.T) {
	got := Fuzzy(fruit, ptr("pe"))
	assert.Equal(t, []string{"apple", "pie", "pear"}, labels(got))

	assert.Equal(t, fruit, Fuzzy(fruit, nil))
	assert.Empty(t, Fuzzy(fruit, ptr("xyz")))
}

func TestPrefixIndex(t *testing.T) {
	options := domain.Texts("pear", "apple", "pie", "peach", "pear")
	idx := NewPrefixIndex(options)

	assert.Equal(t, []string{"pear", "pie", "peach", "pear"}, labels(idx.Filter(nil, ptr("p"))))
	assert.Equal(t, []string{"pear", "peach", "pear"}, labels(idx.Filter(nil, ptr("pe"))))
	assert.Empty(t, idx.Filter(nil, ptr("ear")))
	assert.Equal(t, options, idx.Filter(nil, nil))
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"", FilterSubstring, FilterFuzzy, FilterPrefix} {
		f, err := Named(name, fruit)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	f, err := Named(FilterPrefix, fruit)
	require.NoError(t, err)
	assert.Equal(t, []string{"pie", "pear"}, labels(f(fruit, ptr("p"))))

	_, err = Named("regex", fruit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown filter "regex"`)
}
