package domain

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// LabelKey is the record field used for display, search and prefix text
const LabelKey = "label"

// OptionKind tells the two option variants apart
type OptionKind int

const (
	KindText OptionKind = iota
	KindRecord
)

func (k OptionKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("OptionKind(%d)", int(k))
	}
}

// Option is one selectable candidate: either plain text or a labeled record.
// The zero value is an empty text option.
type Option struct {
	kind   OptionKind
	text   string
	fields map[string]string
}

// Field is a single key/value pair of a record option
type Field struct {
	Key   string
	Value string
}

// Text creates a plain text option
func Text(s string) Option {
	return Option{kind: KindText, text: s}
}

// Record creates a record option. The map is copied so the option stays immutable.
func Record(fields map[string]string) Option {
	return Option{kind: KindRecord, fields: maps.Clone(fields)}
}

// Texts is a shorthand for building a list of text options
func Texts(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Text(v))
	}
	return out
}

// Kind returns the variant of the option
func (o Option) Kind() OptionKind {
	return o.kind
}

// IsRecord reports whether the option is a record option
func (o Option) IsRecord() bool {
	return o.kind == KindRecord
}

// Label returns the text used for display, search and prefix rendering.
// Records without a non-empty label field report false.
func (o Option) Label() (string, bool) {
	if o.kind == KindText {
		return o.text, true
	}
	label, ok := o.fields[LabelKey]
	if !ok || label == "" {
		return "", false
	}
	return label, true
}

// Get returns a record field
func (o Option) Get(key string) (string, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Fields returns the record's pairs with the label first and the rest sorted by key.
// Text options have no fields.
func (o Option) Fields() []Field {
	if o.kind != KindRecord {
		return nil
	}
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		if k != LabelKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]Field, 0, len(o.fields))
	if label, ok := o.fields[LabelKey]; ok {
		out = append(out, Field{Key: LabelKey, Value: label})
	}
	for _, k := range keys {
		out = append(out, Field{Key: k, Value: o.fields[k]})
	}
	return out
}

// Equal compares options by value: text by string, records field by field.
// Two distinct records with identical fields are the same option.
func (o Option) Equal(other Option) bool {
	if o.kind != other.kind {
		return false
	}
	if o.kind == KindText {
		return o.text == other.text
	}
	return maps.Equal(o.fields, other.fields)
}

// String renders the option on one line, mainly for logs
func (o Option) String() string {
	if label, ok := o.Label(); ok {
		return label
	}
	parts := make([]string, 0, len(o.fields))
	for _, f := range o.Fields() {
		parts = append(parts, f.Key+": "+f.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ValidateOptions checks that an option set is homogeneous
func ValidateOptions(options []Option) error {
	if len(options) == 0 {
		return nil
	}
	kind := options[0].kind
	for i, o := range options {
		if o.kind != kind {
			return errors.Newf("option %d is a %s option but the set holds %s options", i, o.kind, kind)
		}
	}
	return nil
}

// Value is a widget selection as reported to change listeners
type Value struct {
	Multiple bool
	Options  []Option
}

// Single returns the selected option in single-select mode
func (v Value) Single() (Option, bool) {
	if v.Multiple || len(v.Options) == 0 {
		return Option{}, false
	}
	return v.Options[0], true
}

// Empty reports whether nothing is selected
func (v Value) Empty() bool {
	return len(v.Options) == 0
}

// Labels returns the labels of the selected options, "" for records without one
func (v Value) Labels() []string {
	out := make([]string, 0, len(v.Options))
	for _, o := range v.Options {
		label, _ := o.Label()
		out = append(out, label)
	}
	return out
}
