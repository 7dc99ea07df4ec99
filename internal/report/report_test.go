package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"typeahead/internal/domain"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, []Selection{
		{
			Widget:   "sync-multiple",
			Label:    "Sync Search",
			Multiple: true,
			Value:    domain.Value{Multiple: true, Options: domain.Texts("bee", "pie")},
		},
		{
			Widget: "sync-single",
			Label:  "Sync Search",
			Value:  domain.Value{},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Selections")
	assert.Contains(t, out, "sync-multiple")
	assert.Contains(t, out, "bee, pie")
	assert.Contains(t, out, "multiple")
	assert.Contains(t, out, "single")
	assert.Contains(t, out, " - ")
}
