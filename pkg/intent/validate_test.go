package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultTable(t *testing.T) {
	require.NoError(t, Validate(DefaultTable(DefaultLinks())))
}

func TestValidate_Rejects(t *testing.T) {
	valid := func() Intent {
		return Intent{ID: "x", Keywords: []string{"x"}, Replies: []string{"X"}}
	}

	tests := []struct {
		name   string
		mutate func(*Intent)
	}{
		{"missing id", func(in *Intent) { in.ID = "" }},
		{"no keywords", func(in *Intent) { in.Keywords = nil }},
		{"empty keyword list", func(in *Intent) { in.Keywords = []string{} }},
		{"keyword with punctuation", func(in *Intent) { in.Keywords = []string{"sign-up"} }},
		{"uppercase keyword", func(in *Intent) { in.Keywords = []string{"Register"} }},
		{"repeated keyword", func(in *Intent) { in.Keywords = []string{"x", "x"} }},
		{"synonym with space", func(in *Intent) { in.Synonyms = []string{"sign up"} }},
		{"repeated synonym", func(in *Intent) { in.Synonyms = []string{"provide", "provide"} }},
		{"no replies", func(in *Intent) { in.Replies = nil }},
		{"blank reply", func(in *Intent) { in.Replies = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			assert.Error(t, Validate(Table{in}))
		})
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	in := Intent{ID: "x", Keywords: []string{"x"}, Replies: []string{"X"}}
	err := Validate(Table{in, in})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestValidate_EmptyTable(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrEmptyTable)
}

func TestValidateLinks(t *testing.T) {
	assert.NoError(t, ValidateLinks(DefaultLinks()))
	assert.Error(t, ValidateLinks(NewLinks("not a url", DefaultEmail)))
	assert.Error(t, ValidateLinks(NewLinks(DefaultBaseURL, "nobody")))
}

func TestTableFind(t *testing.T) {
	table := DefaultTable(DefaultLinks())

	in, ok := table.Find(IDContact)
	require.True(t, ok)
	assert.Contains(t, in.Replies[0], DefaultEmail)

	_, ok = table.Find("pricing")
	assert.False(t, ok)
}
