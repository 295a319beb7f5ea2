package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	in := Intent{
		ID:       "register",
		Keywords: []string{"register", "signup"},
		Synonyms: []string{"sign", "apply"},
		Replies:  []string{"ok"},
	}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"no tokens", "", 0},
		{"unrelated", "tell me a joke", 0},
		{"one keyword", "I want to register", 2},
		{"keyword repeated", "register register REGISTER", 2},
		{"two keywords", "register or signup", 4},
		{"one synonym", "where do I sign", 1},
		{"two synonyms", "sign me up, I want to apply", 2},
		{"keyword and synonym", "apply and register", 3},
		{"substring does not count", "registered signups", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(Tokenize(tt.text), in))
		})
	}
}

func TestScore_NoSynonyms(t *testing.T) {
	in := Intent{ID: "home", Keywords: []string{"home"}, Replies: []string{"ok"}}
	assert.Equal(t, 2, Score([]string{"home", "page"}, in))
}
