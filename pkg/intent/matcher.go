package intent

import (
	"math/rand/v2"
	"regexp"
)

var (
	consultingPattern  = regexp.MustCompile(`(?i)consult(ing)?`)
	recruitmentPattern = regexp.MustCompile(`(?i)recruit(ment|ing)|hire`)
)

// closeCallGap is the widest best/runner-up gap that still makes the
// services intent ask a clarifying question.
const closeCallGap = 1

// Matcher maps free text to a reply from an immutable intent table.
// It is safe for concurrent use as long as its IntN source is.
type Matcher struct {
	table Table
	links Links
	intn  func(n int) int
}

type MatcherOption func(*Matcher)

// WithLinks sets the links offered by the fallback reply. It should
// match the links the table was built from.
func WithLinks(links Links) MatcherOption {
	return func(m *Matcher) {
		m.links = links
	}
}

// WithIntN replaces the random source used to pick among replies.
func WithIntN(intn func(n int) int) MatcherOption {
	return func(m *Matcher) {
		m.intn = intn
	}
}

func NewMatcher(table Table, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		table: table,
		links: DefaultLinks(),
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match never fails: text that selects no intent gets the fallback reply.
func (m *Matcher) Match(text string) Result {
	if res, ok := m.shortcut(text); ok {
		return res
	}

	tokens := Tokenize(text)

	var best, second *Intent
	bestScore, secondScore := 0, 0
	for i := range m.table {
		in := &m.table[i]
		s := Score(tokens, *in)
		if s > bestScore {
			second, secondScore = best, bestScore
			best, bestScore = in, s
		} else if s > secondScore {
			second, secondScore = in, s
		}
	}

	if best == nil || bestScore < AcceptScore {
		return m.fallback(text)
	}

	reply := m.pick(best.Replies)

	if best.ID == IDServices && second != nil && bestScore-secondScore <= closeCallGap {
		question, choice := best.Followup, best.Followup
		if best.Followup == "" {
			question, choice = servicesQuestion, servicesChoice
		}
		return Result{
			Reply:    reply + " " + question,
			Intent:   IDServices,
			Followup: &choice,
		}
	}

	return Result{
		Reply:    reply,
		Intent:   best.ID,
		Followup: optional(best.Followup),
	}
}

// shortcut resolves detail questions about consulting or recruitment
// without scoring.
func (m *Matcher) shortcut(text string) (Result, bool) {
	switch {
	case consultingPattern.MatchString(text):
		return m.firstReply(IDConsulting)
	case recruitmentPattern.MatchString(text):
		return m.firstReply(IDRecruitment)
	}
	return Result{}, false
}

func (m *Matcher) firstReply(id string) (Result, bool) {
	in, ok := m.table.Find(id)
	if !ok || len(in.Replies) == 0 {
		return Result{}, false
	}
	return Result{Reply: in.Replies[0], Intent: in.ID}, true
}

func (m *Matcher) pick(replies []string) string {
	if len(replies) == 1 {
		return replies[0]
	}
	return replies[m.intn(len(replies))]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
