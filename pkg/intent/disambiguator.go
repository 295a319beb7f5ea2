package intent

import "strings"

const (
	servicesQuestion = "Are you interested in Consulting or Recruitment?"
	servicesChoice   = "Consulting or Recruitment?"
)

// Disambiguate answers the one-shot "Consulting or Recruitment?" turn.
// Anything it cannot resolve gets the same question back.
func (m *Matcher) Disambiguate(text string) Result {
	lower := strings.ToLower(text)

	var id string
	switch {
	case consultingPattern.MatchString(lower):
		id = IDConsulting
	case recruitmentPattern.MatchString(lower):
		id = IDRecruitment
	}

	if id != "" {
		if res, ok := m.firstReply(id); ok {
			return res
		}
	}

	choice := servicesChoice
	return Result{
		Reply:    servicesQuestion,
		Intent:   IDServicesFollowup,
		Followup: &choice,
	}
}
