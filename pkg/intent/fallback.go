package intent

import (
	"fmt"
	"html"
)

func (m *Matcher) fallback(text string) Result {
	echoed := html.EscapeString(Summarize(text))
	return Result{
		Reply: fmt.Sprintf(
			`I can help you navigate the site. You said: “%s”. Try asking about %s, %s, or %s.`,
			echoed,
			anchor(m.links.Register, "registration"),
			anchor(m.links.Services, "services"),
			anchor(m.links.Contact, "contact info"),
		),
		Intent: IDFallback,
	}
}
