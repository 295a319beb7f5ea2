package intent

import (
	"fmt"
	"strings"
)

const (
	DefaultBaseURL = "https://stimulus.org.in"
	DefaultEmail   = "founder@stimulus.org.in"
)

func DefaultLinks() Links {
	return NewLinks(DefaultBaseURL, DefaultEmail)
}

// NewLinks derives every site link from the base URL.
func NewLinks(baseURL, email string) Links {
	base := strings.TrimRight(baseURL, "/")
	return Links{
		Home:        base + "/",
		Services:    base + "/services",
		Consulting:  base + "/services#consulting",
		Recruitment: base + "/services#recruitment",
		Register:    base + "/register",
		Contact:     base + "/contact",
		About:       base + "/about",
		Email:       email,
	}
}

func anchor(href, label string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, href, label)
}

// DefaultTable builds the site intents. Order matters: on equal scores
// the earlier intent wins.
func DefaultTable(l Links) Table {
	return Table{
		{
			ID:       IDRegister,
			Keywords: []string{"register", "signup", "enroll", "join"},
			Synonyms: []string{"sign", "apply"},
			Replies: []string{
				"You can register here: " + anchor(l.Register, l.Register) + ".",
				"To get started, visit " + anchor(l.Register, "the registration page") + " and submit the form.",
			},
		},
		{
			ID:       IDServices,
			Keywords: []string{"services", "offer", "offers", "solutions", "support", "help"},
			Synonyms: []string{"service", "do", "provide"},
			Replies: []string{
				"We offer Business Consulting, Recruitment, and Advisory. Details: " + anchor(l.Services, "Services") + ".",
				"Our core services: Consulting, Recruitment, and Advisory. See " + anchor(l.Services, "Services") + ".",
			},
			Followup: servicesQuestion,
		},
		{
			ID:       IDConsulting,
			Keywords: []string{"consulting", "consult"},
			Synonyms: []string{"strategy", "gtm", "operations"},
			Replies: []string{
				"Consulting covers strategy, GTM, and operations. Learn more: " + anchor(l.Consulting, "Consulting") + ".",
			},
		},
		{
			ID:       IDRecruitment,
			Keywords: []string{"recruitment", "recruiting", "hire", "hiring", "talent"},
			Replies: []string{
				"Recruitment spans sourcing to selection. See details: " + anchor(l.Recruitment, "Recruitment") + ".",
			},
		},
		{
			ID:       IDContact,
			Keywords: []string{"contact", "email", "reach", "support", "helpdesk"},
			Replies: []string{
				"Reach us at <strong>" + l.Email + "</strong> or via " + anchor(l.Contact, "Contact") + ".",
			},
		},
		{
			ID:       IDAbout,
			Keywords: []string{"about", "company", "who", "what"},
			Replies: []string{
				"Stimulus is a consulting firm (founded 2025) helping businesses grow smarter. More: " + anchor(l.About, "About") + ".",
			},
		},
		{
			ID:       IDHome,
			Keywords: []string{"home", "homepage", "start"},
			Replies: []string{
				"Explore the homepage: " + anchor(l.Home, l.Home) + ".",
			},
		},
	}
}

// Suggestions are the starter topics offered by the chat widget.
func Suggestions() []string {
	return []string{
		"What services do you offer?",
		"Tell me about consulting",
		"Are you hiring talent?",
		"How do I register?",
		"How can I contact you?",
		"Who is Stimulus?",
	}
}
