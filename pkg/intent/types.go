package intent

const (
	IDRegister    = "register"
	IDServices    = "services"
	IDConsulting  = "consulting"
	IDRecruitment = "recruitment"
	IDContact     = "contact"
	IDAbout       = "about"
	IDHome        = "home"

	IDFallback         = "fallback"
	IDServicesFollowup = "services_followup"
)

// Intent is one recognizable user goal. Keywords score 2 points each,
// synonyms 1 point each.
type Intent struct {
	ID       string   `json:"id" validate:"required"`
	Keywords []string `json:"keywords" validate:"required,min=1,unique,dive,token"`
	Synonyms []string `json:"synonyms" validate:"omitempty,unique,dive,token"`
	Replies  []string `json:"replies" validate:"required,min=1,dive,required"`
	Followup string   `json:"followup,omitempty"`
}

// Table is ordered. Earlier intents win exact score ties.
type Table []Intent

// Find returns the intent with the given id.
func (t Table) Find(id string) (Intent, bool) {
	for _, in := range t {
		if in.ID == id {
			return in, true
		}
	}
	return Intent{}, false
}

type Result struct {
	Reply    string  `json:"reply"`
	Intent   string  `json:"intent"`
	Followup *string `json:"followup"`
}

// Links are the site locations embedded in replies.
type Links struct {
	Home        string `json:"home" validate:"required,url"`
	Services    string `json:"services" validate:"required,url"`
	Consulting  string `json:"consulting" validate:"required,url"`
	Recruitment string `json:"recruitment" validate:"required,url"`
	Register    string `json:"register" validate:"required,url"`
	Contact     string `json:"contact" validate:"required,url"`
	About       string `json:"about" validate:"required,url"`
	Email       string `json:"email" validate:"required,email"`
}
