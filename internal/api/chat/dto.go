package chat

import jsoniter "github.com/json-iterator/go"

// MessageText accepts any JSON value. Anything other than a string
// decodes to an empty message instead of failing the request.
type MessageText string

func (m *MessageText) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoniter.Unmarshal(data, &s); err != nil {
		*m = ""
		return nil
	}
	*m = MessageText(s)
	return nil
}

type MessageRequest struct {
	Message MessageText `json:"message"`
}

type ChatResponse struct {
	Reply    string  `json:"reply"`
	Intent   string  `json:"intent"`
	Followup *string `json:"followup"`
}

type ServicesDetailResponse struct {
	Reply    string  `json:"reply"`
	Followup *string `json:"followup"`
	Intent   string  `json:"intent"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}
