package menu

import apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"

// ActionType identifies an extra action attached to a menu.
type ActionType string

const (
	ActionTypeMessage  ActionType = "message"
	ActionTypeLink     ActionType = "link"
	ActionTypeImage    ActionType = "image"
	ActionTypeLocation ActionType = "location"
	ActionTypeContact  ActionType = "contact"
)

// Action is a tagged record executed alongside a menu render. The Type field
// decides which of the remaining fields are required.
type Action struct {
	Type          ActionType `json:"type"`
	Title         string     `json:"title,omitempty"`
	Content       string     `json:"content,omitempty"`
	URL           string     `json:"url,omitempty"`
	ButtonText    string     `json:"button_text,omitempty"`
	Path          string     `json:"path,omitempty"`
	Name          string     `json:"name,omitempty"`
	Latitude      string     `json:"latitude,omitempty"`
	Longitude     string     `json:"longitude,omitempty"`
	Address       string     `json:"address,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	AwaitResponse string     `json:"await_response,omitempty"`
}

// Validate checks the type-specific required fields of the action.
func (a Action) Validate() error {
	switch a.Type {
	case ActionTypeMessage:
		if a.Content == "" {
			return apperrors.NewValidationError("message action requires content")
		}
	case ActionTypeLink:
		if a.URL == "" {
			return apperrors.NewValidationError("link action requires url")
		}
	case ActionTypeImage:
		if a.Path == "" {
			return apperrors.NewValidationError("image action requires path")
		}
	case ActionTypeLocation:
		if a.Latitude == "" || a.Longitude == "" {
			return apperrors.NewValidationError("location action requires latitude and longitude")
		}
	case ActionTypeContact:
		if a.Name == "" || a.Phone == "" {
			return apperrors.NewValidationError("contact action requires name and phone")
		}
	default:
		return apperrors.NewValidationError("unknown action type: " + string(a.Type))
	}
	return nil
}
