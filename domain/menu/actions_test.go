package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionValidate(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		valid  bool
	}{
		{"message with content", Action{Type: ActionTypeMessage, Content: "hello"}, true},
		{"message without content", Action{Type: ActionTypeMessage}, false},
		{"link with url", Action{Type: ActionTypeLink, URL: "https://example.com"}, true},
		{"link without url", Action{Type: ActionTypeLink, ButtonText: "Open"}, false},
		{"image with path", Action{Type: ActionTypeImage, Path: "img/logo.png"}, true},
		{"image without path", Action{Type: ActionTypeImage}, false},
		{"location with coordinates", Action{Type: ActionTypeLocation, Latitude: "-23.5", Longitude: "-46.6"}, true},
		{"location missing longitude", Action{Type: ActionTypeLocation, Latitude: "-23.5"}, false},
		{"contact with name and phone", Action{Type: ActionTypeContact, Name: "Support", Phone: "+5511999999999"}, true},
		{"contact without phone", Action{Type: ActionTypeContact, Name: "Support"}, false},
		{"unknown type", Action{Type: "dance"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
