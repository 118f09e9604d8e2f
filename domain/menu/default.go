package menu

// DefaultTree returns the seed flow used when no document has been saved yet.
// It gives editors a small but complete flow to start from.
func DefaultTree() Tree {
	return Tree{
		Greetings: map[string]string{
			"morning":   "Good morning! Welcome to our service.",
			"afternoon": "Good afternoon! How can we help you today?",
		},
		Menus: map[string]Menu{
			InitialMenuID: {
				Title:   "Main Menu",
				Content: "Welcome! Choose an option below.",
				Options: Options{
					MenuType: MenuTypeButton,
					Buttons: []Button{
						{ID: "btn-info", Title: "Information", NextMenu: "info_menu"},
						{ID: "btn-support", Title: "Support", NextMenu: "support_menu"},
					},
				},
			},
			"info_menu": {
				Title:   "Information",
				Content: "Here you can find general information.",
				Options: Options{
					MenuType: MenuTypeButton,
					Buttons: []Button{
						{ID: "btn-back-info", Title: "Back", NextMenu: InitialMenuID},
					},
				},
			},
			"support_menu": {
				Title:   "Support",
				Content: "Our support team is here to help.",
				Options: Options{
					MenuType: MenuTypeButton,
					Buttons: []Button{
						{ID: "btn-back-support", Title: "Back", NextMenu: InitialMenuID},
					},
				},
			},
		},
	}
}
