package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

func TestDecodeTree_InvalidJSON(t *testing.T) {
	_, err := DecodeTree([]byte("{not json"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestDecodeTree_MissingMenusKey(t *testing.T) {
	_, err := DecodeTree([]byte(`{"greetings": {"morning": "Hi"}}`))
	assert.True(t, apperrors.IsValidation(err))
}

func TestDecodeTree_MenusNotAnObject(t *testing.T) {
	_, err := DecodeTree([]byte(`{"menus": ["initial"]}`))
	assert.True(t, apperrors.IsValidation(err))
}

func TestDecodeTree_Valid(t *testing.T) {
	doc := []byte(`{
		"greetings": {"morning": "Good morning"},
		"menus": {
			"initial": {
				"title": "Main",
				"options": {
					"menu_type": "button",
					"buttons": [{"id": "b1", "title": "Info", "next_menu": "info"}]
				}
			}
		}
	}`)

	tree, err := DecodeTree(doc)
	require.NoError(t, err)
	assert.Equal(t, "Good morning", tree.Greetings["morning"])
	require.True(t, tree.HasMenu("initial"))
	assert.Equal(t, "info", tree.Menus["initial"].Options.Buttons[0].NextMenu)
}

func TestDecodeTree_EmptyMenusObject(t *testing.T) {
	tree, err := DecodeTree([]byte(`{"menus": {}}`))
	require.NoError(t, err)
	assert.NotNil(t, tree.Menus)
	assert.Empty(t, tree.Menus)
}

func TestValidateTree_CleanTree(t *testing.T) {
	assert.Empty(t, ValidateTree(DefaultTree()))
}

func TestValidateTree_MissingInitialMenu(t *testing.T) {
	tree := Tree{Menus: map[string]Menu{
		"orphan": {Title: "Orphan", Options: Options{MenuType: MenuTypeButton}},
	}}

	issues := ValidateTree(tree)
	require.Len(t, issues, 1)
	assert.Equal(t, InitialMenuID, issues[0].MenuID)
}

func TestValidateTree_UnknownMenuType(t *testing.T) {
	tree := Tree{Menus: map[string]Menu{
		InitialMenuID: {Title: "Main", Options: Options{MenuType: "carousel"}},
	}}

	issues := ValidateTree(tree)
	require.Len(t, issues, 1)
	assert.Equal(t, "options.menu_type", issues[0].Field)
}

func TestValidateTree_DanglingReferences(t *testing.T) {
	tree := Tree{Menus: map[string]Menu{
		InitialMenuID: {
			Title: "Main",
			Options: Options{
				MenuType: MenuTypeButton,
				Buttons:  []Button{{ID: "b1", Title: "Ghost", NextMenu: "missing"}},
			},
		},
		"catalog": {
			Title: "Catalog",
			Options: Options{
				MenuType: MenuTypeList,
				Sections: []Section{{
					Rows: []Row{{ID: "r1", Title: "Gone", NextMenu: "also_missing"}},
				}},
			},
		},
	}}

	issues := ValidateTree(tree)
	require.Len(t, issues, 2)
	assert.Equal(t, "options.buttons", issues[0].Field)
	assert.Equal(t, "options.sections", issues[1].Field)
}

func TestValidateTree_InvalidExtraAction(t *testing.T) {
	tree := Tree{Menus: map[string]Menu{
		InitialMenuID: {
			Title:        "Main",
			Options:      Options{MenuType: MenuTypeButton},
			ExtraActions: []Action{{Type: ActionTypeLink}},
		},
	}}

	issues := ValidateTree(tree)
	require.Len(t, issues, 1)
	assert.Equal(t, "extra_actions[0]", issues[0].Field)
}
