package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterData_Persona(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		personality string
		want        string
	}{
		{name: "both", description: "A bard.", personality: "Cheerful.", want: "A bard.\n\nCheerful."},
		{name: "description only", description: "A bard.", want: "A bard."},
		{name: "personality only", personality: "Cheerful.", want: "Cheerful."},
		{name: "neither", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := CharacterData{Description: tc.description, Personality: tc.personality}
			assert.Equal(t, tc.want, d.Persona())
		})
	}
}

func TestProfile_Settings(t *testing.T) {
	s := fullProfile().Settings()

	assert.Equal(t, Settings{
		Name:         "Aria",
		Persona:      "A wandering bard.\n\nCheerful, curious.",
		SystemPrompt: "You are Aria.",
	}, s)
}

func TestProfileFromSettings(t *testing.T) {
	p := ProfileFromSettings(Settings{
		Name:         "Aria",
		Persona:      "A wandering bard.",
		SystemPrompt: "You are Aria.",
	}, DefaultExportOptions())

	assert.Equal(t, SpecName, p.Spec)
	assert.Equal(t, SpecVersion, p.SpecVersion)
	assert.Equal(t, "Aria", p.Data.Name)
	assert.Equal(t, "A wandering bard.", p.Data.Description)
	assert.Empty(t, p.Data.Personality)
	assert.Equal(t, "You are Aria.", p.Data.SystemPrompt)
	assert.Equal(t, DefaultCreator, p.Data.Creator)
	assert.Equal(t, DefaultCreatorNotes, p.Data.CreatorNotes)
	assert.Equal(t, DefaultCharacterVersion, p.Data.CharacterVersion)
	assert.Equal(t, []string{}, p.Data.Tags)
	assert.Equal(t, map[string]any{}, p.Data.Extensions)
}

func TestProfileFromSettings_DefaultName(t *testing.T) {
	p := ProfileFromSettings(Settings{}, ExportOptions{Creator: "me"})
	assert.Equal(t, DefaultName, p.Data.Name)
	assert.Equal(t, "me", p.Data.Creator)
}

func TestSettings_RoundTripThroughProfile(t *testing.T) {
	in := Settings{Name: "Aria", Persona: "Line one\n\nLine two", SystemPrompt: "Be kind."}
	assert.Equal(t, in, ProfileFromSettings(in, DefaultExportOptions()).Settings())
}

func TestExportFilename(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{name: "Aria", want: "Aria_card.png"},
		{name: "Lady J. Smith", want: "Lady_J__Smith_card.png"},
		{name: "Ária", want: "_ria_card.png"},
		{name: "../etc/passwd", want: "___etc_passwd_card.png"},
		{name: "", want: "_card.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExportFilename(tc.name))
		})
	}
}
