package card

import (
	"strings"
)

const (
	// DefaultName is used when a profile is exported without a name.
	DefaultName = "Character"

	// DefaultCreator is written to exported profiles unless overridden.
	DefaultCreator = "charcard"

	// DefaultCreatorNotes is written to exported profiles unless overridden.
	DefaultCreatorNotes = "Exported from charcard"

	// DefaultCharacterVersion is written to exported profiles unless overridden.
	DefaultCharacterVersion = "1.0"
)

// Settings is the host application's view of a character: the three fields
// its settings screen edits.
type Settings struct {
	Name         string `json:"name" yaml:"name"`
	Persona      string `json:"persona" yaml:"persona"`
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`
}

// ExportOptions fills the authoring fields of an exported profile.
type ExportOptions struct {
	Creator          string `json:"creator" yaml:"creator"`
	CreatorNotes     string `json:"creator_notes" yaml:"creator_notes"`
	CharacterVersion string `json:"character_version" yaml:"character_version"`
}

// DefaultExportOptions returns the options used when none are configured.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Creator:          DefaultCreator,
		CreatorNotes:     DefaultCreatorNotes,
		CharacterVersion: DefaultCharacterVersion,
	}
}

// Settings maps an imported profile onto the host's character settings.
func (p *Profile) Settings() Settings {
	return Settings{
		Name:         p.Data.Name,
		Persona:      p.Data.Persona(),
		SystemPrompt: p.Data.SystemPrompt,
	}
}

// ProfileFromSettings builds the profile exported for the given settings.
// The persona becomes the description; personality stays empty.
func ProfileFromSettings(s Settings, opts ExportOptions) *Profile {
	name := s.Name
	if name == "" {
		name = DefaultName
	}

	return NewProfile(CharacterData{
		Name:             name,
		Description:      s.Persona,
		CreatorNotes:     opts.CreatorNotes,
		SystemPrompt:     s.SystemPrompt,
		Creator:          opts.Creator,
		CharacterVersion: opts.CharacterVersion,
	})
}

// ExportFilename returns the download name for a card: every character
// outside [A-Za-z0-9] becomes an underscore.
func ExportFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + len("_card.png"))
	for _, c := range name {
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			sb.WriteRune(c)
		} else {
			sb.WriteByte('_')
		}
	}
	sb.WriteString("_card.png")
	return sb.String()
}
