package card

const (
	// SpecName is the schema tag written into every exported profile.
	SpecName = "chara_card_v2"

	// SpecVersion is the schema version written into every exported profile.
	SpecVersion = "2.0"

	// Keyword is the tEXt keyword reserved for embedded profiles.
	Keyword = "chara"
)

// Profile is a versioned character card document.
type Profile struct {
	Spec        string        `json:"spec" yaml:"spec"`
	SpecVersion string        `json:"spec_version" yaml:"spec_version"`
	Data        CharacterData `json:"data" yaml:"data"`
}

// CharacterData holds the character fields of a profile.
type CharacterData struct {
	Name                    string         `json:"name" yaml:"name"`
	Description             string         `json:"description" yaml:"description"`
	Personality             string         `json:"personality" yaml:"personality"`
	Scenario                string         `json:"scenario" yaml:"scenario"`
	FirstMes                string         `json:"first_mes" yaml:"first_mes"`
	MesExample              string         `json:"mes_example" yaml:"mes_example"`
	CreatorNotes            string         `json:"creator_notes" yaml:"creator_notes"`
	SystemPrompt            string         `json:"system_prompt" yaml:"system_prompt"`
	PostHistoryInstructions string         `json:"post_history_instructions" yaml:"post_history_instructions"`
	Tags                    []string       `json:"tags" yaml:"tags"`
	Creator                 string         `json:"creator" yaml:"creator"`
	CharacterVersion        string         `json:"character_version" yaml:"character_version"`
	Extensions              map[string]any `json:"extensions" yaml:"extensions"`
}

// NewProfile wraps data in a chara_card_v2 document.
func NewProfile(data CharacterData) *Profile {
	p := &Profile{
		Spec:        SpecName,
		SpecVersion: SpecVersion,
		Data:        data,
	}
	p.Normalize()
	return p
}

// Normalize replaces nil tags and extensions with empty values so that
// decoded and freshly built profiles compare equal.
func (p *Profile) Normalize() {
	if p.Data.Tags == nil {
		p.Data.Tags = []string{}
	}
	if p.Data.Extensions == nil {
		p.Data.Extensions = map[string]any{}
	}
}

// IsV2 reports whether the document declares the chara_card_v2 schema.
func (p *Profile) IsV2() bool {
	return p.Spec == SpecName
}

// Persona joins description and personality the way the settings screen
// shows them: description first, then a blank line, then personality.
func (d CharacterData) Persona() string {
	switch {
	case d.Description == "":
		return d.Personality
	case d.Personality == "":
		return d.Description
	default:
		return d.Description + "\n\n" + d.Personality
	}
}
