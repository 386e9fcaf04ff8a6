package card

import (
	"encoding/base64"
	"testing"

	"github.com/ssargent/charcard/pkg/codec"
)

func mustChunk(tb testing.TB, typ string, data []byte) []byte {
	tb.Helper()
	c, err := codec.EncodeChunk(typ, data)
	if err != nil {
		tb.Fatalf("EncodeChunk(%q) failed: %v", typ, err)
	}
	return c
}

func buildImage(tb testing.TB, chunks ...[]byte) []byte {
	tb.Helper()
	buf := append([]byte{}, codec.Signature[:]...)
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return buf
}

// terminalOnly is the smallest valid container: signature and IEND.
func terminalOnly(tb testing.TB) []byte {
	tb.Helper()
	return buildImage(tb, mustChunk(tb, codec.TypeEnd, nil))
}

// baseImage mimics an exported canvas: IHDR, IDAT, a Software text record and IEND.
func baseImage(tb testing.TB) []byte {
	tb.Helper()
	return buildImage(tb,
		mustChunk(tb, "IHDR", []byte{0, 0, 1, 144, 0, 0, 2, 88, 8, 6, 0, 0, 0}),
		mustChunk(tb, "IDAT", []byte{0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00, 0x05, 0x00, 0x01}),
		mustChunk(tb, codec.TypeText, codec.NewTextPayload("Software", "charcard")),
		mustChunk(tb, codec.TypeEnd, nil),
	)
}

// charaChunk builds a chara record around a raw JSON document.
func charaChunk(tb testing.TB, doc string) []byte {
	tb.Helper()
	text := base64.StdEncoding.EncodeToString([]byte(doc))
	return mustChunk(tb, codec.TypeText, codec.NewTextPayload(Keyword, text))
}

func fullProfile() *Profile {
	return NewProfile(CharacterData{
		Name:                    "Aria",
		Description:             "A wandering bard.",
		Personality:             "Cheerful, curious.",
		Scenario:                "A tavern at dusk.",
		FirstMes:                "*tunes her lute* Evening, traveller!",
		MesExample:              "<START>\n{{user}}: Hi\n{{char}}: Hello!",
		CreatorNotes:            "Works best with long replies.",
		SystemPrompt:            "You are Aria.",
		PostHistoryInstructions: "Stay in character.",
		Tags:                    []string{"fantasy", "bard"},
		Creator:                 "someone",
		CharacterVersion:        "1.2",
		Extensions: map[string]any{
			"talkativeness": "0.5",
			"depth_prompt": map[string]any{
				"prompt": "Remember the song.",
				"depth":  float64(4),
			},
		},
	})
}
