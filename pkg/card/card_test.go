package card

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/charcard/pkg/codec"
)

func TestDecodeProfile_TerminalOnlyIsAbsent(t *testing.T) {
	p, found, err := DecodeProfile(terminalOnly(t))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, p)
}

func TestDecodeProfile_OtherTextRecordsAreAbsent(t *testing.T) {
	data := buildImage(t,
		mustChunk(t, codec.TypeText, codec.NewTextPayload("Comment", "hello")),
		mustChunk(t, codec.TypeText, codec.NewTextPayload("charac", "not ours")),
		mustChunk(t, "zTXt", codec.NewTextPayload(Keyword, "wrong chunk type")),
		mustChunk(t, codec.TypeEnd, nil),
	)

	_, found, err := DecodeProfile(data)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEncodeDecode_Aria(t *testing.T) {
	out, err := EncodeProfileInto(terminalOnly(t), NewProfile(CharacterData{Name: "Aria"}))
	require.NoError(t, err)

	p, found, err := DecodeProfile(out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Aria", p.Data.Name)
	assert.Equal(t, SpecName, p.Spec)
	assert.Equal(t, SpecVersion, p.SpecVersion)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		profile *Profile
	}{
		{name: "full profile", profile: fullProfile()},
		{name: "empty data", profile: NewProfile(CharacterData{})},
		{
			name: "unicode and control characters",
			profile: NewProfile(CharacterData{
				Name:         "アリア 🎻",
				Description:  "Line one\nLine two\t\"quoted\" \\ backslash",
				SystemPrompt: "\u0000 nul and   separator",
				Tags:         []string{"日本語", ""},
			}),
		},
		{
			name: "no spec tags",
			profile: &Profile{
				Data: CharacterData{Name: "Bare", Tags: []string{}, Extensions: map[string]any{}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, base := range [][]byte{terminalOnly(t), baseImage(t)} {
				out, err := EncodeProfileInto(base, tc.profile)
				require.NoError(t, err)
				require.NoError(t, codec.Validate(out))

				got, found, err := DecodeProfile(out)
				require.NoError(t, err)
				require.True(t, found)
				assert.Equal(t, tc.profile, got)
			}
		})
	}
}

func TestEncodeProfileInto_SizeAccounting(t *testing.T) {
	base := baseImage(t)
	p := fullProfile()

	text, err := EncodeText(p)
	require.NoError(t, err)

	out, err := EncodeProfileInto(base, p)
	require.NoError(t, err)
	assert.Equal(t, len(base)+12+len(Keyword)+1+len(text), len(out))
}

func TestEncodeProfileInto_DoesNotModifyBase(t *testing.T) {
	base := baseImage(t)
	snapshot := append([]byte{}, base...)

	_, err := EncodeProfileInto(base, fullProfile())
	require.NoError(t, err)
	assert.Equal(t, snapshot, base)
}

func TestDecodeProfile_FirstRecordWins(t *testing.T) {
	first, err := EncodeProfileInto(baseImage(t), NewProfile(CharacterData{Name: "First"}))
	require.NoError(t, err)
	second, err := EncodeProfileInto(first, NewProfile(CharacterData{Name: "Second"}))
	require.NoError(t, err)

	chunks, err := codec.Parse(second)
	require.NoError(t, err)
	count := 0
	for _, c := range chunks {
		if rec, ok := c.TextRecord(); ok && rec.Keyword == Keyword {
			count++
		}
	}
	assert.Equal(t, 2, count)

	p, found, err := DecodeProfile(second)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "First", p.Data.Name)
}

func TestDecodeProfile_StopsAtFirstMatch(t *testing.T) {
	// Nothing after the chara record is read, not even a missing IEND.
	data := buildImage(t,
		charaChunk(t, `{"spec":"chara_card_v2","spec_version":"2.0","data":{"name":"Early"}}`),
		[]byte{0x00, 0x00},
	)

	p, found, err := DecodeProfile(data)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Early", p.Data.Name)
}

func TestDecodeProfile_ContainerErrors(t *testing.T) {
	t.Run("invalid signature", func(t *testing.T) {
		data := terminalOnly(t)
		data[0] = 0x00
		_, found, err := DecodeProfile(data)
		require.Error(t, err)
		assert.False(t, found)
		assert.True(t, codec.ErrInvalidSignature.Is(err), "unexpected error: %v", err)
	})

	t.Run("truncated chunk", func(t *testing.T) {
		data := buildImage(t, []byte{0x00, 0x00, 0x10, 0x00, 'I', 'D', 'A', 'T', 0x01})
		_, _, err := DecodeProfile(data)
		require.Error(t, err)
		assert.True(t, codec.ErrTruncatedChunk.Is(err), "unexpected error: %v", err)
	})

	t.Run("missing terminal marker", func(t *testing.T) {
		data := buildImage(t, mustChunk(t, "IHDR", make([]byte, 13)))
		_, _, err := DecodeProfile(data)
		require.Error(t, err)
		assert.True(t, codec.ErrMissingTerminalMarker.Is(err), "unexpected error: %v", err)
	})

	t.Run("encode into image without IEND", func(t *testing.T) {
		data := buildImage(t, mustChunk(t, "IHDR", make([]byte, 13)))
		_, err := EncodeProfileInto(data, fullProfile())
		require.Error(t, err)
		assert.True(t, codec.ErrMissingTerminalMarker.Is(err), "unexpected error: %v", err)
	})
}

func TestDecodeProfile_CorruptedRecord(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "not base64", text: "%%% not base64 %%%"},
		{name: "base64 of invalid JSON", text: base64.StdEncoding.EncodeToString([]byte(`{"data":`))},
		{name: "base64 of JSON array", text: base64.StdEncoding.EncodeToString([]byte(`["Aria"]`))},
		{name: "wrong field type", text: base64.StdEncoding.EncodeToString([]byte(`{"data":{"name":42}}`))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := buildImage(t,
				mustChunk(t, codec.TypeText, codec.NewTextPayload(Keyword, tc.text)),
				mustChunk(t, codec.TypeEnd, nil),
			)

			p, found, err := DecodeProfile(data)
			require.Error(t, err)
			assert.True(t, ErrDecode.Is(err), "unexpected error: %v", err)
			assert.False(t, found)
			assert.Nil(t, p)
		})
	}
}

func TestFindRecord(t *testing.T) {
	out, err := EncodeProfileInto(baseImage(t), NewProfile(CharacterData{Name: "Aria"}))
	require.NoError(t, err)

	rec, found, err := FindRecord(out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, Keyword, rec.Keyword)
	assert.Equal(t, rec.Text, string(rec.RawText))

	_, found, err = FindRecord(baseImage(t))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCodec_Methods(t *testing.T) {
	c := NewCodec()

	out, err := c.EncodeProfileInto(baseImage(t), fullProfile())
	require.NoError(t, err)

	chunks, err := c.Inspect(out)
	require.NoError(t, err)
	assert.Len(t, chunks, 5)

	p, found, err := c.DecodeProfile(out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, fullProfile(), p)
}
