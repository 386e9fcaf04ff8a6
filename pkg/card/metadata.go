package card

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/goccy/go-json"
)

// document is the outer shape of a profile. Data stays raw until we know
// whether the document nests its fields or keeps them at the top level.
type document struct {
	Spec        string          `json:"spec"`
	SpecVersion string          `json:"spec_version"`
	Data        json.RawMessage `json:"data"`
}

// EncodeText serializes a profile to the text stored in a chara record:
// the standard base64 encoding of its JSON document.
func EncodeText(p *Profile) (string, error) {
	if p == nil {
		return "", ErrEncode.New()
	}

	doc := *p
	doc.Normalize()

	raw, err := json.Marshal(&doc)
	if err != nil {
		return "", ErrEncode.Wrap(err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeText parses the text of a chara record. Both the nested
// {spec, spec_version, data} shape and the flat shape are accepted.
func DecodeText(text []byte) (*Profile, error) {
	raw, err := decodeBase64(text)
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	p, err := decodeDocument(raw)
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	p.Normalize()
	return p, nil
}

// ParseDocument decodes a profile from plain JSON in either the nested or
// the flat shape.
func ParseDocument(raw []byte) (*Profile, error) {
	p, err := decodeDocument(raw)
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	p.Normalize()
	return p, nil
}

func decodeDocument(raw []byte) (*Profile, error) {
	if !isObject(raw) {
		return nil, fmt.Errorf("profile document is not a JSON object")
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse profile document: %w", err)
	}

	p := &Profile{
		Spec:        doc.Spec,
		SpecVersion: doc.SpecVersion,
	}

	fields := raw
	if isObject(doc.Data) {
		fields = doc.Data
	}
	if err := json.Unmarshal(fields, &p.Data); err != nil {
		return nil, fmt.Errorf("parse character data: %w", err)
	}

	return p, nil
}

// decodeBase64 accepts padded or unpadded standard base64 and ignores
// surrounding whitespace.
func decodeBase64(text []byte) ([]byte, error) {
	text = bytes.TrimSpace(text)

	raw, err := base64.StdEncoding.DecodeString(string(text))
	if err == nil {
		return raw, nil
	}
	if len(text)%4 != 0 {
		if raw, rawErr := base64.RawStdEncoding.DecodeString(string(text)); rawErr == nil {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("decode base64: %w", err)
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
