package card

import (
	"github.com/ssargent/charcard/pkg/codec"
)

// Codec bundles the card operations behind a value that can be injected
// where an interface is expected.
type Codec struct{}

// NewCodec creates a new card codec instance
func NewCodec() *Codec {
	return &Codec{}
}

// Inspect returns every chunk of the image up to IEND.
func (c *Codec) Inspect(data []byte) ([]codec.Chunk, error) {
	return codec.Parse(data)
}

// DecodeProfile is the method form of DecodeProfile.
func (c *Codec) DecodeProfile(data []byte) (*Profile, bool, error) {
	return DecodeProfile(data)
}

// EncodeProfileInto is the method form of EncodeProfileInto.
func (c *Codec) EncodeProfileInto(base []byte, p *Profile) ([]byte, error) {
	return EncodeProfileInto(base, p)
}

// FindRecord returns the first chara text record in stream order.
// Chunks after it are not read.
func FindRecord(data []byte) (codec.TextRecord, bool, error) {
	var (
		rec   codec.TextRecord
		found bool
	)
	err := codec.Scan(data, func(c codec.Chunk) bool {
		if !c.IsText() {
			return true
		}
		r := codec.ParseTextRecord(c.Data)
		if r.Keyword != Keyword {
			return true
		}
		rec, found = r, true
		return false
	})
	if err != nil {
		return codec.TextRecord{}, false, err
	}
	return rec, found, nil
}

// DecodeProfile extracts the embedded profile from an image.
// An image without a chara record returns found == false and no error.
// Container errors keep their codec kinds; a bad record returns ErrDecode.
func DecodeProfile(data []byte) (*Profile, bool, error) {
	rec, found, err := FindRecord(data)
	if err != nil || !found {
		return nil, false, err
	}

	p, err := DecodeText(rec.RawText)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// EncodeProfileInto returns a copy of base with p embedded as a chara record
// in front of IEND.
func EncodeProfileInto(base []byte, p *Profile) ([]byte, error) {
	text, err := EncodeText(p)
	if err != nil {
		return nil, err
	}
	return codec.Inject(base, Keyword, text)
}
