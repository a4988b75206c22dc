package seal

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec pairs the encode and decode modes used for region state documents.
// Encoding is core deterministic so that equal states produce equal bytes,
// which is what makes sealed state comparison meaningful.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

func (c Codec) MarshalCBOR(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c Codec) UnmarshalCBOR(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}
