package seal

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/veraison/go-cose"
)

var ErrSealVerifyFailed = errors.New("the seal signature verification failed")

// RegionSealer produces COSE Sign1 envelopes over region states. The issuer
// and subject identify who sealed what and travel in the protected headers.
type RegionSealer struct {
	issuer  string
	subject string
	codec   Codec
}

func NewRegionSealer(issuer, subject string, codec Codec) RegionSealer {
	return RegionSealer{
		issuer:  issuer,
		subject: subject,
		codec:   codec,
	}
}

// Sign1 seals state, returning the encoded COSE Sign1 message. external is
// additional authenticated data bound into the signature, it may be nil.
func (rs RegionSealer) Sign1(signer cose.Signer, state RegionState, external []byte) ([]byte, error) {
	payload, err := rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}
	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				"iss": rs.issuer,
				"sub": rs.subject,
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, signer); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// VerifySignedState checks the envelope signature and decodes the sealed
// state. external must match whatever was supplied to Sign1.
func VerifySignedState(codec Codec, verifier cose.Verifier, encoded, external []byte) (RegionState, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(encoded); err != nil {
		return RegionState{}, err
	}
	if err := msg.Verify(external, verifier); err != nil {
		return RegionState{}, fmt.Errorf("%w: %v", ErrSealVerifyFailed, err)
	}
	var state RegionState
	if err := codec.UnmarshalCBOR(msg.Payload, &state); err != nil {
		return RegionState{}, err
	}
	return state, nil
}
