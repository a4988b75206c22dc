package seal

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/forestrie/go-wordarena/arena"
	"github.com/forestrie/go-wordarena/dynarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
)

func testRegion(t *testing.T) (*arena.Region, dynarray.Handle) {
	t.Helper()
	r, err := arena.New()
	require.NoError(t, err)
	h, err := dynarray.NewUint64Array(r, 0, 1, 2, 3)
	require.NoError(t, err)
	_, err = r.AppendUint64(100)
	require.NoError(t, err)
	return r, h
}

func testSignerVerifier(t *testing.T) (cose.Signer, cose.Verifier) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	signer, err := cose.NewSigner(cose.AlgorithmES256, key)
	require.NoError(t, err)
	verifier, err := cose.NewVerifier(cose.AlgorithmES256, &key.PublicKey)
	require.NoError(t, err)
	return signer, verifier
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	r, h := testRegion(t)
	state := CaptureState(r)

	restored, err := Restore(state)
	require.NoError(t, err)

	assert.Equal(t, r.ID(), restored.ID())
	assert.Equal(t, r.HighWater(), restored.HighWater())
	assert.Equal(t, r.Bytes(), restored.Bytes())

	// the restored region is a working region, not just a byte copy
	require.NoError(t, dynarray.PushUint64(restored, h, 4))
	length, err := dynarray.Length(restored, h)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), length)
}

func TestRestoreCorruptState(t *testing.T) {
	r, _ := testRegion(t)
	state := CaptureState(r)
	state.Words = state.Words[:len(state.Words)-1]

	_, err := Restore(state)
	assert.ErrorIs(t, err, ErrStateCorrupt)
}

func TestSealRoundTrip(t *testing.T) {
	type fields struct {
		issuer  string
		subject string
	}
	tests := []struct {
		name     string
		fields   fields
		external []byte
	}{
		{"common case P-256 & ES256", fields{"synsation.org", "call-memory"}, nil},
		{"with external data", fields{"synsation.org", "call-memory"}, []byte("call boundary 7")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := NewCodec()
			require.NoError(t, err)
			signer, verifier := testSignerVerifier(t)

			r, _ := testRegion(t)
			state := CaptureState(r)

			rs := NewRegionSealer(tt.fields.issuer, tt.fields.subject, codec)
			sealed, err := rs.Sign1(signer, state, tt.external)
			require.NoError(t, err)

			got, err := VerifySignedState(codec, verifier, sealed, tt.external)
			require.NoError(t, err)
			assert.Equal(t, state, got)
		})
	}
}

func TestSealVerifyFailures(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)
	signer, verifier := testSignerVerifier(t)
	_, wrongVerifier := testSignerVerifier(t)

	r, _ := testRegion(t)
	rs := NewRegionSealer("synsation.org", "call-memory", codec)
	sealed, err := rs.Sign1(signer, CaptureState(r), nil)
	require.NoError(t, err)

	// a verifier for a different key must reject the seal
	_, err = VerifySignedState(codec, wrongVerifier, sealed, nil)
	assert.ErrorIs(t, err, ErrSealVerifyFailed)

	// mismatched external data must reject the seal
	_, err = VerifySignedState(codec, verifier, sealed, []byte("other boundary"))
	assert.ErrorIs(t, err, ErrSealVerifyFailed)
}

// A host binding with copy semantics mutates a private copy of the region,
// so the state captured after the call will not match what the engine did.
// Sealed states make that divergence detectable.
func TestSealDetectsLostWriteThrough(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	r, h := testRegion(t)
	before := CaptureState(r)

	require.NoError(t, dynarray.PushUint64(r, h, 4))
	after := CaptureState(r)

	beforeBytes, err := codec.MarshalCBOR(stripTime(before))
	require.NoError(t, err)
	afterBytes, err := codec.MarshalCBOR(stripTime(after))
	require.NoError(t, err)
	assert.NotEqual(t, beforeBytes, afterBytes)
}

func stripTime(s RegionState) RegionState {
	s.Timestamp = 0
	return s
}
