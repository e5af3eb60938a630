package ber_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwatch/snmpber/ber"
)

func TestNewOIDValidation(t *testing.T) {
	_, err := ber.NewOID(1)
	require.Error(t, err, "single arc must be rejected")

	_, err = ber.NewOID(3, 1)
	require.Error(t, err, "first arc outside {0,1,2} must be rejected")

	_, err = ber.NewOID(1, 40)
	require.Error(t, err, "second arc > 39 with first arc < 2 must be rejected")

	_, err = ber.NewOID(2, 40)
	require.NoError(t, err, "second arc > 39 is fine when first arc is 2")
}

func TestOIDFirstArcRuleHoldsAfterDecode(t *testing.T) {
	o, err := ber.NewOID(1, 3, 6, 1, 2, 1)
	require.NoError(t, err)

	enc, err := ber.Encode(ber.OIDValue(o), nil, nil)
	require.NoError(t, err)

	decoded, _, err := ber.Decode(enc, nil, nil)
	require.NoError(t, err)

	got, ok := decoded.OID()
	require.True(t, ok)
	arcs := got.Arcs()
	require.Contains(t, []uint32{0, 1, 2}, arcs[0])
	if arcs[0] < 2 {
		require.Less(t, arcs[1], uint32(40))
	}
}

func TestOIDRoundTripsLargeArc(t *testing.T) {
	o, err := ber.NewOID(1, 3, 6, 1, 4, 1, 999999999)
	require.NoError(t, err)

	enc, err := ber.Encode(ber.OIDValue(o), nil, nil)
	require.NoError(t, err)

	decoded, n, err := ber.Decode(enc, nil, nil)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)

	got, ok := decoded.OID()
	require.True(t, ok)
	require.True(t, o.Equal(got))
}

func TestOIDDecodeTruncatedContinuation(t *testing.T) {
	// tag 0x06, length 2, first byte 0x2b (1.3), second byte 0x81 (continuation bit
	// set, no terminating byte follows).
	tlv := []byte{0x06, 0x02, 0x2b, 0x81}
	_, _, err := ber.Decode(tlv, nil, nil)
	require.Error(t, err)
	require.True(t, ber.IsKind(err, ber.KindMalformedOid))
}
