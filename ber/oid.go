package ber

import "fmt"

// OID is a validated ASN.1 OBJECT IDENTIFIER: an ordered sequence of
// non-negative arcs with at least two elements, where arc[0] is one of
// {0,1,2} and, when arc[0] is 0 or 1, arc[1] is at most 39.
//
// OID values are immutable once constructed; NewOID and the decoder are
// the only ways to produce one, so the invariant can't be violated after
// the fact.
type OID struct {
	arcs []uint32
}

// NewOID is the OID constructor collaborator described in the codec's
// external interfaces: it validates the two-leading-arc invariant and
// returns a copy of arcs so the caller's backing array can't mutate the
// OID afterwards.
func NewOID(arcs ...uint32) (OID, error) {
	if len(arcs) < 2 {
		return OID{}, newError(KindMalformedOid, -1, "oid needs at least 2 arcs, got %d", len(arcs))
	}
	if arcs[0] > 2 {
		return OID{}, newError(KindMalformedOid, -1, "first arc %d is not in {0,1,2}", arcs[0])
	}
	if arcs[0] < 2 && arcs[1] > 39 {
		return OID{}, newError(KindMalformedOid, -1, "second arc %d exceeds 39 when first arc is %d", arcs[1], arcs[0])
	}
	cp := make([]uint32, len(arcs))
	copy(cp, arcs)
	return OID{arcs: cp}, nil
}

// Arcs returns a copy of the OID's subidentifiers.
func (o OID) Arcs() []uint32 {
	cp := make([]uint32, len(o.arcs))
	copy(cp, o.arcs)
	return cp
}

// Len returns the number of arcs.
func (o OID) Len() int { return len(o.arcs) }

// Equal reports whether o and other name the same object identifier.
func (o OID) Equal(other OID) bool {
	if len(o.arcs) != len(other.arcs) {
		return false
	}
	for i, a := range o.arcs {
		if a != other.arcs[i] {
			return false
		}
	}
	return true
}

func (o OID) String() string {
	s := ""
	for i, a := range o.arcs {
		if i > 0 {
			s += "."
		}
		s += fmt.Sprintf("%d", a)
	}
	return s
}

// encodeOIDBody appends the base-128 body of an OID (without tag or
// length) to dst.
func encodeOIDBody(dst []byte, o OID) []byte {
	dst = append(dst, byte(o.arcs[0]*40+o.arcs[1]))
	for _, arc := range o.arcs[2:] {
		dst = encodeBase128(dst, arc)
	}
	return dst
}

// encodeBase128 appends the base-128 continuation encoding of v to dst,
// most-significant digit first, with the high bit set on every digit but
// the last.
func encodeBase128(dst []byte, v uint32) []byte {
	if v == 0 {
		return append(dst, 0)
	}
	var tmp [5]byte
	n := 0
	for x := v; x > 0; x >>= 7 {
		tmp[n] = byte(x & 0x7f)
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b := tmp[i]
		if i != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// decodeOIDBody decodes the base-128 body of an OID (the bytes following
// tag and length) into an OID. offset is the position of body[0] within
// the overall input, used only for error reporting.
func decodeOIDBody(body []byte, offset int) (OID, error) {
	if len(body) < 1 {
		return OID{}, newError(KindMalformedOid, offset, "empty oid body")
	}
	first := body[0]
	arcs := make([]uint32, 0, len(body)+1)
	arcs = append(arcs, uint32(first)/40, uint32(first)%40)

	var current uint64
	haveDigit := false
	for i := 1; i < len(body); i++ {
		b := body[i]
		current = current<<7 | uint64(b&0x7f)
		if current > 0xffffffff {
			return OID{}, newError(KindMalformedOid, offset+i, "arc overflowed 32 bits")
		}
		if b&0x80 == 0 {
			arcs = append(arcs, uint32(current))
			current = 0
			haveDigit = false
		} else {
			haveDigit = true
		}
	}
	if haveDigit {
		return OID{}, newError(KindMalformedOid, offset+len(body)-1, "oid body ends mid continuation")
	}
	if len(arcs) < 2 {
		return OID{}, newError(KindMalformedOid, offset, "oid decoded to fewer than 2 arcs")
	}
	if arcs[0] > 2 {
		return OID{}, newError(KindMalformedOid, offset, "first arc %d is not in {0,1,2}", arcs[0])
	}
	return OID{arcs: arcs}, nil
}
