package ber

import "math"

// EncodeLength appends the BER length encoding of n to dst and returns the
// extended slice. Short form is used for n < 128; otherwise long form is
// used with the minimum number of base-256 digits.
//
// It panics if n is negative or if the long-form digit count would exceed
// 126, since neither arises for an SNMP datagram and a caller passing such
// a value has already lost track of what it's encoding.
func EncodeLength(dst []byte, n int) []byte {
	if n < 0 {
		panic("ber: negative length")
	}
	if n < 128 {
		return append(dst, byte(n))
	}
	k := lengthDigits(n)
	if k > 126 {
		panic("ber: length too large to encode")
	}
	dst = append(dst, 0x80|byte(k))
	for i := k - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>uint(i*8)))
	}
	return dst
}

// lengthDigits returns the minimum number of base-256 digits needed to
// represent n with no leading zero byte.
func lengthDigits(n int) int {
	k := 0
	for v := n; v > 0; v >>= 8 {
		k++
	}
	if k == 0 {
		k = 1
	}
	return k
}

// DecodeLength reads one BER length field from the front of b. It returns
// the decoded length and the number of bytes consumed (the "prefix" size
// contributed by the length field alone, i.e. 1 for short form or 1+k for
// long form).
func DecodeLength(b []byte) (length int, consumed int, err error) {
	if len(b) < 1 {
		return 0, 0, newError(KindBadLength, 0, "empty slice while reading length")
	}
	first := b[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}
	k := int(first & 0x7f)
	if k == 0 {
		// 0x80 alone is the indefinite-length form, explicitly out of
		// scope entirely.
		return 0, 0, newError(KindBadLength, 0, "indefinite length form is not supported")
	}
	if len(b) < 1+k {
		return 0, 0, newError(KindBadLength, 0, "need %d length bytes, have %d", k, len(b)-1)
	}
	for i := 0; i < k; i++ {
		if length > math.MaxInt>>8 {
			return 0, 0, newError(KindBadLength, 0, "length field overflowed a signed int")
		}
		length <<= 8
		length |= int(b[1+i])
	}
	return length, 1 + k, nil
}

// HeaderLen returns the number of bytes a length field of the given value
// occupies on the wire: 1 for short form, 1+k for long form.
func HeaderLen(length int) int {
	if length < 128 {
		return 1
	}
	return 1 + lengthDigits(length)
}
