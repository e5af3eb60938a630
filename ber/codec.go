package ber

// Limits bounds the input the decoder will trust. The decoder rejects an
// input slice longer than MaxInputLen before reading any header; declared
// lengths are then checked against the bytes actually present.
type Limits struct {
	// MaxInputLen is the largest byte slice Decode will process. Zero
	// means "use DefaultLimits.MaxInputLen".
	MaxInputLen int
}

// DefaultLimits matches the largest UDP datagram an SNMP agent is
// expected to receive.
var DefaultLimits = Limits{MaxInputLen: 65507}

func (l Limits) maxInputLen() int {
	if l.MaxInputLen <= 0 {
		return DefaultLimits.MaxInputLen
	}
	return l.MaxInputLen
}

// Encode serializes v to its BER TLV encoding. codec is consulted only
// when v (or one of its Sequence descendants) is a PDU-tagged Value; it
// may be nil if the caller never encodes those. reporter receives
// non-fatal diagnostics and may be nil, in which case they're discarded.
func Encode(v Value, codec PDUCodec, reporter ErrorReporter) ([]byte, error) {
	reporter = reporterOrNop(reporter)
	switch v.tag {
	case TagInteger:
		body := encodeIntegerBody(nil, v.i64)
		return EncodeTLV(TagInteger, body), nil
	case TagOctetString:
		return EncodeTLV(TagOctetString, v.bytes), nil
	case TagIA5String:
		for i, b := range v.bytes {
			if b > 0x7f {
				reporter.Warnf("ia5string contains non-ASCII byte 0x%x at index %d; encoding as UTF-8 unchanged", b, i)
				break
			}
		}
		return EncodeTLV(TagIA5String, v.bytes), nil
	case TagBitString:
		body := make([]byte, 0, 1+len(v.bytes))
		body = append(body, v.unusedBits)
		body = append(body, v.bytes...)
		return EncodeTLV(TagBitString, body), nil
	case TagNull, TagNoSuchObject, TagEndOfMibView:
		return EncodeTLV(v.tag, nil), nil
	case TagOID:
		body := encodeOIDBody(nil, v.oid)
		return EncodeTLV(TagOID, body), nil
	case TagSequence:
		buf := scratchPool.get()
		defer scratchPool.put(buf)
		for _, child := range v.seq {
			enc, err := Encode(child, codec, reporter)
			if err != nil {
				return nil, err
			}
			buf.Write(enc)
		}
		return EncodeTLV(TagSequence, buf.Bytes()), nil
	case TagIPAddress:
		body := []byte{byte(v.u32 >> 24), byte(v.u32 >> 16), byte(v.u32 >> 8), byte(v.u32)}
		return EncodeTLV(TagIPAddress, body), nil
	case TagCounter32, TagGauge32, TagTimeTicks:
		body := []byte{byte(v.u32 >> 24), byte(v.u32 >> 16), byte(v.u32 >> 8), byte(v.u32)}
		return EncodeTLV(v.tag, body), nil
	case TagCounter64:
		body := make([]byte, 8)
		for i := 0; i < 8; i++ {
			body[i] = byte(v.u64 >> uint((7-i)*8))
		}
		return EncodeTLV(TagCounter64, body), nil
	default:
		if isPDUTag(v.tag) {
			if codec == nil {
				return nil, newError(KindUnsupportedType, -1, "no PDU codec configured to encode tag %s", v.tag)
			}
			return codec.EncodePDU(v.tag, v.pdu)
		}
		return nil, newError(KindUnsupportedType, -1, "unknown value tag %s", v.tag)
	}
}

// Decode consumes one Value from the front of b and returns it along with
// the number of bytes consumed, leaving any trailing bytes untouched.
func Decode(b []byte, codec PDUCodec, reporter ErrorReporter) (Value, int, error) {
	return decodeAt(b, 0, DefaultLimits, codec, reporterOrNop(reporter))
}

// DecodeWithLimits behaves like Decode but enforces custom Limits instead
// of DefaultLimits.
func DecodeWithLimits(b []byte, limits Limits, codec PDUCodec, reporter ErrorReporter) (Value, int, error) {
	return decodeAt(b, 0, limits, codec, reporterOrNop(reporter))
}

// EncodeTLV wraps body in tag/length framing. It's exported so an external
// PDUCodec implementation (see package pdu) can produce a complete TLV,
// including the outer context-specific tag, without duplicating the
// length-encoding arithmetic that lives here.
func EncodeTLV(tag Tag, body []byte) []byte {
	out := make([]byte, 0, 2+len(body))
	out = append(out, byte(tag))
	out = EncodeLength(out, len(body))
	out = append(out, body...)
	return out
}

// DecodeHeader reads one TLV header from the front of b and returns the
// identifier octet, the body slice, and the total number of bytes the
// TLV occupies (header + body). It's exported for the same reason as
// EncodeTLV: an external PDUCodec receives the complete TLV and needs
// to parse its own outer framing before decoding its body.
func DecodeHeader(b []byte) (tag Tag, body []byte, consumed int, err error) {
	tag, body, consumed, _, err = decodeHeaderAt(b, 0)
	return
}

// decodeHeaderAt is DecodeHeader with an input offset threaded through for
// error reporting, and the raw length-field byte count exposed for
// callers (like the IpAddress case below) that need to assert on it.
func decodeHeaderAt(b []byte, offset int) (tag Tag, body []byte, consumed int, lengthConsumed int, err error) {
	if len(b) < 1 {
		return 0, nil, 0, 0, newError(KindBadLength, offset, "empty slice while reading identifier octet")
	}
	tag = Tag(b[0])
	length, lc, lerr := DecodeLength(b[1:])
	if lerr != nil {
		if berErr, ok := lerr.(*Error); ok {
			berErr.Offset += offset + 1
		}
		return 0, nil, 0, 0, lerr
	}
	prefix := 1 + lc
	if length > len(b)-prefix {
		return 0, nil, 0, 0, newError(KindBadLength, offset, "declared length %d exceeds available %d bytes", length, len(b)-prefix)
	}
	return tag, b[prefix : prefix+length], prefix + length, lc, nil
}

// decodeAt is the recursive entry point; offset is the position of b[0]
// within the overall input, used only to make error offsets meaningful
// when decoding nested Sequence children.
func decodeAt(b []byte, offset int, limits Limits, codec PDUCodec, reporter ErrorReporter) (Value, int, error) {
	if len(b) > limits.maxInputLen() {
		return Value{}, 0, newError(KindBadLength, offset, "input length %d exceeds limit %d", len(b), limits.maxInputLen())
	}
	tag, body, consumed, lengthConsumed, err := decodeHeaderAt(b, offset)
	if err != nil {
		return Value{}, 0, err
	}
	bodyOffset := offset + (consumed - len(body))

	switch tag {
	case TagInteger:
		if len(body) > 8 {
			return Value{}, 0, newError(KindIntegerOverflow, offset, "integer payload of %d bytes exceeds 8", len(body))
		}
		if len(body) == 0 {
			return Value{}, 0, newError(KindBadLength, offset, "integer payload must be at least 1 byte")
		}
		return Integer(decodeIntegerBody(body)), consumed, nil

	case TagOctetString:
		return OctetStringValue(body), consumed, nil

	case TagIA5String:
		return IA5StringValue(string(body)), consumed, nil

	case TagBitString:
		v, err := decodeBitStringBody(body, bodyOffset)
		if err != nil {
			return Value{}, 0, err
		}
		return v, consumed, nil

	case TagNull:
		if len(body) != 0 {
			return Value{}, 0, newError(KindBadLength, offset, "null payload must be empty, got %d bytes", len(body))
		}
		return NullValue(), consumed, nil

	case TagNoSuchObject:
		if len(body) != 0 {
			return Value{}, 0, newError(KindBadLength, offset, "noSuchObject payload must be empty, got %d bytes", len(body))
		}
		return NoSuchObjectValue(), consumed, nil

	case TagEndOfMibView:
		if len(body) != 0 {
			return Value{}, 0, newError(KindBadLength, offset, "endOfMibView payload must be empty, got %d bytes", len(body))
		}
		return EndOfMibViewValue(), consumed, nil

	case TagOID:
		o, err := decodeOIDBody(body, bodyOffset)
		if err != nil {
			return Value{}, 0, err
		}
		return OIDValue(o), consumed, nil

	case TagSequenceOld, TagSequence:
		if tag == TagSequenceOld {
			reporter.Debugf("accepting legacy 0x10 sequence tag at offset %d", offset)
		}
		children, err := decodeSequenceBody(body, bodyOffset, limits, codec, reporter)
		if err != nil {
			return Value{}, 0, err
		}
		return SequenceValue(children...), consumed, nil

	case TagIPAddress:
		if lengthConsumed != 1 || len(body) != 4 {
			return Value{}, 0, newError(KindBadLength, offset, "ipaddress requires a 2-byte header and 4-byte body, got header %d body %d", 1+lengthConsumed, len(body))
		}
		return IPAddressValue(body[0], body[1], body[2], body[3]), consumed, nil

	case TagCounter32, TagGauge32, TagTimeTicks:
		val, err := decodeU32Variable(body, bodyOffset)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{tag: tag, u32: val}, consumed, nil

	case TagCounter64:
		val, err := decodeU64Variable(body, bodyOffset)
		if err != nil {
			return Value{}, 0, err
		}
		return Counter64Value(val), consumed, nil

	default:
		if isPDUTag(tag) {
			if codec == nil {
				return Value{}, 0, newError(KindUnsupportedType, offset, "no PDU codec configured to decode tag %s", tag)
			}
			pduTag, p, pduConsumed, err := codec.DecodePDU(b[:consumed])
			if err != nil {
				return Value{}, 0, wrapError(KindUnsupportedType, offset, err, "pdu codec failed for tag %s", tag)
			}
			if pduTag != tag {
				return Value{}, 0, newError(KindUnexpectedPdu, offset, "pdu codec returned type %s for outer tag %s", pduTag, tag)
			}
			if pduConsumed != consumed {
				return Value{}, 0, newError(KindBadLength, offset, "pdu codec consumed %d bytes, expected %d", pduConsumed, consumed)
			}
			val, err := PDUValue(pduTag, p)
			if err != nil {
				return Value{}, 0, err
			}
			return val, consumed, nil
		}
		reporter.Warnf("unsupported identifier octet 0x%x at offset %d", byte(tag), offset)
		return Value{}, 0, newError(KindUnsupportedType, offset, "unsupported identifier octet 0x%x", byte(tag))
	}
}

func decodeSequenceBody(body []byte, offset int, limits Limits, codec PDUCodec, reporter ErrorReporter) ([]Value, error) {
	var children []Value
	pos := 0
	for pos < len(body) {
		child, n, err := decodeAt(body[pos:], offset+pos, limits, codec, reporter)
		if err != nil {
			return nil, err
		}
		if n > len(body)-pos {
			return nil, newError(KindBadLength, offset+pos, "child value consumed %d bytes, only %d remained", n, len(body)-pos)
		}
		children = append(children, child)
		pos += n
	}
	return children, nil
}
