// Package pdu implements the external PDU codec collaborator the ber
// package's value codec delegates to for GetRequest, GetNextRequest,
// GetResponse, and Report bodies. It's a codec for the PDU body alone,
// decoupled from the version/community envelope that stays out of scope
// for this module.
package pdu

import (
	"github.com/nwatch/snmpber/ber"
)

// VarBind pairs an object identifier with its value, mirroring the
// teacher's Varbind/baseVarbind split but built directly on ber.OID and
// ber.Value instead of a bespoke hierarchy of *Varbind types per wire tag.
type VarBind struct {
	OID   ber.OID
	Value ber.Value
}

// PDU is the body of a GetRequest/GetNextRequest/GetResponse/Report,
// standing alone from any particular SNMP version's envelope.
type PDU struct {
	RequestID   int32
	ErrorStatus int32
	ErrorIndex  int32
	VarBinds    []VarBind
}

// Codec implements ber.PDUCodec.
type Codec struct {
	Reporter ber.ErrorReporter
}

// New returns a Codec that reports diagnostics to reporter (which may be
// nil, in which case diagnostics are discarded).
func New(reporter ber.ErrorReporter) *Codec {
	return &Codec{Reporter: reporter}
}

// EncodePDU implements ber.PDUCodec.
func (c *Codec) EncodePDU(tag ber.Tag, p interface{}) ([]byte, error) {
	body, ok := asPDU(p)
	if !ok {
		return nil, ber.NewError(ber.KindUnsupportedType, "EncodePDU expects a pdu.PDU or *pdu.PDU, got %T", p)
	}
	vbSeq := make([]ber.Value, 0, len(body.VarBinds))
	for _, vb := range body.VarBinds {
		vbSeq = append(vbSeq, ber.SequenceValue(ber.OIDValue(vb.OID), vb.Value))
	}
	inner := ber.SequenceValue(
		ber.Integer(int64(body.RequestID)),
		ber.Integer(int64(body.ErrorStatus)),
		ber.Integer(int64(body.ErrorIndex)),
		ber.SequenceValue(vbSeq...),
	)
	innerBytes, err := ber.Encode(inner, nil, c.Reporter)
	if err != nil {
		return nil, err
	}
	// inner is itself a SEQUENCE TLV (0x30 || len || body); a PDU is the
	// same shape wearing the outer context tag instead of 0x30, so strip
	// the leading tag byte and re-wrap with the PDU's own tag.
	_, seqBody, _, err := ber.DecodeHeader(innerBytes)
	if err != nil {
		return nil, err
	}
	return ber.EncodeTLV(tag, seqBody), nil
}

// DecodePDU implements ber.PDUCodec.
func (c *Codec) DecodePDU(b []byte) (ber.Tag, interface{}, int, error) {
	tag, body, consumed, err := ber.DecodeHeader(b)
	if err != nil {
		return 0, nil, 0, err
	}
	// Reuse the SEQUENCE decode path by presenting the PDU body under a
	// SEQUENCE tag; the PDU's own tag has already been recorded above and
	// carries no information the body decode needs.
	seqTLV := ber.EncodeTLV(ber.TagSequence, body)
	seqValue, seqConsumed, err := ber.Decode(seqTLV, nil, c.Reporter)
	if err != nil {
		return 0, nil, 0, err
	}
	if seqConsumed != len(seqTLV) {
		return 0, nil, 0, ber.NewError(ber.KindBadLength, "pdu body decode consumed %d of %d bytes", seqConsumed, len(seqTLV))
	}
	fields, _ := seqValue.Sequence()
	if len(fields) != 4 {
		return 0, nil, 0, ber.NewError(ber.KindBadLength, "pdu body must have 4 fields, got %d", len(fields))
	}
	reqID, ok1 := fields[0].Integer()
	errStatus, ok2 := fields[1].Integer()
	errIndex, ok3 := fields[2].Integer()
	vbList, ok4 := fields[3].Sequence()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, nil, 0, ber.NewError(ber.KindBadLength, "pdu body fields have unexpected shapes")
	}
	varbinds := make([]VarBind, 0, len(vbList))
	for _, vbVal := range vbList {
		pair, ok := vbVal.Sequence()
		if !ok || len(pair) != 2 {
			return 0, nil, 0, ber.NewError(ber.KindBadLength, "varbind must be a 2-element sequence")
		}
		oid, ok := pair[0].OID()
		if !ok {
			return 0, nil, 0, ber.NewError(ber.KindBadLength, "varbind's first element must be an oid")
		}
		varbinds = append(varbinds, VarBind{OID: oid, Value: pair[1]})
	}
	result := PDU{
		RequestID:   int32(reqID),
		ErrorStatus: int32(errStatus),
		ErrorIndex:  int32(errIndex),
		VarBinds:    varbinds,
	}
	return tag, result, consumed, nil
}

func asPDU(p interface{}) (PDU, bool) {
	switch v := p.(type) {
	case PDU:
		return v, true
	case *PDU:
		if v == nil {
			return PDU{}, false
		}
		return *v, true
	default:
		return PDU{}, false
	}
}
