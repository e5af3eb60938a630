package ber

// PDUCodec is the external collaborator that owns everything inside a
// GetRequest/GetNextRequest/GetResponse/Report wrapper. The value codec
// hands it the complete TLV for these variants, outer tag and length
// field included, and takes a complete TLV back on encode; the framing and
// the body (request ID, error status, varbind list, ...) belong to
// whatever implements this interface. See the pdu package for a concrete
// implementation.
type PDUCodec interface {
	// EncodePDU returns the complete TLV (including the tag byte and
	// length field) for p, which must be shaped for the PDU type that
	// tag identifies.
	EncodePDU(tag Tag, p interface{}) ([]byte, error)
	// DecodePDU consumes a complete TLV from the front of b (b[0] is the
	// outer tag byte) and returns the pduType-selecting tag actually
	// found on the wire, the decoded PDU body, and the number of bytes
	// consumed.
	DecodePDU(b []byte) (tag Tag, p interface{}, consumed int, err error)
}
