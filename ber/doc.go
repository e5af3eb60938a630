// Package ber implements the subset of ASN.1 Basic Encoding Rules that
// SNMP v1/v2c/v3 need: length fields, object identifiers, and the tagged
// union of value types that make up a PDU's varbind list.
//
// The package is stateless and reentrant. Encode and Decode take every
// piece of context they need as arguments (a PDUCodec for the
// context-specific PDU wrapper tags, an ErrorReporter for non-fatal
// diagnostics) rather than reading from package-level state, so callers
// may invoke either from as many goroutines as they like without
// synchronization.
package ber
