package ber

// ErrorReporter receives human-readable diagnostics for recoverable decode
// or encode anomalies before the codec proceeds (e.g. a non-ASCII byte in
// an IA5String, or a permissively-accepted 0x10 SEQUENCE tag). It mirrors
// the subset of a seelog-style logging interface the codec actually needs,
// so a caller already using github.com/cihub/seelog can pass its logger
// straight through.
type ErrorReporter interface {
	Warnf(format string, params ...interface{})
	Debugf(format string, params ...interface{})
}

// NopReporter discards every diagnostic. It's the zero-configuration
// default for callers that don't care about non-fatal anomalies.
type NopReporter struct{}

func (NopReporter) Warnf(format string, params ...interface{})  {}
func (NopReporter) Debugf(format string, params ...interface{}) {}

func reporterOrNop(r ErrorReporter) ErrorReporter {
	if r == nil {
		return NopReporter{}
	}
	return r
}
