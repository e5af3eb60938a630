package ber_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/nwatch/snmpber/ber"
)

type spyReporter struct {
	warnings []string
	debugs   []string
}

func (s *spyReporter) Warnf(format string, params ...interface{}) {
	s.warnings = append(s.warnings, format)
}
func (s *spyReporter) Debugf(format string, params ...interface{}) {
	s.debugs = append(s.debugs, format)
}

type stubPDUCodec struct {
	encoded []byte
	encErr  error

	decTag      ber.Tag
	decBody     interface{}
	decConsumed int
	decErr      error
}

func (c *stubPDUCodec) EncodePDU(tag ber.Tag, p interface{}) ([]byte, error) {
	return c.encoded, c.encErr
}

func (c *stubPDUCodec) DecodePDU(b []byte) (ber.Tag, interface{}, int, error) {
	return c.decTag, c.decBody, c.decConsumed, c.decErr
}

var _ = Describe("PDU dispatch", func() {
	var reporter *spyReporter

	BeforeEach(func() {
		reporter = &spyReporter{}
	})

	Context("encoding a PDU-tagged value with no codec configured", func() {
		It("fails with UnsupportedType instead of panicking", func() {
			v, err := ber.PDUValue(ber.TagGetRequest, "opaque body")
			Ω(err).Should(BeNil())
			_, err = ber.Encode(v, nil, reporter)
			Ω(err).ShouldNot(BeNil())
			Ω(ber.IsKind(err, ber.KindUnsupportedType)).Should(BeTrue())
		})
	})

	Context("decoding a context tag with no codec configured", func() {
		It("fails with UnsupportedType", func() {
			tlv := []byte{0xa0, 0x02, 0x05, 0x00}
			_, _, err := ber.Decode(tlv, nil, reporter)
			Ω(err).ShouldNot(BeNil())
			Ω(ber.IsKind(err, ber.KindUnsupportedType)).Should(BeTrue())
		})
	})

	Context("decoding a context tag whose codec reports a mismatched pduType", func() {
		It("fails with UnexpectedPdu", func() {
			tlv := []byte{0xa0, 0x02, 0x05, 0x00}
			codec := &stubPDUCodec{decTag: ber.TagGetResponse, decBody: "x", decConsumed: len(tlv)}
			_, _, err := ber.Decode(tlv, codec, reporter)
			Ω(err).ShouldNot(BeNil())
			Ω(ber.IsKind(err, ber.KindUnexpectedPdu)).Should(BeTrue())
		})
	})

	Context("decoding a context tag whose codec under-consumes the TLV", func() {
		It("fails with BadLength", func() {
			tlv := []byte{0xa0, 0x02, 0x05, 0x00}
			codec := &stubPDUCodec{decTag: ber.TagGetRequest, decBody: "x", decConsumed: 1}
			_, _, err := ber.Decode(tlv, codec, reporter)
			Ω(err).ShouldNot(BeNil())
			Ω(ber.IsKind(err, ber.KindBadLength)).Should(BeTrue())
		})
	})

	Context("decoding a well-behaved PDU codec", func() {
		It("wraps the returned body in a PDU-tagged Value", func() {
			tlv := []byte{0xa2, 0x02, 0x05, 0x00}
			codec := &stubPDUCodec{decTag: ber.TagGetResponse, decBody: "decoded body", decConsumed: len(tlv)}
			v, n, err := ber.Decode(tlv, codec, reporter)
			Ω(err).Should(BeNil())
			Ω(n).Should(Equal(len(tlv)))
			p, ok := v.PDU()
			Ω(ok).Should(BeTrue())
			Ω(p).Should(Equal("decoded body"))
		})
	})
})

var _ = Describe("NopReporter", func() {
	It("discards everything without panicking", func() {
		Ω(func() {
			var r ber.NopReporter
			r.Warnf("x %d", 1)
			r.Debugf("y")
		}).ShouldNot(Panic())
	})
})

var _ = Describe("legacy sequence tag diagnostics", func() {
	It("reports a debug diagnostic when accepting the 0x10 tag", func() {
		reporter := &spyReporter{}
		tlv := []byte{0x10, 0x02, 0x05, 0x00}
		_, _, err := ber.Decode(tlv, nil, reporter)
		Ω(err).Should(BeNil())
		Ω(reporter.debugs).ShouldNot(BeEmpty())
	})
})

var _ = Describe("IA5String non-ASCII diagnostics", func() {
	It("warns but does not fail on a non-ASCII byte", func() {
		reporter := &spyReporter{}
		v := ber.IA5StringValue(string([]byte{0xff, 'a'}))
		enc, err := ber.Encode(v, nil, reporter)
		Ω(err).Should(BeNil())
		Ω(enc).Should(Equal([]byte{0x16, 0x02, 0xff, 'a'}))
		Ω(reporter.warnings).ShouldNot(BeEmpty())
	})
})
