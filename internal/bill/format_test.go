package bill

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FormatDate", func() {
	It("should render a stored date in short French form", func() {
		Expect(FormatDate("2004-04-04")).To(Equal("4 Avr. 04"))
	})

	It("should not pad the day", func() {
		Expect(FormatDate("2021-09-01")).To(Equal("1 Sep. 21"))
	})

	It("should keep the year's last two digits", func() {
		Expect(FormatDate("2001-01-01")).To(Equal("1 Jan. 01"))
	})

	It("should pass malformed input through unchanged", func() {
		Expect(FormatDate("not a date")).To(Equal("not a date"))
	})

	It("should pass the empty string through unchanged", func() {
		Expect(FormatDate("")).To(Equal(""))
	})
})

var _ = Describe("FormatStatus", func() {
	It("should label pending bills", func() {
		Expect(FormatStatus("pending")).To(Equal("En attente"))
	})

	It("should label accepted bills", func() {
		Expect(FormatStatus("accepted")).To(Equal("Accepté"))
	})

	It("should label refused bills", func() {
		Expect(FormatStatus("refused")).To(Equal("Refusé"))
	})

	It("should pass unrecognized statuses through verbatim", func() {
		Expect(FormatStatus("archived")).To(Equal("archived"))
	})
})
