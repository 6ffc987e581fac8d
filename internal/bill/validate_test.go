package bill

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ValidReceiptName", func() {
	It("should accept jpg files", func() {
		Expect(ValidReceiptName("receipt.jpg")).To(BeTrue())
	})

	It("should accept jpeg files", func() {
		Expect(ValidReceiptName("receipt.jpeg")).To(BeTrue())
	})

	It("should accept png files", func() {
		Expect(ValidReceiptName("receipt.png")).To(BeTrue())
	})

	It("should ignore extension case", func() {
		Expect(ValidReceiptName("test.PNG")).To(BeTrue())
		Expect(ValidReceiptName("test.Jpeg")).To(BeTrue())
	})

	It("should reject other extensions", func() {
		Expect(ValidReceiptName("test.txt")).To(BeFalse())
		Expect(ValidReceiptName("receipt.pdf")).To(BeFalse())
		Expect(ValidReceiptName("receipt.gif")).To(BeFalse())
	})

	It("should reject names without an extension", func() {
		Expect(ValidReceiptName("png")).To(BeFalse())
		Expect(ValidReceiptName("")).To(BeFalse())
	})

	It("should only look at the last extension", func() {
		Expect(ValidReceiptName("receipt.png.exe")).To(BeFalse())
		Expect(ValidReceiptName("archive.tar.png")).To(BeTrue())
	})
})

var _ = Describe("DisplayFileName", func() {
	It("should keep the last backslash-separated segment", func() {
		Expect(DisplayFileName(`C:\fakepath\receipt.png`)).To(Equal("receipt.png"))
	})

	It("should leave plain names untouched", func() {
		Expect(DisplayFileName("receipt.png")).To(Equal("receipt.png"))
	})
})
