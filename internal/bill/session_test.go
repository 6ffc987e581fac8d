package bill

import (
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoltSession", func() {
	var session *BoltSession

	BeforeEach(func() {
		var err error
		session, err = NewBoltSession(filepath.Join(GinkgoT().TempDir(), "session.db"))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(session.Close()).To(Succeed())
	})

	When("no user has been stored", func() {
		It("should return ErrNoUser", func() {
			_, err := session.User()
			Expect(errors.Is(err, ErrNoUser)).To(BeTrue())
		})
	})

	When("a user has been stored", func() {
		BeforeEach(func() {
			Expect(session.SetUser(User{Type: "Employee", Email: "employee@billed.com"})).To(Succeed())
		})

		It("should round-trip the record", func() {
			user, err := session.User()
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Type).To(Equal("Employee"))
			Expect(user.Email).To(Equal("employee@billed.com"))
		})

		It("should overwrite on a second login", func() {
			Expect(session.SetUser(User{Type: "Employee", Email: "other@billed.com"})).To(Succeed())
			user, err := session.User()
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("other@billed.com"))
		})

		It("should forget the record after Clear", func() {
			Expect(session.Clear()).To(Succeed())
			_, err := session.User()
			Expect(errors.Is(err, ErrNoUser)).To(BeTrue())
		})
	})
})
