package hash_test

import (
	"strings"

	"contactbook/pkg/hash"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("BcryptHasher", func() {
	var hasher *hash.BcryptHasher

	BeforeEach(func() {
		// MinCost keeps the suite fast, the digest format is the same.
		hasher = hash.NewBcryptHasher(bcrypt.MinCost)
	})

	Describe("Hash", func() {
		It("should return a bcrypt digest, never the plaintext", func() {
			digest, err := hasher.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())
			Expect(digest).NotTo(ContainSubstring("testpass"))
			Expect(strings.HasPrefix(digest, "$2a$")).To(BeTrue())
		})

		It("should salt each digest independently", func() {
			first, err := hasher.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())

			second, err := hasher.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())

			Expect(first).NotTo(Equal(second))
		})
	})

	Describe("Verify", func() {
		var digest string

		BeforeEach(func() {
			var err error
			digest, err = hasher.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should accept the original password", func() {
			Expect(hasher.Verify("testpass", digest)).To(BeTrue())
		})

		It("should reject a wrong password", func() {
			Expect(hasher.Verify("wrongpass", digest)).To(BeFalse())
		})

		It("should reject a malformed digest", func() {
			Expect(hasher.Verify("testpass", "not-a-digest")).To(BeFalse())
		})
	})

	Describe("NewBcryptHasher", func() {
		It("should fall back to the default cost when out of range", func() {
			out := hash.NewBcryptHasher(99)
			digest, err := out.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())

			cost, err := bcrypt.Cost([]byte(digest))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(hash.DefaultCost))
		})
	})
})
