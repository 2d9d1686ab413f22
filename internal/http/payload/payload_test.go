package payload_test

import (
	"net/http/httptest"
	"strings"

	"contactbook/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	decode := func(body string, object any) error {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return dv.DecodeAndValidateJSONPayload(req, object)
	}

	Describe("RegisterRequest", func() {
		It("should accept a complete payload", func() {
			var req payload.RegisterRequest
			err := decode(`{"username":"alice","email":"alice@example.com","phone":"555-0101","password":"testpass"}`, &req)
			Expect(err).NotTo(HaveOccurred())

			msg := req.ToMessage()
			Expect(msg.Username).To(Equal("alice"))
			Expect(msg.Password).To(Equal("testpass"))
		})

		It("should reject a missing password", func() {
			var req payload.RegisterRequest
			err := decode(`{"username":"alice","email":"alice@example.com","phone":"555-0101"}`, &req)
			Expect(err).To(MatchError(ContainSubstring("password")))
		})

		It("should reject a password longer than bcrypt can use", func() {
			var req payload.RegisterRequest
			long := strings.Repeat("a", 73)
			err := decode(`{"username":"alice","email":"a@b.c","phone":"1","password":"`+long+`"}`, &req)
			Expect(err).To(MatchError(ContainSubstring("password")))
		})

		It("should reject unknown fields", func() {
			var req payload.RegisterRequest
			err := decode(`{"username":"alice","email":"a@b.c","phone":"1","password":"x","admin":true}`, &req)
			Expect(err).To(MatchError(ContainSubstring("unknown field")))
		})
	})

	Describe("LoginRequest", func() {
		It("should accept username and password", func() {
			var req payload.LoginRequest
			err := decode(`{"username":"alice","password":"testpass"}`, &req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an empty username", func() {
			var req payload.LoginRequest
			err := decode(`{"username":"","password":"testpass"}`, &req)
			Expect(err).To(MatchError(ContainSubstring("username")))
		})
	})

	Describe("ContactRequest", func() {
		It("should require only the name", func() {
			var req payload.ContactRequest
			err := decode(`{"name":"Bob"}`, &req)
			Expect(err).NotTo(HaveOccurred())

			rec := req.ToRecord()
			Expect(rec.Name).To(Equal("Bob"))
			Expect(rec.ID).To(BeZero())
		})

		It("should reject a missing name", func() {
			var req payload.ContactRequest
			err := decode(`{"email":"bob@example.com"}`, &req)
			Expect(err).To(MatchError(ContainSubstring("name")))
		})

		It("should reject a malformed body", func() {
			var req payload.ContactRequest
			err := decode(`{"name":`, &req)
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})
})
