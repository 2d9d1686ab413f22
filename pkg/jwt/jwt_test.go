package jwt_test

import (
	"time"

	tokenIssuer "contactbook/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		secret  []byte
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a token that validates back to the same claims", func() {
			token := service.Generate(tokenIssuer.TokenInfo{
				UserID:     7,
				Email:      "alice@example.com",
				Expiration: 2,
			})
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["user_id"]).To(Equal(float64(7)))
			Expect(claims["email"]).To(Equal("alice@example.com"))

			exp, ok := claims["exp"].(float64)
			Expect(ok).To(BeTrue())
			Expect(int64(exp)).To(BeNumerically("~", time.Now().Add(2*time.Hour).Unix(), 60))
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			token := service.Generate(tokenIssuer.TokenInfo{
				UserID:     7,
				Email:      "alice@example.com",
				Expiration: 2,
			})

			var err error
			signed, err = service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is garbage", func() {
			It("should return not valid error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is signed with a different secret", func() {
			It("should return not valid error", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				token := other.Generate(tokenIssuer.TokenInfo{UserID: 7, Expiration: 2})
				forged, err := other.Sign(token)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(forged)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the expiry has already passed at issue time", func() {
			It("should return expired error", func() {
				token := service.Generate(tokenIssuer.TokenInfo{UserID: 7, Expiration: -1})
				stale, err := service.Sign(token)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(stale)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the clock moves past the expiry", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(3 * time.Hour)
				}
			})

			It("should return expired error", func() {
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})
	})
})
