package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/service"
)

var _ = Describe("AuthService", func() {
	var (
		ctx    context.Context
		stores *fakeStores
		svc    service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newFakeStores()
		svc = service.NewAuthService(stores.Users(), stores.Sessions())
	})

	Describe("Register", func() {
		It("stores a bcrypt hash and opens a session", func() {
			user, session, err := svc.Register(ctx, service.RegisterParams{
				Username: "ada",
				Email:    "ada@example.com",
				Password: "s3cret-enough",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(user.PasswordHash).NotTo(Equal("s3cret-enough"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-enough"))).To(Succeed())

			Expect(session.UserID).To(Equal(user.ID))
			Expect(session.ExpiresAt).To(BeTemporally(">", time.Now().Add(6*24*time.Hour)))
		})

		It("rejects a taken username", func() {
			_, _, err := svc.Register(ctx, service.RegisterParams{Username: "ada", Password: "pw-one"})
			Expect(err).NotTo(HaveOccurred())

			_, _, err = svc.Register(ctx, service.RegisterParams{Username: "ada", Password: "pw-two"})
			Expect(err).To(MatchError(service.ErrUsernameTaken))
		})
	})

	Describe("Login", func() {
		It("returns a fresh session for valid credentials", func() {
			registered, first, err := svc.Register(ctx, service.RegisterParams{Username: "ada", Password: "correct"})
			Expect(err).NotTo(HaveOccurred())

			user, session, err := svc.Login(ctx, "ada", "correct")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(registered.ID))
			Expect(session.ID).NotTo(Equal(first.ID))
		})

		It("fails the same way for a bad password and an unknown user", func() {
			_, _, err := svc.Register(ctx, service.RegisterParams{Username: "ada", Password: "correct"})
			Expect(err).NotTo(HaveOccurred())

			_, _, err = svc.Login(ctx, "ada", "wrong")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))

			_, _, err = svc.Login(ctx, "nobody", "whatever")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})
	})

	Describe("ValidateSession", func() {
		It("resolves the session back to its user", func() {
			registered, session, err := svc.Register(ctx, service.RegisterParams{Username: "ada", Password: "pw"})
			Expect(err).NotTo(HaveOccurred())

			user, err := svc.ValidateSession(ctx, session.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(registered.ID))
		})

		It("rejects expired sessions", func() {
			registered := seedUser(stores, "ada")
			expired := model.Session{
				ID:        seedID(),
				UserID:    registered.ID,
				ExpiresAt: time.Now().Add(-time.Minute),
			}
			Expect(stores.Sessions().Create(ctx, &expired)).To(Succeed())

			_, err := svc.ValidateSession(ctx, expired.ID)
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})

		It("rejects unknown session ids", func() {
			_, err := svc.ValidateSession(ctx, 42)
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})
	})

	Describe("Logout", func() {
		It("invalidates the session", func() {
			_, session, err := svc.Register(ctx, service.RegisterParams{Username: "ada", Password: "pw"})
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Logout(ctx, session.ID)).To(Succeed())

			_, err = svc.ValidateSession(ctx, session.ID)
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})
	})
})
