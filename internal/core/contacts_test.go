package core_test

import (
	"context"
	"errors"

	"contactbook/internal/core"
	"contactbook/internal/core/fake"
	"contactbook/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Contacts", func() {
	var (
		fakeRepo   *fake.ContactRepository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		contacts *core.Contacts

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.ContactRepository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		contacts = core.NewContacts(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("AddContact", func() {
		var (
			rec core.ContactRecord
			id  uint
			err error
		)

		BeforeEach(func() {
			rec = core.ContactRecord{
				Name:    "Bob",
				Email:   "bob@example.com",
				Phone:   "555-0202",
				Address: "12 Main St",
			}

			fakeRepo.AddContactReturns(5, nil)
		})

		JustBeforeEach(func() {
			id, err = contacts.AddContact(ctx, rec)
		})

		When("the contact is stored", func() {
			It("should return the new id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(uint(5)))

				Expect(fakeRepo.AddContactCallCount()).To(Equal(1))
				_, argContact := fakeRepo.AddContactArgsForCall(0)
				Expect(argContact.Name).To(Equal("Bob"))
				Expect(argContact.Address).To(Equal("12 Main St"))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.AddContactReturns(0, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetContact", func() {
		var (
			rec core.ContactRecord
			err error
		)

		JustBeforeEach(func() {
			rec, err = contacts.GetContact(ctx, 5)
		})

		When("the contact exists", func() {
			BeforeEach(func() {
				fakeRepo.GetContactReturns(repository.Contact{
					ID:   5,
					Name: "Bob",
				}, nil)
			})

			It("should return the contact record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rec.ID).To(Equal(uint(5)))
				Expect(rec.Name).To(Equal("Bob"))
			})
		})

		When("the contact does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetContactReturns(repository.Contact{}, repository.ErrContactNotFound)
			})

			It("should return not found error", func() {
				Expect(err).To(MatchError(core.ErrContactNotFound))
			})
		})
	})

	Describe("GetContacts", func() {
		var (
			recs []core.ContactRecord
			err  error
		)

		JustBeforeEach(func() {
			recs, err = contacts.GetContacts(ctx)
		})

		When("contacts exist", func() {
			BeforeEach(func() {
				fakeRepo.GetContactsReturns([]repository.Contact{
					{ID: 1, Name: "Bob"},
					{ID: 2, Name: "Carol"},
				}, nil)
			})

			It("should return all contact records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(recs).To(HaveLen(2))
				Expect(recs[1].Name).To(Equal("Carol"))
			})
		})

		When("the listing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetContactsReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateContact", func() {
		var (
			rec      core.ContactRecord
			storedID uint
			err      error
		)

		BeforeEach(func() {
			rec = core.ContactRecord{Name: "Bob"}
			fakeRepo.UpdateContactReturns(5, nil)
		})

		JustBeforeEach(func() {
			storedID, err = contacts.UpdateContact(ctx, 5, rec)
		})

		When("the contact exists", func() {
			It("should return the same id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(storedID).To(Equal(uint(5)))

				_, argID, argContact := fakeRepo.UpdateContactArgsForCall(0)
				Expect(argID).To(Equal(uint(5)))
				Expect(argContact.Name).To(Equal("Bob"))
			})
		})

		When("the update fell back to an insert", func() {
			BeforeEach(func() {
				fakeRepo.UpdateContactReturns(9, nil)
			})

			It("should return the freshly assigned id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(storedID).To(Equal(uint(9)))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateContactReturns(0, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteContact", func() {
		var err error

		JustBeforeEach(func() {
			err = contacts.DeleteContact(ctx, 5)
		})

		When("the delete succeeds", func() {
			It("should pass the id through", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argID := fakeRepo.DeleteContactArgsForCall(0)
				Expect(argID).To(Equal(uint(5)))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteContactReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
