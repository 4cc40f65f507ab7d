package search_test

import (
	"context"
	"errors"
	"time"

	"bookshelf/internal/client/search"
	"bookshelf/internal/client/search/fake"
	"bookshelf/internal/models"
	tokenIssuer "bookshelf/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func signToken(at time.Time) string {
	defer func(prev func() time.Time) { tokenIssuer.TimeNow = prev }(tokenIssuer.TimeNow)
	tokenIssuer.TimeNow = func() time.Time { return at }

	token, err := tokenIssuer.NewJWTService([]byte("secret")).Sign(tokenIssuer.TokenInfo{UserID: "u1", Username: "alice"})
	Expect(err).NotTo(HaveOccurred())
	return token
}

var _ = Describe("Session", func() {
	var (
		fakeSearcher *fake.Searcher
		fakeAPI      *fake.BookAPI
		fakeLocal    *fake.LocalState
		ctx          context.Context
		results      []models.SavedBook

		session *search.Session
	)

	BeforeEach(func() {
		fakeSearcher = &fake.Searcher{}
		fakeAPI = &fake.BookAPI{}
		fakeLocal = &fake.LocalState{}
		ctx = context.Background()
		results = []models.SavedBook{
			{BookID: "b1", Title: "Dune", Authors: []string{"Frank Herbert"}},
			{BookID: "b2", Title: "Emma", Authors: []string{"Jane Austen"}},
		}

		fakeSearcher.SearchReturns(results, nil)
		fakeLocal.TokenReturns(signToken(time.Now()), nil)

		session = search.NewSession(zap.NewNop().Sugar(), fakeSearcher, fakeAPI, fakeLocal)
	})

	Describe("Submit", func() {
		When("the input is blank", func() {
			It("does not search", func() {
				session.SetInput("   ")
				session.Submit(ctx)

				Expect(fakeSearcher.SearchCallCount()).To(Equal(0))
				Expect(session.Input()).To(Equal("   "))
			})
		})

		When("the search succeeds", func() {
			It("replaces the results and clears the input", func() {
				session.SetInput(" dune ")
				session.Submit(ctx)

				Expect(fakeSearcher.SearchCallCount()).To(Equal(1))
				_, query := fakeSearcher.SearchArgsForCall(0)
				Expect(query).To(Equal("dune"))
				Expect(session.Results()).To(Equal(results))
				Expect(session.Input()).To(BeEmpty())
			})
		})

		When("the search fails", func() {
			It("keeps the previous state", func() {
				session.SetInput("dune")
				session.Submit(ctx)

				fakeSearcher.SearchReturns(nil, errors.New("boom"))
				session.SetInput("emma")
				session.Submit(ctx)

				Expect(session.Results()).To(Equal(results))
				Expect(session.Input()).To(Equal("emma"))
			})
		})
	})

	Describe("Save", func() {
		BeforeEach(func() {
			session.SetInput("dune")
			session.Submit(ctx)
		})

		It("saves a result and records its id once", func() {
			Expect(session.Save(ctx, "b1")).To(BeTrue())
			Expect(session.Save(ctx, "b1")).To(BeTrue())

			Expect(fakeAPI.SaveBookCallCount()).To(Equal(2))
			_, book := fakeAPI.SaveBookArgsForCall(0)
			Expect(book).To(Equal(results[0]))
			Expect(session.SavedIDs()).To(Equal([]string{"b1"}))
			Expect(session.IsSaved("b1")).To(BeTrue())
		})

		When("there is no stored token", func() {
			It("does nothing", func() {
				fakeLocal.TokenReturns("", nil)

				Expect(session.Save(ctx, "b1")).To(BeFalse())
				Expect(fakeAPI.SaveBookCallCount()).To(Equal(0))
			})
		})

		When("the stored token has expired", func() {
			It("does nothing", func() {
				fakeLocal.TokenReturns(signToken(time.Now().Add(-2*time.Hour)), nil)

				Expect(session.LoggedIn(ctx)).To(BeFalse())
				Expect(session.Save(ctx, "b1")).To(BeFalse())
				Expect(fakeAPI.SaveBookCallCount()).To(Equal(0))
			})
		})

		When("the book is not among the results", func() {
			It("does nothing", func() {
				Expect(session.Save(ctx, "b9")).To(BeFalse())
				Expect(fakeAPI.SaveBookCallCount()).To(Equal(0))
			})
		})

		When("the server rejects the save", func() {
			It("leaves the saved ids unchanged", func() {
				fakeAPI.SaveBookReturns(models.User{}, errors.New("You need to be logged in!"))

				Expect(session.Save(ctx, "b2")).To(BeFalse())
				Expect(session.SavedIDs()).To(BeEmpty())
			})
		})
	})

	Describe("Remove", func() {
		BeforeEach(func() {
			fakeLocal.SavedBookIDsReturns([]string{"b1", "b2"}, nil)
			Expect(session.Load(ctx)).To(Succeed())
		})

		It("drops the id and updates local state right away", func() {
			Expect(session.Remove(ctx, "b1")).To(BeTrue())

			Expect(session.SavedIDs()).To(Equal([]string{"b2"}))
			Expect(fakeLocal.RemoveSavedBookIDCallCount()).To(Equal(1))
			_, id := fakeLocal.RemoveSavedBookIDArgsForCall(0)
			Expect(id).To(Equal("b1"))
		})

		When("the server rejects the removal", func() {
			It("keeps the id", func() {
				fakeAPI.RemoveBookReturns(models.User{}, errors.New("boom"))

				Expect(session.Remove(ctx, "b1")).To(BeFalse())
				Expect(session.SavedIDs()).To(Equal([]string{"b1", "b2"}))
				Expect(fakeLocal.RemoveSavedBookIDCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Close", func() {
		It("persists the saved ids", func() {
			session.SetInput("dune")
			session.Submit(ctx)
			session.Save(ctx, "b2")

			Expect(session.Close(ctx)).To(Succeed())

			Expect(fakeLocal.SetSavedBookIDsCallCount()).To(Equal(1))
			_, ids := fakeLocal.SetSavedBookIDsArgsForCall(0)
			Expect(ids).To(Equal([]string{"b2"}))
		})
	})
})
