package books_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"bookshelf/internal/books"
	"bookshelf/internal/errs"
	"bookshelf/internal/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const volumesJSON = `{
  "items": [
    {
      "id": "b1",
      "volumeInfo": {
        "title": "Foo",
        "authors": ["A", "B"],
        "description": "About foo",
        "infoLink": "https://books.example/b1",
        "imageLinks": {"thumbnail": "https://img.example/b1.jpg"}
      }
    },
    {
      "id": "b2",
      "volumeInfo": {"title": "Bar"}
    }
  ]
}`

var _ = Describe("Client", func() {
	var (
		handler   http.HandlerFunc
		srv       *httptest.Server
		baseURL   string
		query     string
		gotPath   string
		gotQuery  string
		result    []models.SavedBook
		searchErr error
	)

	BeforeEach(func() {
		query = "harry potter"
		gotPath, gotQuery = "", ""
		handler = func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("q")
			_, _ = w.Write([]byte(volumesJSON))
		}
	})

	JustBeforeEach(func() {
		srv = httptest.NewServer(handler)
		DeferCleanup(srv.Close)
		if baseURL == "" {
			baseURL = srv.URL + "/"
		}

		result, searchErr = books.NewClient(baseURL, srv.Client()).Search(context.Background(), query)
	})

	AfterEach(func() {
		baseURL = ""
	})

	When("the catalog returns volumes", func() {
		It("should map them to books", func() {
			Expect(searchErr).NotTo(HaveOccurred())
			Expect(gotPath).To(Equal("/volumes"))
			Expect(gotQuery).To(Equal("harry potter"))
			Expect(result).To(Equal([]models.SavedBook{
				{
					BookID:      "b1",
					Title:       "Foo",
					Description: "About foo",
					Authors:     []string{"A", "B"},
					Image:       "https://img.example/b1.jpg",
					Link:        "https://books.example/b1",
				},
				{
					BookID:  "b2",
					Title:   "Bar",
					Authors: []string{models.NoAuthors},
				},
			}))
		})
	})

	When("the catalog has no items", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"totalItems":0}`))
			}
		})

		It("should return an empty list", func() {
			Expect(searchErr).NotTo(HaveOccurred())
			Expect(result).To(BeEmpty())
		})
	})

	When("the catalog responds with a non 2xx status", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}
		})

		It("should return an external service error", func() {
			Expect(searchErr).To(MatchError(errs.ErrExternalService))
		})
	})

	When("the body cannot be decoded", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			}
		})

		It("should return an external service error", func() {
			Expect(searchErr).To(MatchError(errs.ErrExternalService))
		})
	})

	When("the catalog is unreachable", func() {
		BeforeEach(func() {
			closed := httptest.NewServer(http.NotFoundHandler())
			baseURL = closed.URL
			closed.Close()
		})

		It("should return an external service error", func() {
			Expect(searchErr).To(MatchError(errs.ErrExternalService))
		})
	})

	When("the query is blank", func() {
		BeforeEach(func() {
			query = "  "
		})

		It("should return a validation error without calling the catalog", func() {
			Expect(searchErr).To(MatchError(errs.ErrValidation))
			Expect(gotPath).To(BeEmpty())
		})
	})
})
