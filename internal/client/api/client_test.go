package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"bookshelf/internal/client/api"
	"bookshelf/internal/core"
	"bookshelf/internal/errs"
	"bookshelf/internal/graph"
	"bookshelf/internal/http/handler"
	"bookshelf/internal/http/handler/middleware"
	"bookshelf/internal/http/payload"
	"bookshelf/internal/http/router"
	"bookshelf/internal/memstore"
	"bookshelf/internal/models"
	tokenIssuer "bookshelf/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type staticToken struct {
	token string
}

func (s *staticToken) Token(context.Context) (string, error) {
	return s.token, nil
}

func newServer() *httptest.Server {
	logger := zap.NewNop().Sugar()
	jwtService := tokenIssuer.NewJWTService([]byte("client-secret"))

	schema, err := graph.NewSchema(logger, core.NewBookshelf(logger, memstore.NewUserStore(), jwtService))
	Expect(err).NotTo(HaveOccurred())

	srv := httptest.NewServer(router.New(logger,
		router.Options{AllowedOrigin: "http://localhost:3000"},
		handler.NewGraphQLHandler(logger, payload.DecodeValidator{}, schema),
		middleware.NewAuthMiddleware(logger, jwtService)))
	DeferCleanup(srv.Close)
	return srv
}

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		tokens *staticToken
		client *api.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		tokens = &staticToken{}
	})

	Context("against the bookshelf server", func() {
		BeforeEach(func() {
			srv := newServer()
			client = api.NewClient(srv.URL+"/graphql", srv.Client(), tokens)
		})

		It("should sign up, log in and manage saved books", func() {
			signup, err := client.AddUser(ctx, "alice", "alice@x.com", "pw123")
			Expect(err).NotTo(HaveOccurred())
			Expect(signup.Token).NotTo(BeEmpty())
			Expect(signup.User.Username).To(Equal("alice"))

			login, err := client.Login(ctx, "alice@x.com", "pw123")
			Expect(err).NotTo(HaveOccurred())
			Expect(login.User.ID).To(Equal(signup.User.ID))
			tokens.token = login.Token

			user, err := client.SaveBook(ctx, models.SavedBook{BookID: "b1", Title: "Foo", Authors: []string{"A"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.SavedBooks).To(HaveLen(1))
			Expect(user.SavedBooks[0].BookID).To(Equal("b1"))

			me, err := client.Me(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(me.Email).To(Equal("alice@x.com"))
			Expect(me.SavedBooks).To(HaveLen(1))

			user, err = client.RemoveBook(ctx, "b1")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.SavedBooks).To(BeEmpty())
		})

		When("the server answers with errors", func() {
			It("should map the error codes back to kinds", func() {
				_, err := client.Me(ctx)
				Expect(err).To(MatchError(errs.ErrAuthentication))
				Expect(err.Error()).To(Equal("Not logged in"))

				_, err = client.Login(ctx, "ghost@x.com", "pw123")
				Expect(err).To(MatchError(errs.ErrAuthentication))

				_, err = client.AddUser(ctx, "bob", "not-an-email", "pw123")
				Expect(err).To(MatchError(errs.ErrValidation))
			})
		})
	})

	When("a token is stored", func() {
		var authorization string

		BeforeEach(func() {
			tokens.token = "tok"
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authorization = r.Header.Get("Authorization")
				_, _ = w.Write([]byte(`{"data":{"me":{"id":"u1","username":"alice","email":"a@x.com","savedBooks":[]}}}`))
			}))
			DeferCleanup(srv.Close)
			client = api.NewClient(srv.URL, srv.Client(), tokens)
		})

		It("should send it as a bearer token", func() {
			_, err := client.Me(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(authorization).To(Equal("Bearer tok"))
		})
	})

	When("the server is unreachable", func() {
		BeforeEach(func() {
			srv := httptest.NewServer(http.NotFoundHandler())
			url := srv.URL
			srv.Close()
			client = api.NewClient(url, nil, nil)
		})

		It("should return an external service error", func() {
			_, err := client.Me(ctx)
			Expect(err).To(MatchError(errs.ErrExternalService))
		})
	})
})
