package graph_test

import (
	"context"
	"encoding/json"

	"bookshelf/internal/auth"
	"bookshelf/internal/core"
	"bookshelf/internal/graph"
	"bookshelf/internal/memstore"
	tokenIssuer "bookshelf/pkg/jwt"

	"github.com/graph-gophers/graphql-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	addUserMutation = `mutation($u: String!, $e: String!, $p: String!) {
		addUser(username: $u, email: $e, password: $p) { token user { id username email bookCount } }
	}`
	loginMutation = `mutation($e: String!, $p: String!) {
		login(email: $e, password: $p) { token user { username } }
	}`
	meQuery        = `{ me { username bookCount savedBooks { bookId title authors description image link } } }`
	saveBookMutate = `mutation($b: BookInput!) {
		saveBook(bookData: $b) { bookCount savedBooks { bookId title authors description } }
	}`
	removeBookMutate = `mutation($id: String!) { removeBook(bookId: $id) { bookCount savedBooks { bookId } } }`
)

type gqlBook struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Link        *string  `json:"link"`
}

type gqlUser struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	BookCount  int       `json:"bookCount"`
	SavedBooks []gqlBook `json:"savedBooks"`
}

type gqlAuth struct {
	Token string  `json:"token"`
	User  gqlUser `json:"user"`
}

var _ = Describe("Schema", func() {
	var (
		store  *memstore.UserStore
		jwtSvc *tokenIssuer.JWTService
		schema *graphql.Schema
		ctx    context.Context
	)

	exec := func(ctx context.Context, query string, vars map[string]interface{}, out interface{}) *graphql.Response {
		resp := schema.Exec(ctx, query, "", vars)
		if out != nil && len(resp.Data) > 0 {
			Expect(json.Unmarshal(resp.Data, out)).To(Succeed())
		}
		return resp
	}

	codeOf := func(resp *graphql.Response) interface{} {
		Expect(resp.Errors).To(HaveLen(1))
		return resp.Errors[0].Extensions["code"]
	}

	signup := func() gqlAuth {
		var data struct {
			AddUser *gqlAuth `json:"addUser"`
		}
		resp := exec(ctx, addUserMutation, map[string]interface{}{
			"u": "alice", "e": "alice@x.com", "p": "pw123",
		}, &data)
		Expect(resp.Errors).To(BeEmpty())
		Expect(data.AddUser).NotTo(BeNil())
		return *data.AddUser
	}

	authed := func(token string) context.Context {
		claims, err := jwtSvc.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		return auth.WithIdentity(ctx, auth.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		logger := zap.NewNop().Sugar()
		store = memstore.NewUserStore()
		jwtSvc = tokenIssuer.NewJWTService([]byte("test-secret"))

		var err error
		schema, err = graph.NewSchema(logger, core.NewBookshelf(logger, store, jwtSvc))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("addUser", func() {
		It("should register the user and return a token", func() {
			res := signup()
			Expect(res.Token).NotTo(BeEmpty())
			Expect(res.User.Username).To(Equal("alice"))
			Expect(res.User.Email).To(Equal("alice@x.com"))
			Expect(res.User.BookCount).To(Equal(0))

			claims, err := jwtSvc.Validate(res.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(res.User.ID))
		})

		When("the password is too short", func() {
			It("should fail with BAD_USER_INPUT", func() {
				var data struct {
					AddUser *gqlAuth `json:"addUser"`
				}
				resp := exec(ctx, addUserMutation, map[string]interface{}{
					"u": "bob", "e": "bob@x.com", "p": "pw",
				}, &data)
				Expect(codeOf(resp)).To(Equal("BAD_USER_INPUT"))
				Expect(data.AddUser).To(BeNil())
			})
		})

		When("the email is taken", func() {
			It("should fail with BAD_USER_INPUT", func() {
				signup()
				resp := exec(ctx, addUserMutation, map[string]interface{}{
					"u": "alice2", "e": "alice@x.com", "p": "pw123",
				}, nil)
				Expect(codeOf(resp)).To(Equal("BAD_USER_INPUT"))
			})
		})
	})

	Describe("login", func() {
		BeforeEach(func() {
			signup()
		})

		It("should return a token for the same user", func() {
			var data struct {
				Login *gqlAuth `json:"login"`
			}
			resp := exec(ctx, loginMutation, map[string]interface{}{"e": "alice@x.com", "p": "pw123"}, &data)
			Expect(resp.Errors).To(BeEmpty())
			Expect(data.Login.User.Username).To(Equal("alice"))

			claims, err := jwtSvc.Validate(data.Login.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Username).To(Equal("alice"))
			Expect(claims.Email).To(Equal("alice@x.com"))
		})

		It("should not tell a wrong password from an unknown email", func() {
			wrongPassword := exec(ctx, loginMutation, map[string]interface{}{"e": "alice@x.com", "p": "nope!"}, nil)
			unknownEmail := exec(ctx, loginMutation, map[string]interface{}{"e": "ghost@x.com", "p": "pw123"}, nil)

			Expect(codeOf(wrongPassword)).To(Equal("UNAUTHENTICATED"))
			Expect(codeOf(unknownEmail)).To(Equal("UNAUTHENTICATED"))
			Expect(wrongPassword.Errors[0].Message).To(Equal(unknownEmail.Errors[0].Message))
		})
	})

	Describe("me", func() {
		It("should require a token", func() {
			var data struct {
				Me *gqlUser `json:"me"`
			}
			resp := exec(ctx, meQuery, nil, &data)
			Expect(codeOf(resp)).To(Equal("UNAUTHENTICATED"))
			Expect(resp.Errors[0].Message).To(Equal("Not logged in"))
			Expect(data.Me).To(BeNil())
		})

		It("should return NOT_FOUND for a deleted user", func() {
			res := signup()
			store.DeleteUser(res.User.ID)

			resp := exec(authed(res.Token), meQuery, nil, nil)
			Expect(codeOf(resp)).To(Equal("NOT_FOUND"))
			Expect(resp.Errors[0].Message).To(Equal("User not found"))
		})
	})

	Describe("saveBook and removeBook", func() {
		var userCtx context.Context

		BeforeEach(func() {
			userCtx = authed(signup().Token)
		})

		saveB1 := func() gqlUser {
			var data struct {
				SaveBook *gqlUser `json:"saveBook"`
			}
			resp := exec(userCtx, saveBookMutate, map[string]interface{}{
				"b": map[string]interface{}{"bookId": "b1", "title": "Foo", "authors": []interface{}{"A"}},
			}, &data)
			Expect(resp.Errors).To(BeEmpty())
			return *data.SaveBook
		}

		It("should keep a single entry when saved twice", func() {
			saveB1()
			user := saveB1()

			Expect(user.BookCount).To(Equal(1))
			Expect(user.SavedBooks).To(HaveLen(1))
			Expect(user.SavedBooks[0].BookID).To(Equal("b1"))
			Expect(user.SavedBooks[0].Authors).To(Equal([]string{"A"}))
			Expect(user.SavedBooks[0].Description).To(BeNil())
		})

		It("should list saved books on me", func() {
			saveB1()

			var data struct {
				Me *gqlUser `json:"me"`
			}
			resp := exec(userCtx, meQuery, nil, &data)
			Expect(resp.Errors).To(BeEmpty())
			Expect(data.Me.Username).To(Equal("alice"))
			Expect(data.Me.SavedBooks).To(HaveLen(1))
		})

		It("should remove the book", func() {
			saveB1()

			var data struct {
				RemoveBook *gqlUser `json:"removeBook"`
			}
			resp := exec(userCtx, removeBookMutate, map[string]interface{}{"id": "b1"}, &data)
			Expect(resp.Errors).To(BeEmpty())
			Expect(data.RemoveBook.BookCount).To(Equal(0))
			Expect(data.RemoveBook.SavedBooks).To(BeEmpty())
		})

		It("should treat removing an unsaved book as a no-op", func() {
			saveB1()

			var data struct {
				RemoveBook *gqlUser `json:"removeBook"`
			}
			resp := exec(userCtx, removeBookMutate, map[string]interface{}{"id": "zzz"}, &data)
			Expect(resp.Errors).To(BeEmpty())
			Expect(data.RemoveBook.BookCount).To(Equal(1))
		})

		It("should require a token", func() {
			resp := exec(ctx, saveBookMutate, map[string]interface{}{
				"b": map[string]interface{}{"bookId": "b1", "title": "Foo"},
			}, nil)
			Expect(codeOf(resp)).To(Equal("UNAUTHENTICATED"))
			Expect(resp.Errors[0].Message).To(Equal("You need to be logged in!"))
		})

		It("should reject an empty title", func() {
			resp := exec(userCtx, saveBookMutate, map[string]interface{}{
				"b": map[string]interface{}{"bookId": "b1", "title": ""},
			}, nil)
			Expect(codeOf(resp)).To(Equal("BAD_USER_INPUT"))
		})
	})

	Describe("query validation", func() {
		It("should reject unknown fields without calling resolvers", func() {
			resp := exec(ctx, `{ me { password } }`, nil, nil)
			Expect(resp.Errors).NotTo(BeEmpty())
			Expect(resp.Data).To(BeEmpty())
		})
	})
})
