package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"bookshelf/internal/core"
	"bookshelf/internal/graph"
	"bookshelf/internal/http/handler"
	"bookshelf/internal/http/handler/middleware"
	"bookshelf/internal/http/payload"
	"bookshelf/internal/http/router"
	"bookshelf/internal/memstore"
	tokenIssuer "bookshelf/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const origin = "http://localhost:3000"

type gqlError struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions"`
}

type gqlResult struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

type savedBook struct {
	BookID string `json:"bookId"`
}

type user struct {
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	BookCount  int         `json:"bookCount"`
	SavedBooks []savedBook `json:"savedBooks"`
}

type authPayload struct {
	Token string `json:"token"`
	User  user   `json:"user"`
}

var _ = Describe("Router", func() {
	var (
		srv       *httptest.Server
		store     *memstore.UserStore
		staticDir string
	)

	post := func(token, query string, vars map[string]interface{}) gqlResult {
		body, err := json.Marshal(map[string]interface{}{"query": query, "variables": vars})
		Expect(err).NotTo(HaveOccurred())

		req, err := http.NewRequest(http.MethodPost, srv.URL+"/graphql", bytes.NewReader(body))
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var out gqlResult
		Expect(json.NewDecoder(resp.Body).Decode(&out)).To(Succeed())
		return out
	}

	field := func(res gqlResult, name string, out interface{}) {
		Expect(res.Errors).To(BeEmpty())
		Expect(json.Unmarshal(res.Data[name], out)).To(Succeed())
	}

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		store = memstore.NewUserStore()
		jwtService := tokenIssuer.NewJWTService([]byte("router-secret"))

		schema, err := graph.NewSchema(logger, core.NewBookshelf(logger, store, jwtService))
		Expect(err).NotTo(HaveOccurred())

		staticDir = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>app</html>"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log(1)"), 0o644)).To(Succeed())

		h := router.New(logger,
			router.Options{AllowedOrigin: origin, StaticDir: staticDir},
			handler.NewGraphQLHandler(logger, payload.DecodeValidator{}, schema),
			middleware.NewAuthMiddleware(logger, jwtService))
		srv = httptest.NewServer(h)
	})

	AfterEach(func() {
		srv.Close()
	})

	It("should run the account and saved books flow end to end", func() {
		var signup authPayload
		field(post("", `mutation { addUser(username: "alice", email: "alice@x.com", password: "pw123") { token user { id username } } }`, nil), "addUser", &signup)
		Expect(signup.User.Username).To(Equal("alice"))

		var login authPayload
		field(post("", `mutation { login(email: "alice@x.com", password: "pw123") { token user { id } } }`, nil), "login", &login)
		Expect(login.User.ID).To(Equal(signup.User.ID))
		token := login.Token

		var saved user
		field(post(token, `mutation($b: BookInput!) { saveBook(bookData: $b) { bookCount savedBooks { bookId } } }`,
			map[string]interface{}{"b": map[string]interface{}{"bookId": "b1", "title": "Foo", "authors": []string{"A"}}}),
			"saveBook", &saved)
		Expect(saved.SavedBooks).To(Equal([]savedBook{{BookID: "b1"}}))

		var removed user
		field(post(token, `mutation { removeBook(bookId: "b1") { bookCount savedBooks { bookId } } }`, nil), "removeBook", &removed)
		Expect(removed.BookCount).To(Equal(0))
		Expect(removed.SavedBooks).To(BeEmpty())
	})

	It("should answer me without a token with UNAUTHENTICATED", func() {
		res := post("", `{ me { username } }`, nil)
		Expect(res.Errors).To(HaveLen(1))
		Expect(res.Errors[0].Extensions).To(HaveKeyWithValue("code", "UNAUTHENTICATED"))
		Expect(string(res.Data["me"])).To(Equal("null"))
	})

	It("should treat a garbage token as anonymous", func() {
		res := post("not-a-jwt", `{ me { username } }`, nil)
		Expect(res.Errors[0].Extensions).To(HaveKeyWithValue("code", "UNAUTHENTICATED"))
	})

	It("should answer me for a deleted user with NOT_FOUND", func() {
		var signup authPayload
		field(post("", `mutation { addUser(username: "bob", email: "bob@x.com", password: "pw123") { token user { id } } }`, nil), "addUser", &signup)
		store.DeleteUser(signup.User.ID)

		res := post(signup.Token, `{ me { username } }`, nil)
		Expect(res.Errors).To(HaveLen(1))
		Expect(res.Errors[0].Extensions).To(HaveKeyWithValue("code", "NOT_FOUND"))
	})

	It("should reject a malformed body with 400", func() {
		resp, err := http.Post(srv.URL+"/graphql", "application/json", bytes.NewBufferString(`{"nope":1}`))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("should answer health checks", func() {
		resp, err := http.Get(srv.URL + "/health")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(string(body)).To(Equal("OK"))
	})

	It("should allow the configured origin with credentials", func() {
		req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/graphql", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.Header.Get("Access-Control-Allow-Origin")).To(Equal(origin))
		Expect(resp.Header.Get("Access-Control-Allow-Credentials")).To(Equal("true"))
	})

	It("should not allow other origins", func() {
		req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/graphql", nil)
		req.Header.Set("Origin", "http://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.Header.Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})

	It("should serve static files with an index fallback", func() {
		resp, err := http.Get(srv.URL + "/app.js")
		Expect(err).NotTo(HaveOccurred())
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		Expect(string(body)).To(Equal("console.log(1)"))

		resp, err = http.Get(srv.URL + "/saved")
		Expect(err).NotTo(HaveOccurred())
		body, _ = io.ReadAll(resp.Body)
		resp.Body.Close()
		Expect(string(body)).To(Equal("<html>app</html>"))
	})
})
