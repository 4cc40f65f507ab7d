// Package api talks to the bookshelf GraphQL endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bookshelf/internal/errs"
	"bookshelf/internal/models"
)

const (
	DefaultEndpoint = "http://localhost:3001/graphql"
	requestTimeout  = 15 * time.Second
)

const (
	addUserMutation = `mutation addUser($username: String!, $email: String!, $password: String!) {
  addUser(username: $username, email: $email, password: $password) {
    token
    user { id username email }
  }
}`
	loginMutation = `mutation login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    token
    user { id username email }
  }
}`
	meQuery = `query me {
  me {
    id
    username
    email
    savedBooks { bookId authors description title image link }
  }
}`
	saveBookMutation = `mutation saveBook($bookData: BookInput!) {
  saveBook(bookData: $bookData) {
    id
    username
    savedBooks { bookId authors description title image link }
  }
}`
	removeBookMutation = `mutation removeBook($bookId: String!) {
  removeBook(bookId: $bookId) {
    id
    username
    savedBooks { bookId authors description title image link }
  }
}`
)

// TokenSource supplies the bearer token attached to each request. An empty token
// sends the request anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type Client struct {
	endpoint string
	http     *http.Client
	tokens   TokenSource
}

func NewClient(endpoint string, httpClient *http.Client, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		tokens:   tokens,
	}
}

func (c *Client) AddUser(ctx context.Context, username, email, password string) (AuthResult, error) {
	var data struct {
		AddUser *AuthResult `json:"addUser"`
	}
	err := c.do(ctx, addUserMutation, map[string]interface{}{
		"username": username,
		"email":    email,
		"password": password,
	}, &data)
	if err != nil {
		return AuthResult{}, err
	}
	if data.AddUser == nil {
		return AuthResult{}, errs.New(errs.KindInternal, "empty addUser response")
	}
	return *data.AddUser, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var data struct {
		Login *AuthResult `json:"login"`
	}
	err := c.do(ctx, loginMutation, map[string]interface{}{
		"email":    email,
		"password": password,
	}, &data)
	if err != nil {
		return AuthResult{}, err
	}
	if data.Login == nil {
		return AuthResult{}, errs.New(errs.KindInternal, "empty login response")
	}
	return *data.Login, nil
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	var data struct {
		Me *models.User `json:"me"`
	}
	if err := c.do(ctx, meQuery, nil, &data); err != nil {
		return models.User{}, err
	}
	if data.Me == nil {
		return models.User{}, errs.New(errs.KindInternal, "empty me response")
	}
	return *data.Me, nil
}

func (c *Client) SaveBook(ctx context.Context, book models.SavedBook) (models.User, error) {
	var data struct {
		SaveBook *models.User `json:"saveBook"`
	}
	if err := c.do(ctx, saveBookMutation, map[string]interface{}{"bookData": book}, &data); err != nil {
		return models.User{}, err
	}
	if data.SaveBook == nil {
		return models.User{}, errs.New(errs.KindInternal, "empty saveBook response")
	}
	return *data.SaveBook, nil
}

func (c *Client) RemoveBook(ctx context.Context, bookID string) (models.User, error) {
	var data struct {
		RemoveBook *models.User `json:"removeBook"`
	}
	if err := c.do(ctx, removeBookMutation, map[string]interface{}{"bookId": bookID}, &data); err != nil {
		return models.User{}, err
	}
	if data.RemoveBook == nil {
		return models.User{}, errs.New(errs.KindInternal, "empty removeBook response")
	}
	return *data.RemoveBook, nil
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			Code string `json:"code"`
		} `json:"extensions"`
	} `json:"errors"`
}

// do posts one operation and decodes its data into out. The first GraphQL error is
// returned as a typed error carrying the server's code and message.
func (c *Client) do(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(errs.KindExternalService, "bookshelf server is unreachable", err)
	}
	defer resp.Body.Close()

	var gqlResp response
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return errs.Wrap(errs.KindExternalService, "unexpected response from bookshelf server",
			fmt.Errorf("decode graphql response (status %d): %w", resp.StatusCode, err))
	}

	if len(gqlResp.Errors) > 0 {
		first := gqlResp.Errors[0]
		kind := errs.Kind(first.Extensions.Code)
		if kind == "" {
			kind = errs.KindInternal
		}
		return errs.New(kind, first.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return errs.New(errs.KindExternalService, fmt.Sprintf("bookshelf server responded with status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}
