// Package books searches the Google Books catalog.
package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookshelf/internal/errs"
	"bookshelf/internal/models"

	"github.com/jellydator/validation"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/books/v1"
	requestTimeout = 15 * time.Second
)

type volumesResponse struct {
	Items []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	InfoLink    string   `json:"infoLink"`
	ImageLinks  *struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Search returns the volumes matching query as books ready to be saved.
func (c *Client) Search(ctx context.Context, query string) ([]models.SavedBook, error) {
	if err := validation.Validate(strings.TrimSpace(query), validation.Required); err != nil {
		return nil, errs.Wrap(errs.KindValidation, "search query is required", err)
	}

	endpoint := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.KindExternalService, "Something went wrong!", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Wrap(errs.KindExternalService, "Something went wrong!",
			fmt.Errorf("books api responded with status %d", resp.StatusCode))
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(errs.KindExternalService, "Something went wrong!",
			fmt.Errorf("decode books api response: %w", err))
	}

	books := make([]models.SavedBook, 0, len(body.Items))
	for _, item := range body.Items {
		books = append(books, item.toBook())
	}
	return books, nil
}

func (v volume) toBook() models.SavedBook {
	authors := v.VolumeInfo.Authors
	if len(authors) == 0 {
		authors = []string{models.NoAuthors}
	}

	image := ""
	if v.VolumeInfo.ImageLinks != nil {
		image = v.VolumeInfo.ImageLinks.Thumbnail
	}

	return models.SavedBook{
		BookID:      v.ID,
		Title:       v.VolumeInfo.Title,
		Description: v.VolumeInfo.Description,
		Authors:     authors,
		Image:       image,
		Link:        v.VolumeInfo.InfoLink,
	}
}
