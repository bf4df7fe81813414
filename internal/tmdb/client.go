// Package tmdb is a thin client for The Movie Database REST API,
// consumed by the seeding command.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the TMDb v3 API
type Client struct {
	apiKey    string
	baseURL   string
	imageBase string
	http      *http.Client
}

// Config holds TMDb client settings
type Config struct {
	APIKey    string
	BaseURL   string
	ImageBase string
	Timeout   time.Duration
}

// NewClient creates a new TMDb client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.ImageBase == "" {
		cfg.ImageBase = "https://image.tmdb.org/t/p/w500"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		imageBase: cfg.ImageBase,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// Genre is a TMDb genre record
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is a TMDb movie record as returned by the popular listing
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	GenreIDs    []int   `json:"genre_ids"`
	VoteAverage float64 `json:"vote_average"`
}

// CastMember is one entry of a movie's credits
type CastMember struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// get performs one API call and decodes the JSON body into out
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: %s returned status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Genres fetches the movie genre list
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var body struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get(ctx, "/genre/movie/list", nil, &body); err != nil {
		return nil, err
	}
	return body.Genres, nil
}

// Popular fetches one page of the popular movie listing
func (c *Client) Popular(ctx context.Context, page int) ([]Movie, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))

	var body struct {
		Results []Movie `json:"results"`
	}
	if err := c.get(ctx, "/movie/popular", params, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// Cast fetches a movie's billed cast, in billing order
func (c *Client) Cast(ctx context.Context, movieID int) ([]CastMember, error) {
	var body struct {
		Cast []CastMember `json:"cast"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil, &body); err != nil {
		return nil, err
	}
	return body.Cast, nil
}

// ImageURL resolves a poster path against the configured image base
func (c *Client) ImageURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return c.imageBase + posterPath
}
