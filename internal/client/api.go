// Package client is the admin-side data layer: a typed HTTP client over the
// server API, a file-backed session store, and login lockout bookkeeping.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// APIError carries the status code and the server's {error, details?} body.
type APIError struct {
	Status  int
	Message string
	Details json.RawMessage
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// API is a typed client for the server's JSON endpoints. AccessToken, when
// set, is sent as a bearer token on every request.
type API struct {
	baseURL     string
	httpClient  *http.Client
	AccessToken string
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *API) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+a.AccessToken)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var wire struct {
			Error   string          `json:"error"`
			Message string          `json:"message"`
			Details json.RawMessage `json:"details"`
		}
		if json.Unmarshal(payload, &wire) == nil {
			if wire.Error != "" {
				apiErr.Message = wire.Error
			} else if wire.Message != "" {
				apiErr.Message = wire.Message
			}
			apiErr.Details = wire.Details
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

// --- auth ---

// LoginResult is the login endpoint's success body.
type LoginResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	SessionToken string `json:"sessionToken"`
	User         struct {
		Username string `json:"username"`
	} `json:"user"`
}

func (a *API) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	err := a.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	a.AccessToken = out.AccessToken
	return &out, nil
}

func (a *API) Refresh(ctx context.Context, sessionToken string) (*LoginResult, error) {
	var out LoginResult
	err := a.do(ctx, http.MethodPost, "/api/auth/refresh", map[string]string{
		"sessionToken": sessionToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	a.AccessToken = out.AccessToken
	return &out, nil
}

func (a *API) CreateAdmin(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/api/create-admin", nil, nil)
}

// AdminExists checks whether the owner account has been provisioned.
func (a *API) AdminExists(ctx context.Context) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/create-admin", nil, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// --- poems ---

func (a *API) ListPoems(ctx context.Context) ([]*models.Poem, error) {
	var out []*models.Poem
	err := a.do(ctx, http.MethodGet, "/api/poems", nil, &out)
	return out, err
}

func (a *API) GetPoem(ctx context.Context, id string) (*models.Poem, error) {
	var out models.Poem
	err := a.do(ctx, http.MethodGet, "/api/poems/"+id, nil, &out)
	return &out, err
}

func (a *API) CreatePoem(ctx context.Context, poem *models.Poem) (*models.Poem, error) {
	var out models.Poem
	err := a.do(ctx, http.MethodPost, "/api/poems", poem, &out)
	return &out, err
}

func (a *API) UpdatePoem(ctx context.Context, id string, upd *models.PoemUpdate) (*models.Poem, error) {
	var out models.Poem
	err := a.do(ctx, http.MethodPut, "/api/poems/"+id, upd, &out)
	return &out, err
}

func (a *API) DeletePoem(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/poems/"+id, nil, nil)
}

// --- movies ---

func (a *API) ListMovies(ctx context.Context) ([]*models.Movie, error) {
	var out []*models.Movie
	err := a.do(ctx, http.MethodGet, "/api/movies", nil, &out)
	return out, err
}

func (a *API) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	var out models.Movie
	err := a.do(ctx, http.MethodGet, "/api/movies/"+id, nil, &out)
	return &out, err
}

func (a *API) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	var out models.Movie
	err := a.do(ctx, http.MethodPost, "/api/movies", movie, &out)
	return &out, err
}

func (a *API) UpdateMovie(ctx context.Context, id string, upd *models.MovieUpdate) (*models.Movie, error) {
	var out models.Movie
	err := a.do(ctx, http.MethodPut, "/api/movies/"+id, upd, &out)
	return &out, err
}

func (a *API) DeleteMovie(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/movies/"+id, nil, nil)
}

// --- books ---

func (a *API) ListBooks(ctx context.Context) ([]*models.Book, error) {
	var out []*models.Book
	err := a.do(ctx, http.MethodGet, "/api/books", nil, &out)
	return out, err
}

func (a *API) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var out models.Book
	err := a.do(ctx, http.MethodGet, "/api/books/"+id, nil, &out)
	return &out, err
}

func (a *API) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	var out models.Book
	err := a.do(ctx, http.MethodPost, "/api/books", book, &out)
	return &out, err
}

func (a *API) UpdateBook(ctx context.Context, id string, upd *models.BookUpdate) (*models.Book, error) {
	var out models.Book
	err := a.do(ctx, http.MethodPut, "/api/books/"+id, upd, &out)
	return &out, err
}

func (a *API) DeleteBook(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/books/"+id, nil, nil)
}

// --- personal info ---

func (a *API) GetPersonalInfo(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	err := a.do(ctx, http.MethodGet, "/api/personal", nil, &out)
	return out, err
}

func (a *API) SetPersonalInfo(ctx context.Context, data map[string]string) error {
	return a.do(ctx, http.MethodPost, "/api/personal", data, nil)
}

// --- seed ---

// SeedResult mirrors the server's reseed report.
type SeedResult struct {
	Poems        int    `json:"poems"`
	Movies       int    `json:"movies"`
	Books        int    `json:"books"`
	PersonalInfo int    `json:"personalInfo"`
	Admin        string `json:"admin"`
}

func (a *API) Seed(ctx context.Context) (*SeedResult, error) {
	var out struct {
		Seeded SeedResult `json:"seeded"`
	}
	if err := a.do(ctx, http.MethodPost, "/api/seed", nil, &out); err != nil {
		return nil, err
	}
	return &out.Seeded, nil
}

func (a *API) Health(ctx context.Context) error {
	return a.do(ctx, http.MethodGet, "/health", nil, nil)
}
