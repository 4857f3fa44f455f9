package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"clinic_backend/internal/feature/useradmin/adapters/authapi/dto"
	"clinic_backend/internal/feature/useradmin/domain"
	"clinic_backend/internal/feature/useradmin/domain/entity"
	"clinic_backend/internal/feature/useradmin/usecase"
)

// listPageSize is the per_page bound used when scanning the full listing.
const listPageSize = 1000

// Client is a DirectoryRepository implementation backed by the hosted
// auth service's admin API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements DirectoryRepository.
var _ usecase.DirectoryRepository = (*Client)(nil)

// NewClient creates a new Client with the given config and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// checkConfig rejects calls before any network access when the service
// is not configured.
func (c *Client) checkConfig() error {
	if c.cfg.BaseURL == "" || c.cfg.ServiceKey == "" {
		return fmt.Errorf("%w: AUTH_API_URL or AUTH_SERVICE_KEY not set", domain.ErrServerMisconfigured)
	}
	return nil
}

// doJSON performs one request against the auth API and decodes the JSON
// response into out (when out is non-nil). Error bodies are translated
// into Go errors; a 404 maps to domain.ErrUserNotFound.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, bearer string, out any) error {
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("apikey", c.cfg.ServiceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		msg := errorMessage(res)
		if res.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, msg)
		}
		return fmt.Errorf("auth api %d: %s", res.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the most useful message from an error body.
func errorMessage(res *http.Response) string {
	var e dto.ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&e); err == nil {
		for _, m := range []string{e.Message, e.ErrorDescription, e.Error} {
			if m != "" {
				return m
			}
		}
	}
	return res.Status
}

// ListUsers retrieves the full user listing, paging until a short page.
func (c *Client) ListUsers(ctx context.Context) ([]entity.DirectoryUser, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	var out []entity.DirectoryUser
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(listPageSize))

		var body dto.ListUsersResponse
		if err := c.doJSON(ctx, http.MethodGet, "/admin/users", q, nil, c.cfg.ServiceKey, &body); err != nil {
			return nil, err
		}
		for _, u := range body.Users {
			out = append(out, toEntity(u))
		}
		if len(body.Users) < listPageSize {
			break
		}
	}
	return out, nil
}

// FindByEmail scans the full listing for a case-insensitive email match.
// The admin API exposes no lookup-by-email, so this is a linear scan;
// the caching decorator in platform/cache keeps it off the wire for
// repeated calls.
func (c *Client) FindByEmail(ctx context.Context, email string) (*entity.DirectoryUser, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// CreateUser creates a new auth user with a confirmed email.
func (c *Client) CreateUser(ctx context.Context, u entity.NewDirectoryUser) (*entity.DirectoryUser, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	req := dto.CreateUserRequest{
		Email:        u.Email,
		Password:     u.Password,
		EmailConfirm: u.Confirm,
		UserMetadata: toMetadataDTO(u.Metadata),
	}
	var body dto.User
	if err := c.doJSON(ctx, http.MethodPost, "/admin/users", nil, req, c.cfg.ServiceKey, &body); err != nil {
		return nil, err
	}
	created := toEntity(body)
	return &created, nil
}

// UpdateMetadata replaces the metadata block of an auth user.
func (c *Client) UpdateMetadata(ctx context.Context, id string, meta entity.Metadata) (*entity.DirectoryUser, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	req := dto.UpdateUserRequest{UserMetadata: toMetadataDTO(meta)}
	var body dto.User
	if err := c.doJSON(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), nil, req, c.cfg.ServiceKey, &body); err != nil {
		return nil, err
	}
	updated := toEntity(body)
	return &updated, nil
}

// DeleteUser removes an auth user. A missing record surfaces as an error
// wrapping domain.ErrUserNotFound.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.checkConfig(); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil, c.cfg.ServiceKey, nil)
}

// UserFromToken resolves a caller's bearer token to its auth record.
// The caller token, not the service key, authenticates this request.
func (c *Client) UserFromToken(ctx context.Context, token string) (*entity.DirectoryUser, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	var body dto.User
	if err := c.doJSON(ctx, http.MethodGet, "/user", nil, nil, token, &body); err != nil {
		return nil, err
	}
	u := toEntity(body)
	return &u, nil
}

// toEntity converts a wire user into the domain entity, normalizing the
// role metadata through the closed Role set.
func toEntity(u dto.User) entity.DirectoryUser {
	role, _ := entity.ParseRole(u.UserMetadata.Role)
	e := entity.DirectoryUser{
		ID:           u.ID,
		Email:        u.Email,
		Confirmed:    u.EmailConfirmedAt != nil,
		BannedUntil:  u.BannedUntil,
		LastSignInAt: u.LastSignInAt,
		Metadata: entity.Metadata{
			Role:        role,
			FullName:    u.UserMetadata.Name,
			DisplayName: u.UserMetadata.DisplayName,
		},
	}
	if u.CreatedAt != nil {
		e.CreatedAt = *u.CreatedAt
	}
	return e
}

func toMetadataDTO(meta entity.Metadata) dto.UserMetadata {
	return dto.UserMetadata{
		Role:        string(meta.Role),
		Name:        meta.FullName,
		DisplayName: meta.DisplayName,
	}
}
