// Package identity is the client for the external email/password
// identity provider.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.IdentityProvider = Client{}

const (
	signInEndpoint = "/v1/accounts:signInWithPassword"
	signUpEndpoint = "/v1/accounts:signUp"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) Client {
	return Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type credentialRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type credentialResponse struct {
	LocalID string `json:"localId"`
	IDToken string `json:"idToken"`
	Email   string `json:"email"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c Client) SignIn(
	ctx context.Context, email, password string,
) (domain.Credential, error) {
	const op = "identity.SignIn"
	return c.exchange(ctx, op, signInEndpoint, email, password)
}

func (c Client) SignUp(
	ctx context.Context, email, password string,
) (domain.Credential, error) {
	const op = "identity.SignUp"
	return c.exchange(ctx, op, signUpEndpoint, email, password)
}

func (c Client) exchange(
	ctx context.Context, op, endpoint, email, password string,
) (domain.Credential, error) {
	body, err := json.Marshal(credentialRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%s: %w", op, err)
	}

	reqURL := c.baseURL + endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, reqURL, bytes.NewReader(body),
	)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpRes, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Credential{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrNetwork, err,
		)
	}
	defer httpRes.Body.Close()

	var res credentialResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		return domain.Credential{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrRemote, err,
		)
	}

	switch {
	case httpRes.StatusCode == http.StatusOK:
	case httpRes.StatusCode == http.StatusBadRequest,
		httpRes.StatusCode == http.StatusUnauthorized:
		return domain.Credential{}, fmt.Errorf(
			"%s: %w: %s", op, domain.ErrAuth, res.Error.Message,
		)
	default:
		return domain.Credential{}, fmt.Errorf(
			"%s: %w: unexpected status %d", op, domain.ErrRemote,
			httpRes.StatusCode,
		)
	}

	if res.LocalID == "" || res.IDToken == "" {
		return domain.Credential{}, fmt.Errorf("%s: %w", op, domain.ErrAuth)
	}

	return domain.Credential{
		UID:     res.LocalID,
		IDToken: res.IDToken,
		Email:   res.Email,
	}, nil
}
