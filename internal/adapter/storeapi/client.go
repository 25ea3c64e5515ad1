// Package storeapi is the HTTP gateway to the remote store backend.
// Every call is a fresh round trip: no retry, no caching.
package storeapi

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

var _ port.ProductsProvider = Client{}
var _ port.OrdersProvider = Client{}
var _ port.SlidesProvider = Client{}
var _ port.UserVerifier = Client{}
var _ port.UserCreator = Client{}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) Client {
	return Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "storeapi.FetchProducts"

	var env productsEnvelope
	if err := c.getJSON(ctx, "/getProducts", &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := make([]domain.Product, len(env.Items))
	for i, v := range env.Items {
		products[i] = productToDomain(v)
	}
	return products, nil
}

func (c Client) FetchOrders(ctx context.Context) ([]domain.CartLineItem, error) {
	const op = "storeapi.FetchOrders"

	var res ordersResponse
	if err := c.getJSON(ctx, "/getOrders", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]domain.CartLineItem, len(res.LineItems))
	for i, v := range res.LineItems {
		items[i] = cartItemToDomain(v)
	}
	return items, nil
}

func (c Client) FetchSlides(ctx context.Context) ([]domain.Slide, error) {
	const op = "storeapi.FetchSlides"

	var res []slide
	if err := c.getJSON(ctx, "/getSlider", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slides := make([]domain.Slide, len(res))
	for i, v := range res {
		slides[i] = slideToDomain(v)
	}
	return slides, nil
}

func (c Client) VerifyUser(
	ctx context.Context, idToken string,
) (domain.Session, error) {
	const op = "storeapi.VerifyUser"

	path := "/verifyUser?idToken=" + url.QueryEscape(idToken)
	var res verifyUserResponse
	if err := c.getJSON(ctx, path, &res); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	if !res.Success || res.Data.UID == "" {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrAuth)
	}

	token := res.IDToken
	if token == "" {
		token = idToken
	}
	return domain.Session{UserID: res.Data.UID, IDToken: token}, nil
}

func (c Client) CreateUser(
	ctx context.Context, u domain.NewUser, idToken string,
) (domain.CreatedUser, error) {
	const op = "storeapi.CreateUser"

	body, err := json.Marshal(createUserRequest{
		FullName: u.FullName,
		Email:    u.Email,
	})
	if err != nil {
		return domain.CreatedUser{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/createUser", bytes.NewReader(body),
	)
	if err != nil {
		return domain.CreatedUser{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+idToken)

	httpRes, err := c.httpClient.Do(req)
	if err != nil {
		return domain.CreatedUser{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrNetwork, err,
		)
	}
	defer httpRes.Body.Close()

	var res createUserResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		return domain.CreatedUser{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrRemote, err,
		)
	}

	switch httpRes.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusNotFound:
		msg := res.Error
		if msg == "" {
			msg = "user creation rejected"
		}
		return domain.CreatedUser{}, fmt.Errorf(
			"%s: %w", op, &domain.RemoteAuthError{Message: msg},
		)
	default:
		return domain.CreatedUser{}, fmt.Errorf(
			"%s: %w: unexpected status %d", op, domain.ErrRemote,
			httpRes.StatusCode,
		)
	}

	if res.Error != "" {
		return domain.CreatedUser{}, fmt.Errorf(
			"%s: %w", op, &domain.RemoteAuthError{Message: res.Error},
		)
	}
	return domain.CreatedUser{UserID: res.UserID}, nil
}

func (c Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path, nil,
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"%w: unexpected status %d", domain.ErrRemote, res.StatusCode,
		)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRemote, err)
	}
	return nil
}
