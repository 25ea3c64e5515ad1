package storeapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storeapi"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetchOrders(t *testing.T) {
	t.Run("DecodesLineItems", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/getOrders", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"lineItems": [
						{
							"_id": "item1",
							"productName": {"original": "Product 1"},
							"price": {"amount": 100},
							"quantity": 2,
							"image": "https://img.test/p1.png",
							"availability": {"status": "In Stock"}
						}
					]
				}`))
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		items, err := c.FetchOrders(t.Context())
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, "item1", items[0].ID)
		assert.Equal(t, "Product 1", items[0].ProductName)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, "In Stock", items[0].Availability)
		assert.True(t, items[0].Price.Equal(decimal.NewFromInt(100)))
	})

	t.Run("NonSuccessStatusIsRemoteError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		_, err := c.FetchOrders(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRemote)
	})

	t.Run("MalformedBodyIsRemoteError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		_, err := c.FetchOrders(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRemote)
	})

	t.Run("TransportFailureIsNetworkError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {},
		))
		srv.Close()

		c := storeapi.NewClient(srv.URL)
		_, err := c.FetchOrders(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetwork)
	})
}

func TestClientFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/getProducts", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"items": [
					{
						"_id": "p1",
						"slug": "air-runner",
						"name": "Air Runner",
						"productType": "shoes",
						"price": {"price": 500, "discountedPrice": 450},
						"media": {
							"mainMedia": {"image": {"url": "https://img.test/main.png"}},
							"items": [{"image": {"url": "https://img.test/alt.png"}}]
						},
						"additionalInfoSections": [
							{"title": "Materials", "description": "Mesh"}
						],
						"stock": {"quantity": 7}
					}
				],
				"currentPage": 0,
				"hasPrev": false,
				"hasNext": true
			}`))
		},
	))
	defer srv.Close()

	c := storeapi.NewClient(srv.URL)
	products, err := c.FetchProducts(t.Context())
	require.NoError(t, err)

	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "air-runner", p.Slug)
	assert.Equal(t, "shoes", p.ProductType)
	assert.Equal(t, 7, p.StockQuantity)
	assert.Equal(t, "https://img.test/main.png", p.Media.Main.URL)
	require.Len(t, p.InfoSections, 1)
	assert.Equal(t, "Materials", p.InfoSections[0].Title)

	require.NotNil(t, p.Price.Discounted)
	assert.True(t, p.Price.Display().Equal(decimal.NewFromInt(450)))
}

func TestClientFetchSlides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/getSlider", r.URL.Path)
			_, _ = w.Write([]byte(`[
				{
					"id": 1,
					"title": "Summer Sale",
					"description": "Up to 50% off",
					"img": "https://img.test/slide.png",
					"url": "/list?cat=summer",
					"bg": "bg-gradient-to-r"
				}
			]`))
		},
	))
	defer srv.Close()

	c := storeapi.NewClient(srv.URL)
	slides, err := c.FetchSlides(t.Context())
	require.NoError(t, err)

	require.Len(t, slides, 1)
	assert.Equal(t, "Summer Sale", slides[0].Title)
	assert.Equal(t, "/list?cat=summer", slides[0].URL)
}

func TestClientVerifyUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/verifyUser", r.URL.Path)
				require.Equal(t, "token-1", r.URL.Query().Get("idToken"))
				_, _ = w.Write([]byte(
					`{"success": true, "data": {"uid": "uid-1"}}`,
				))
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		sess, err := c.VerifyUser(t.Context(), "token-1")
		require.NoError(t, err)
		assert.Equal(t, "uid-1", sess.UserID)
		assert.Equal(t, "token-1", sess.IDToken)
	})

	t.Run("RejectedIsAuthError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success": false}`))
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		_, err := c.VerifyUser(t.Context(), "token-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAuth)
	})
}

func TestClientCreateUser(t *testing.T) {
	newUser := domain.NewUser{FullName: "newuser", Email: "new@test.dev"}

	t.Run("SendsBearerTokenNotPassword", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/createUser", r.URL.Path)
				require.Equal(
					t, "Bearer token-2", r.Header.Get("Authorization"),
				)
				_, _ = w.Write([]byte(
					`{"results": true, "userId": "uid-2"}`,
				))
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		created, err := c.CreateUser(t.Context(), newUser, "token-2")
		require.NoError(t, err)
		assert.Equal(t, "uid-2", created.UserID)
	})

	t.Run("BackendMessageOnUnauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error": "user already exists"}`))
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		_, err := c.CreateUser(t.Context(), newUser, "token-2")
		require.Error(t, err)

		var remoteErr *domain.RemoteAuthError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "user already exists", remoteErr.Message)
	})

	t.Run("UnexpectedStatusIsRemoteError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{}`))
			},
		))
		defer srv.Close()

		c := storeapi.NewClient(srv.URL)
		_, err := c.CreateUser(t.Context(), newUser, "token-2")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRemote)
	})
}
