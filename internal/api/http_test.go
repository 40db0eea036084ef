package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestProducts_OmitsEmptyFilterFields(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := context.Background()

	_, err := c.Products(ctx, ProductFilter{Category: "ebooks", Search: ""})
	require.NoError(t, err)
	assert.Equal(t, "category=ebooks", gotQuery)

	_, err = c.Products(ctx, ProductFilter{Category: "", Search: "ai"})
	require.NoError(t, err)
	assert.Equal(t, "search=ai", gotQuery)

	_, err = c.Products(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestBearerAttachment(t *testing.T) {
	var gotAuth string
	var gotPresent bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, gotPresent = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@b.c","username":"a","is_admin":false}`))
	})

	ctx := context.Background()

	// No token set: the header must be omitted entirely.
	_, err := c.Me(ctx)
	require.NoError(t, err)
	assert.False(t, gotPresent)

	c.SetToken("tok-123")
	_, err = c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	c.ClearToken()
	_, err = c.Me(ctx)
	require.NoError(t, err)
	assert.False(t, gotPresent)
}

func TestLogin_ParsesAuthResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t1","user":{"id":"u1","email":"a@b.c","username":"alice","is_admin":true}}`))
	})

	resp, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.True(t, resp.User.IsAdmin)
}

func TestErrorResponse_CarriesDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Email ou mot de passe incorrect"}`))
	})

	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "Email ou mot de passe incorrect", apiErr.Message())
}

func TestErrorResponse_GenericFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Categories(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, genericMessage, apiErr.Message())
}

func TestTransportFailure_WrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestDeleteProduct_PathAndMethod(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteProduct(context.Background(), "p42"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/products/p42", gotPath)
}
