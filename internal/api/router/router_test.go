package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"submarinosdk/internal/api/product"
	"submarinosdk/internal/api/router"
	"submarinosdk/internal/domain"
	"submarinosdk/internal/pkg/logger"
	"submarinosdk/internal/service/productservice"
)

// memoryRepo guarda payloads em memória para exercitar o fluxo completo.
type memoryRepo struct {
	payloads map[string][]byte
}

func (m *memoryRepo) Save(_ context.Context, productID string, payload []byte) (domain.Snapshot, error) {
	m.payloads[productID] = payload
	return domain.Snapshot{ID: "snap-" + productID, ProductID: productID, Payload: payload}, nil
}

func (m *memoryRepo) FindLatest(_ context.Context, productID string) ([]byte, error) {
	return m.payloads[productID], nil
}

func newRouter(middlewares ...func(http.Handler) http.Handler) http.Handler {
	repo := &memoryRepo{payloads: map[string][]byte{}}
	svc := productservice.NewService(repo, logger.NewNop())
	return router.NewRouter(product.NewHandler(svc, logger.NewNop()), middlewares...)
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestStageThenGet(t *testing.T) {
	r := newRouter()

	body := `{"id":7,"name":"Phone","deliveryType":"express","manufacturer":{"name":"Acme","model":"X1","warrantyTime":12},"sku":[{"id":1,"name":"Black","ean":["111","222"]}]}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products/7", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := domain.DecodeProduct(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Manufacturer().Name())
	assert.Equal(t, []string{"111", "222"}, p.Sku().First().Ean())
}

func TestNormalizeRoute_Malformed(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/products/normalize", strings.NewReader(`{"id":1,"name":"Phone"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MALFORMED_PAYLOAD")
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/products", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMiddlewareOrder(t *testing.T) {
	var calls []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rec := httptest.NewRecorder()
	newRouter(mw("outer"), mw("inner")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, []string{"outer", "inner"}, calls)
}

func TestSwaggerDoc(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Paths map[string]map[string]struct {
			Consumes []string `json:"consumes"`
			Tags     []string `json:"tags"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, []string{"application/json"}, doc.Paths["/v1/products"]["post"].Consumes)
	assert.Equal(t, []string{"products"}, doc.Paths["/v1/products/{id}"]["get"].Tags)
	assert.Contains(t, doc.Paths, "/v1/products/normalize")
}
