package product_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"submarinosdk/internal/api/product"
	"submarinosdk/internal/domain"
	apperror "submarinosdk/internal/errors"
	"submarinosdk/internal/pkg/logger"
)

// MockProductService é uma implementação mock da interface ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) StagePayload(ctx context.Context, payload []byte) (domain.Snapshot, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *MockProductService) Normalize(payload []byte) ([]byte, error) {
	args := m.Called(payload)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestStageProductHandler_Created(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	body := `{"id":1,"name":"Phone","manufacturer":{},"sku":[]}`
	snapshot := domain.Snapshot{
		ID:        "3c95b8c8-1a2b-4c3d-9e8f-0a1b2c3d4e5f",
		ProductID: "1",
		Payload:   json.RawMessage(body),
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	svc.On("StagePayload", mock.Anything, []byte(body)).Return(snapshot, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.StageProductHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, snapshot.ID, got.ID)
	assert.Equal(t, "1", got.ProductID)
	assert.JSONEq(t, body, string(got.Payload))
	svc.AssertExpectations(t)
}

func TestStageProductHandler_Malformed(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	body := `{"id":1,"name":"Phone"}`
	svc.On("StagePayload", mock.Anything, []byte(body)).Return(domain.Snapshot{}, apperror.NewMissingKeyError("manufacturer"))

	req := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.StageProductHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "MALFORMED_PAYLOAD", resp.Category)
	assert.Contains(t, resp.Message, "manufacturer")
}

func TestStageProductHandler_InternalError(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	svc.On("StagePayload", mock.Anything, mock.Anything).
		Return(domain.Snapshot{}, apperror.NewDBError("falha", errors.New("conn reset")))

	req := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.StageProductHandler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Category)
}

func TestStageProductHandler_PayloadTooLarge(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	big := strings.Repeat("a", (1<<20)+1)
	req := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(big))
	rec := httptest.NewRecorder()
	h.StageProductHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "StagePayload", mock.Anything, mock.Anything)
}

func TestGetProductHandler_OK(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	f := domain.NewFactory()
	p := f.NewProduct().
		SetID(domain.Int(1)).
		SetName("Phone").
		SetManufacturer(f.NewManufacturer().SetName("Acme"))
	p.Sku().Add(f.NewSku().SetID(domain.Int(1)).SetEan([]string{"111", "222"}))
	svc.On("Get", mock.Anything, "1").Return(p, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.GetProductHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Phone", out["name"])
	sku := out["sku"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, []interface{}{"111", "222"}, sku["ean"])
}

func TestGetProductHandler_NotFound(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	svc.On("Get", mock.Anything, "99").Return(nil, apperror.NewNotFoundError("produto 99"))

	req := httptest.NewRequest(http.MethodGet, "/v1/products/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.GetProductHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Category)
}

func TestGetProductHandler_MissingID(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/products/", nil)
	rec := httptest.NewRecorder()
	h.GetProductHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

// failingWriter simula uma conexão encerrada pelo cliente.
type failingWriter struct {
	*httptest.ResponseRecorder
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestGetProductHandler_ErrorWriteFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewWithWriter(&logs, "debug"))

	req := httptest.NewRequest(http.MethodGet, "/v1/products/", nil)
	rec := httptest.NewRecorder()
	h.GetProductHandler(failingWriter{rec}, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, logs.String(), "Falha ao escrever resposta de erro")
	assert.Contains(t, logs.String(), "broken pipe")
}

func TestNormalizeProductHandler(t *testing.T) {
	svc := new(MockProductService)
	h := product.NewHandler(svc, logger.NewNop())

	in := `{"id":1,"name":"Phone","manufacturer":{},"sku":[]}`
	out := []byte(`{"id":1,"name":"Phone","deliveryType":"","nbm":{"number":"","origin":""},"manufacturer":{"name":"","model":"","warrantyTime":""},"sku":[]}`)
	svc.On("Normalize", []byte(in)).Return(out, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/products/normalize", strings.NewReader(in))
	rec := httptest.NewRecorder()
	h.NormalizeProductHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(out), rec.Body.String())
}
