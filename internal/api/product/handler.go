package product

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"submarinosdk/internal/domain"
	apperror "submarinosdk/internal/errors"
	"submarinosdk/internal/pkg/logger"
)

// maxPayloadBytes limita o corpo aceito em POST.
const maxPayloadBytes = 1 << 20

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	StagePayload(ctx context.Context, payload []byte) (domain.Snapshot, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Normalize(payload []byte) ([]byte, error)
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// writeJSON envia uma resposta de sucesso já serializada.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.Logger.Error("Falha ao escrever resposta", err)
		return
	}

	h.Logger.Info("Requisição concluída com sucesso", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": status,
	})
}

// writeError traduz o erro com MapToHTTPStatus e envia um domain.ErrorResponse.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path":    r.URL.Path,
			"message": message,
		})
	}

	body, err := json.Marshal(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
	if err != nil {
		h.Logger.Error("Falha ao codificar resposta de erro", err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.Logger.Error("Falha ao escrever resposta de erro", err)
	}
}

func (h *Handler) readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, apperror.NewValidationError("Não foi possível ler o corpo da requisição.")
	}
	if len(body) > maxPayloadBytes {
		return nil, apperror.NewValidationError("Payload excede o tamanho máximo permitido.")
	}
	return body, nil
}

// StageProductHandler lida com a requisição POST /v1/products.
//
// @Summary      Armazena um payload de produto
// @Description  Valida o payload de troca, normaliza e guarda para envio ao marketplace.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        payload  body      object  true  "Payload de produto no formato do marketplace"
// @Success      201      {object}  domain.Snapshot
// @Failure      400      {object}  domain.ErrorResponse
// @Failure      500      {object}  domain.ErrorResponse
// @Router       /v1/products [post]
func (h *Handler) StageProductHandler(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	snapshot, err := h.Service.StagePayload(r.Context(), body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := json.Marshal(snapshot)
	if err != nil {
		h.writeError(w, r, apperror.NewInternalError("falha ao codificar resposta", err))
		return
	}
	h.writeJSON(w, r, http.StatusCreated, out)
}

// GetProductHandler lida com a requisição GET /v1/products/{id}.
//
// @Summary      Busca o último payload de um produto
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  object
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /v1/products/{id} [get]
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(r.PathValue("id"))
	if productID == "" {
		h.writeError(w, r, apperror.NewValidationError("ID do produto é obrigatório."))
		return
	}

	product, err := h.Service.Get(r.Context(), productID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := product.ToJSON()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

// NormalizeProductHandler lida com a requisição POST /v1/products/normalize.
//
// @Summary      Normaliza um payload de produto
// @Description  Decodifica e serializa de novo, sem armazenar. Chaves ausentes são emitidas com valor zero.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        payload  body      object  true  "Payload de produto no formato do marketplace"
// @Success      200      {object}  object
// @Failure      400      {object}  domain.ErrorResponse
// @Router       /v1/products/normalize [post]
func (h *Handler) NormalizeProductHandler(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.Service.Normalize(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, out)
}
