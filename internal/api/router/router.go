package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registra a especificação gerada pelo swag
	_ "submarinosdk/docs"
	"submarinosdk/internal/api/product"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Os middlewares são aplicados na ordem recebida (o primeiro é o mais externo).
func NewRouter(productHandler *product.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("GET /ping", PingHandler)

	// Documentação (Swagger UI)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Rotas do Módulo de Produtos (v1)
	mux.HandleFunc("POST /v1/products", productHandler.StageProductHandler)
	mux.HandleFunc("POST /v1/products/normalize", productHandler.NormalizeProductHandler)
	mux.HandleFunc("GET /v1/products/{id}", productHandler.GetProductHandler)

	var handler http.Handler = mux
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
