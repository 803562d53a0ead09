package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"submarinosdk/config"
	"submarinosdk/internal/api/product"
	"submarinosdk/internal/api/router"
	"submarinosdk/internal/pkg/cache"
	"submarinosdk/internal/pkg/database"
	"submarinosdk/internal/pkg/logger"
	"submarinosdk/internal/pkg/middleware"
	"submarinosdk/internal/repository/productrepo"
	"submarinosdk/internal/service/productservice"
)

// @title        Submarino SDK - Staging de Catálogo
// @version      1.0
// @description  Prepara e valida payloads de produto para a API de catálogo do marketplace.
// @host         localhost:8080
// @BasePath     /
func main() {
	// O .env é opcional: em containers as variáveis já vêm do ambiente.
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Usando apenas o ambiente do sistema.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	ctx := context.Background()

	// Infraestrutura
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	cacheClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.CacheTimeout)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao Redis.", err)
	}
	defer cacheClient.Close()
	appLog.Info("Conexão Redis estabelecida.", nil)

	// Repository -> Service -> Handler
	productRepo := productrepo.NewProductRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	productSvc := productservice.NewService(productRepo, appLog)
	productHandler := product.NewHandler(productSvc, appLog)

	r := router.NewRouter(productHandler,
		middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
