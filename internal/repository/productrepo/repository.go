package productrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"submarinosdk/internal/domain"
	apperror "submarinosdk/internal/errors"
	"submarinosdk/internal/pkg/cache"
	"submarinosdk/internal/pkg/logger"
)

// Define a chave de cache para o último payload de um produto.
const payloadCacheKey = "product-payload:%s"

// CacheKey devolve a chave de cache usada para o produto informado.
func CacheKey(productID string) string {
	return fmt.Sprintf(payloadCacheKey, productID)
}

// ProductRepository guarda os payloads de produto já serializados (PostgreSQL)
// e mantém o último de cada produto em cache (Redis).
type ProductRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	Logger    logger.Logger

	now   func() time.Time
	newID func() string
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		Logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}
}

// Save persiste um novo payload para o produto e atualiza o cache.
// Uma falha no cache é apenas registrada: o banco é a fonte da verdade.
func (r *ProductRepository) Save(ctx context.Context, productID string, payload []byte) (domain.Snapshot, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	snapshot := domain.Snapshot{
		ID:        r.newID(),
		ProductID: productID,
		Payload:   json.RawMessage(payload),
		CreatedAt: r.now(),
	}

	const insertSQL = `INSERT INTO product_payloads (id, product_id, payload, created_at)
                       VALUES ($1, $2, $3, $4)`

	_, err := r.DB.ExecContext(ctxTimeout, insertSQL,
		snapshot.ID,
		snapshot.ProductID,
		string(payload),
		snapshot.CreatedAt,
	)
	if err != nil {
		return domain.Snapshot{}, apperror.NewDBError("falha ao inserir payload do produto", err)
	}

	r.cachePayload(ctxTimeout, productID, payload)

	return snapshot, nil
}

// FindLatest devolve o payload mais recente do produto, usando a estratégia Cache-Aside.
func (r *ProductRepository) FindLatest(ctx context.Context, productID string) ([]byte, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := CacheKey(productID)

	cached, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		return []byte(cached), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.Logger.Warn("Falha ao ler payload do cache, consultando o DB.", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
	}

	const selectSQL = `SELECT payload
                       FROM product_payloads
                       WHERE product_id = $1
                       ORDER BY created_at DESC
                       LIMIT 1`

	var payload []byte
	err = r.DB.QueryRowContext(ctxTimeout, selectSQL, productID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Nenhum payload armazenado para o produto %s.", productID))
	}
	if err != nil {
		return nil, apperror.NewDBError("falha ao buscar payload do produto", err)
	}

	r.cachePayload(ctxTimeout, productID, payload)

	return payload, nil
}

func (r *ProductRepository) cachePayload(ctx context.Context, productID string, payload []byte) {
	if err := r.Cache.Set(ctx, CacheKey(productID), payload, r.CacheTTL); err != nil {
		r.Logger.Warn("Falha ao gravar payload no cache.", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
	}
}
