package productservice

import (
	"context"
	"fmt"

	"submarinosdk/internal/domain"
	apperror "submarinosdk/internal/errors"
	"submarinosdk/internal/pkg/logger"
)

// ProductRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência (DB, Cache).
type ProductRepository interface {
	Save(ctx context.Context, productID string, payload []byte) (domain.Snapshot, error)
	FindLatest(ctx context.Context, productID string) ([]byte, error)
}

// Service prepara payloads de produto para o transporte do marketplace:
// serializa o agregado, guarda o resultado e reconstrói agregados a partir
// do que foi guardado.
type Service struct {
	repo   ProductRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo ProductRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Stage serializa o produto e armazena o payload resultante.
// Um produto sem fabricante falha com MissingRequiredFieldError antes de qualquer I/O.
func (s *Service) Stage(ctx context.Context, product *domain.Product) (domain.Snapshot, error) {
	payload, err := domain.EncodeProduct(product)
	if err != nil {
		return domain.Snapshot{}, err
	}

	// 1 e "1" identificam o mesmo produto armazenado.
	productID := product.ID().String()
	if productID == "" {
		return domain.Snapshot{}, apperror.NewValidationError("O id do produto é obrigatório para armazenar o payload.")
	}

	snapshot, err := s.repo.Save(ctx, productID, payload)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("falha ao salvar payload no repositório: %w", err)
	}

	s.logger.Info("Payload de produto armazenado.", map[string]interface{}{
		"product_id":  productID,
		"snapshot_id": snapshot.ID,
		"skus":        product.Sku().Len(),
	})

	return snapshot, nil
}

// StagePayload aceita um payload vindo de fora (e.g. resposta do transporte),
// valida sua estrutura e armazena a forma canônica.
func (s *Service) StagePayload(ctx context.Context, payload []byte) (domain.Snapshot, error) {
	product, err := domain.DecodeProduct(payload)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return s.Stage(ctx, product)
}

// Get reconstrói o agregado a partir do último payload armazenado.
func (s *Service) Get(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, apperror.NewValidationError("ID do produto é obrigatório.")
	}

	payload, err := s.repo.FindLatest(ctx, productID)
	if err != nil {
		return nil, err
	}

	product, err := domain.DecodeProduct(payload)
	if err != nil {
		// Um payload armazenado sempre passou pelo encoder; falhar aqui indica dado corrompido.
		s.logger.Error("Payload armazenado não pôde ser decodificado.", err)
		return nil, apperror.NewInternalError(fmt.Sprintf("payload do produto %s está corrompido", productID), err)
	}

	return product, nil
}

// Normalize decodifica e serializa de novo o payload, sem I/O.
// O resultado traz todas as chaves do esquema e descarta as desconhecidas.
func (s *Service) Normalize(payload []byte) ([]byte, error) {
	product, err := domain.DecodeProduct(payload)
	if err != nil {
		return nil, err
	}
	return domain.EncodeProduct(product)
}
