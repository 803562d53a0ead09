package domain

import (
	"encoding/json"
	"time"
)

// Snapshot é um payload de produto já serializado e armazenado, pronto para
// ser entregue ao transporte do marketplace.
// @Description Payload de produto preparado para envio ao marketplace.
type Snapshot struct {
	ID        string          `json:"id" example:"3c95b8c8-1a2b-4c3d-9e8f-0a1b2c3d4e5f"`
	ProductID string          `json:"product_id" example:"1"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}
