package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"400"`
	Category string `json:"category" example:"MALFORMED_PAYLOAD"`
	Message  string `json:"message" example:"Payload malformado: chave \"manufacturer\" é obrigatória e está ausente"`
}
