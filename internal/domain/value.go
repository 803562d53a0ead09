package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Scalar guarda um valor que a API do marketplace aceita tanto como número
// quanto como texto (ids, prazo de garantia). O formato de origem é preservado
// para que a serialização devolva exatamente o que foi recebido.
type Scalar struct {
	text    string
	numeric bool
}

// Int cria um Scalar numérico.
func Int(n int64) Scalar {
	return Scalar{text: strconv.FormatInt(n, 10), numeric: true}
}

// Text cria um Scalar textual. Texto vazio equivale ao valor zero.
func Text(s string) Scalar {
	return Scalar{text: s}
}

// String devolve a representação textual do valor.
func (s Scalar) String() string { return s.text }

// IsNumber informa se o valor é serializado como número JSON.
func (s Scalar) IsNumber() bool { return s.numeric }

// IsZero informa se o valor nunca foi definido.
func (s Scalar) IsZero() bool { return s.text == "" }

// Int64 converte o valor para inteiro, seja ele numérico ou textual.
func (s Scalar) Int64() (int64, error) {
	return strconv.ParseInt(s.text, 10, 64)
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.numeric && s.text != "" {
		return []byte(s.text), nil
	}
	return json.Marshal(s.text)
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = Scalar{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Text(text)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("esperado número ou texto: %w", err)
	}
	*s = Scalar{text: n.String(), numeric: true}
	return nil
}

// DeliveryType é o código de modalidade de entrega definido pelo marketplace.
// O conjunto de valores é opaco para o SDK.
type DeliveryType string

// Nbm é a classificação fiscal (Nomenclatura Brasileira de Mercadorias) do produto.
type Nbm struct {
	Number string `json:"number"`
	Origin string `json:"origin"`
}

// Price agrupa o preço de venda e o preço "de" (lista) de um SKU.
// Nenhuma relação entre os dois é validada aqui (regra de negócio do marketplace).
type Price struct {
	SellPrice decimal.Decimal
	ListPrice decimal.Decimal
}

// NewPrice é um atalho para preços com valores float.
func NewPrice(sellPrice, listPrice float64) Price {
	return Price{
		SellPrice: decimal.NewFromFloat(sellPrice),
		ListPrice: decimal.NewFromFloat(listPrice),
	}
}

// Equal compara os valores numéricos, ignorando a escala interna do decimal.
func (p Price) Equal(other Price) bool {
	return p.SellPrice.Equal(other.SellPrice) && p.ListPrice.Equal(other.ListPrice)
}

type priceJSON struct {
	SellPrice json.Number `json:"sellPrice"`
	ListPrice json.Number `json:"listPrice"`
}

// MarshalJSON emite os preços como números JSON, e não como strings
// (padrão do shopspring/decimal).
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceJSON{
		SellPrice: json.Number(p.SellPrice.String()),
		ListPrice: json.Number(p.ListPrice.String()),
	})
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var raw struct {
		SellPrice decimal.NullDecimal `json:"sellPrice"`
		ListPrice decimal.NullDecimal `json:"listPrice"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Price{SellPrice: raw.SellPrice.Decimal, ListPrice: raw.ListPrice.Decimal}
	return nil
}
