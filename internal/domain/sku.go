package domain

import "slices"

// Sku é uma variação vendável de um Product (cor, voltagem, tamanho...).
// Os setters armazenam o valor recebido sem validar nem normalizar:
// estoque negativo ou preço "de" menor que o de venda passam adiante.
type Sku struct {
	id            Scalar
	name          string
	description   string
	ean           []string
	height        float64
	width         float64
	length        float64
	weight        float64
	stockQuantity int
	enable        bool
	price         Price
}

func (s *Sku) ID() Scalar { return s.id }

func (s *Sku) SetID(id Scalar) *Sku {
	s.id = id
	return s
}

func (s *Sku) Name() string { return s.name }

func (s *Sku) SetName(name string) *Sku {
	s.name = name
	return s
}

func (s *Sku) Description() string { return s.description }

func (s *Sku) SetDescription(description string) *Sku {
	s.description = description
	return s
}

// Ean devolve uma cópia da lista de códigos de barras, na ordem em que foram definidos.
func (s *Sku) Ean() []string { return slices.Clone(s.ean) }

// SetEan substitui a lista de códigos de barras. A ordem é significativa.
func (s *Sku) SetEan(ean []string) *Sku {
	s.ean = slices.Clone(ean)
	if s.ean == nil {
		s.ean = []string{}
	}
	return s
}

// AddEan acrescenta um código de barras ao final da lista.
func (s *Sku) AddEan(ean string) *Sku {
	s.ean = append(s.ean, ean)
	return s
}

func (s *Sku) Height() float64 { return s.height }

func (s *Sku) SetHeight(height float64) *Sku {
	s.height = height
	return s
}

func (s *Sku) Width() float64 { return s.width }

func (s *Sku) SetWidth(width float64) *Sku {
	s.width = width
	return s
}

func (s *Sku) Length() float64 { return s.length }

func (s *Sku) SetLength(length float64) *Sku {
	s.length = length
	return s
}

func (s *Sku) Weight() float64 { return s.weight }

func (s *Sku) SetWeight(weight float64) *Sku {
	s.weight = weight
	return s
}

func (s *Sku) StockQuantity() int { return s.stockQuantity }

func (s *Sku) SetStockQuantity(quantity int) *Sku {
	s.stockQuantity = quantity
	return s
}

func (s *Sku) Enable() bool { return s.enable }

func (s *Sku) SetEnable(enable bool) *Sku {
	s.enable = enable
	return s
}

func (s *Sku) Price() Price { return s.price }

func (s *Sku) SetPrice(price Price) *Sku {
	s.price = price
	return s
}

// Equal compara campo a campo; EANs precisam estar na mesma ordem.
func (s *Sku) Equal(other *Sku) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.id == other.id &&
		s.name == other.name &&
		s.description == other.description &&
		slices.Equal(s.ean, other.ean) &&
		s.height == other.height &&
		s.width == other.width &&
		s.length == other.length &&
		s.weight == other.weight &&
		s.stockQuantity == other.stockQuantity &&
		s.enable == other.enable &&
		s.price.Equal(other.price)
}
