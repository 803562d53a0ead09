package domain

import apperror "submarinosdk/internal/errors"

// Product é a raiz do agregado enviado ao catálogo do marketplace:
// identificação, classificação fiscal, um Manufacturer e a coleção de SKUs.
type Product struct {
	id           Scalar
	name         string
	deliveryType DeliveryType
	nbm          Nbm
	manufacturer *Manufacturer
	sku          *SkuCollection
}

func (p *Product) ID() Scalar { return p.id }

func (p *Product) SetID(id Scalar) *Product {
	p.id = id
	return p
}

func (p *Product) Name() string { return p.name }

func (p *Product) SetName(name string) *Product {
	p.name = name
	return p
}

func (p *Product) DeliveryType() DeliveryType { return p.deliveryType }

func (p *Product) SetDeliveryType(deliveryType DeliveryType) *Product {
	p.deliveryType = deliveryType
	return p
}

func (p *Product) Nbm() Nbm { return p.nbm }

func (p *Product) SetNbm(nbm Nbm) *Product {
	p.nbm = nbm
	return p
}

// Manufacturer devolve o fabricante, ou nil se SetManufacturer nunca foi chamado.
func (p *Product) Manufacturer() *Manufacturer { return p.manufacturer }

func (p *Product) SetManufacturer(manufacturer *Manufacturer) *Product {
	p.manufacturer = manufacturer
	return p
}

// Sku devolve a coleção de SKUs. Sempre a mesma instância, com o mesmo cursor.
func (p *Product) Sku() *SkuCollection {
	if p.sku == nil {
		p.sku = NewSkuCollection()
	}
	return p.sku
}

// SetSku substitui a coleção inteira.
func (p *Product) SetSku(collection *SkuCollection) *Product {
	p.sku = collection
	return p
}

// Validate verifica os campos que o agregado exige antes de ser usado.
func (p *Product) Validate() error {
	if p.manufacturer == nil {
		return apperror.NewMissingRequiredFieldError("product", "manufacturer")
	}
	for i, s := range p.Sku().Items() {
		if s == nil {
			return apperror.NewMissingRequiredFieldError("product", skuKey(i))
		}
	}
	return nil
}

// Equal compara a estrutura completa dos dois agregados, incluindo a ordem dos SKUs.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id == other.id &&
		p.name == other.name &&
		p.deliveryType == other.deliveryType &&
		p.nbm == other.nbm &&
		p.manufacturer.Equal(other.manufacturer) &&
		p.Sku().Equal(other.Sku())
}
