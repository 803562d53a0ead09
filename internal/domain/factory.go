package domain

// Factory cria entidades vazias, prontas para serem preenchidas pelos setters.
// Nenhuma validação é feita aqui.
type Factory struct{}

// NewFactory devolve a fábrica de entidades.
func NewFactory() Factory { return Factory{} }

func (Factory) NewManufacturer() *Manufacturer {
	return &Manufacturer{}
}

func (Factory) NewProduct() *Product {
	return &Product{sku: NewSkuCollection()}
}

func (Factory) NewSku() *Sku {
	return &Sku{ean: []string{}}
}
