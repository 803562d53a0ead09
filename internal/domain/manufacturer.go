package domain

// Manufacturer descreve o fabricante de um produto. Não tem identidade própria:
// pertence a exatamente um Product e pode ser copiado livremente.
type Manufacturer struct {
	name         string
	model        string
	warrantyTime Scalar
}

func (m *Manufacturer) Name() string { return m.name }

func (m *Manufacturer) SetName(name string) *Manufacturer {
	m.name = name
	return m
}

func (m *Manufacturer) Model() string { return m.model }

func (m *Manufacturer) SetModel(model string) *Manufacturer {
	m.model = model
	return m
}

// WarrantyTime devolve o prazo de garantia. A unidade é definida pelo contrato da API.
func (m *Manufacturer) WarrantyTime() Scalar { return m.warrantyTime }

func (m *Manufacturer) SetWarrantyTime(warrantyTime Scalar) *Manufacturer {
	m.warrantyTime = warrantyTime
	return m
}

// Equal compara campo a campo. Dois nil são iguais.
func (m *Manufacturer) Equal(other *Manufacturer) bool {
	if m == nil || other == nil {
		return m == other
	}
	return *m == *other
}
