package domain

import "slices"

// SkuCollection é a lista ordenada de SKUs de um Product.
//
// A coleção mantém um único cursor interno compartilhado por Current e Next:
// Add não reposiciona o cursor, então quem intercala inserções e leituras
// enxerga sempre o mesmo estado. Não é segura para uso concorrente.
type SkuCollection struct {
	items  []*Sku
	cursor int
}

// NewSkuCollection cria uma coleção com os SKUs informados, na ordem dada.
func NewSkuCollection(skus ...*Sku) *SkuCollection {
	c := &SkuCollection{items: make([]*Sku, 0, len(skus))}
	for _, s := range skus {
		c.Add(s)
	}
	return c
}

// Add acrescenta o SKU ao final da coleção.
func (c *SkuCollection) Add(sku *Sku) *SkuCollection {
	c.items = append(c.items, sku)
	return c
}

// Current devolve o SKU na posição do cursor sem avançá-lo, ou nil se o
// cursor estiver fora da coleção.
func (c *SkuCollection) Current() *Sku {
	return c.Get(c.cursor)
}

// Next avança o cursor e devolve o SKU na nova posição (nil ao passar do fim).
func (c *SkuCollection) Next() *Sku {
	if c.cursor < len(c.items) {
		c.cursor++
	}
	return c.Current()
}

// First devolve o primeiro SKU sem alterar o cursor.
func (c *SkuCollection) First() *Sku {
	return c.Get(0)
}

// Rewind devolve o cursor para o início, permitindo percorrer a coleção de novo.
func (c *SkuCollection) Rewind() {
	c.cursor = 0
}

// Key devolve a posição atual do cursor.
func (c *SkuCollection) Key() int { return c.cursor }

// Valid informa se o cursor aponta para um elemento.
func (c *SkuCollection) Valid() bool { return c.cursor < len(c.items) }

// Get devolve o SKU na posição i, ou nil.
func (c *SkuCollection) Get(i int) *Sku {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

func (c *SkuCollection) Len() int { return len(c.items) }

// Items devolve uma cópia da fatia de SKUs; o cursor não é afetado.
func (c *SkuCollection) Items() []*Sku {
	return slices.Clone(c.items)
}

// Equal compara as duas coleções elemento a elemento, na ordem.
func (c *SkuCollection) Equal(other *SkuCollection) bool {
	return slices.EqualFunc(c.Items(), other.Items(), func(a, b *Sku) bool {
		return a.Equal(b)
	})
}
