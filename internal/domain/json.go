package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperror "submarinosdk/internal/errors"
)

// Estruturas do formato de troca com a API do marketplace.
// Nenhum campo usa omitempty: o esquema é fixo e todas as chaves são sempre emitidas.

type productJSON struct {
	ID           Scalar           `json:"id"`
	Name         string           `json:"name"`
	DeliveryType DeliveryType     `json:"deliveryType"`
	Nbm          Nbm              `json:"nbm"`
	Manufacturer manufacturerJSON `json:"manufacturer"`
	Sku          []skuJSON        `json:"sku"`
}

type manufacturerJSON struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	WarrantyTime Scalar `json:"warrantyTime"`
}

type skuJSON struct {
	ID            Scalar   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Ean           []string `json:"ean"`
	Height        float64  `json:"height"`
	Width         float64  `json:"width"`
	Length        float64  `json:"length"`
	Weight        float64  `json:"weight"`
	StockQuantity int      `json:"stockQuantity"`
	Enable        bool     `json:"enable"`
	Price         Price    `json:"price"`
}

// ToJSON serializa o produto no formato de troca. Ver EncodeProduct.
func (p *Product) ToJSON() ([]byte, error) {
	return EncodeProduct(p)
}

// EncodeProduct serializa o agregado completo (fabricante e SKUs, na ordem da coleção).
// Falha com MissingRequiredFieldError se o produto não tiver fabricante.
func EncodeProduct(p *Product) ([]byte, error) {
	if p == nil {
		return nil, apperror.NewMissingRequiredFieldError("product", "product")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := productJSON{
		ID:           p.id,
		Name:         p.name,
		DeliveryType: p.deliveryType,
		Nbm:          p.nbm,
		Manufacturer: manufacturerJSON{
			Name:         p.manufacturer.name,
			Model:        p.manufacturer.model,
			WarrantyTime: p.manufacturer.warrantyTime,
		},
		Sku: make([]skuJSON, 0, p.Sku().Len()),
	}

	for _, s := range p.Sku().Items() {
		ean := s.ean
		if ean == nil {
			ean = []string{}
		}
		out.Sku = append(out.Sku, skuJSON{
			ID:            s.id,
			Name:          s.name,
			Description:   s.description,
			Ean:           ean,
			Height:        s.height,
			Width:         s.width,
			Length:        s.length,
			Weight:        s.weight,
			StockQuantity: s.stockQuantity,
			Enable:        s.enable,
			Price:         s.price,
		})
	}

	return json.Marshal(out)
}

// DecodeProduct reconstrói o agregado a partir de um payload de troca.
//
// Chaves desconhecidas são ignoradas. A ausência de id, name, manufacturer, sku
// (ou do id de um SKU) e chaves com formato errado resultam em
// MalformedPayloadError; nesse caso nenhum agregado parcial é devolvido.
func DecodeProduct(data []byte) (*Product, error) {
	root, err := parseObject("", data)
	if err != nil {
		return nil, err
	}

	f := NewFactory()
	product := f.NewProduct()

	var (
		id           Scalar
		name         string
		deliveryType string
	)
	if err := root.required("id", &id, "um número ou texto"); err != nil {
		return nil, err
	}
	if err := root.required("name", &name, "um texto"); err != nil {
		return nil, err
	}
	if err := root.optional("deliveryType", &deliveryType, "um texto"); err != nil {
		return nil, err
	}
	product.SetID(id).SetName(name).SetDeliveryType(DeliveryType(deliveryType))

	nbm, err := decodeNbm(root)
	if err != nil {
		return nil, err
	}
	product.SetNbm(nbm)

	manufacturer, err := decodeManufacturer(root, f)
	if err != nil {
		return nil, err
	}
	product.SetManufacturer(manufacturer)

	var items []json.RawMessage
	if err := root.required("sku", &items, "um array"); err != nil {
		return nil, err
	}
	for i, raw := range items {
		sku, err := decodeSku(skuKey(i), raw, f)
		if err != nil {
			return nil, err
		}
		product.Sku().Add(sku)
	}

	return product, nil
}

func decodeNbm(root object) (Nbm, error) {
	var nbm Nbm
	obj, ok, err := root.object("nbm", false)
	if err != nil || !ok {
		return nbm, err
	}
	if err := obj.optional("number", &nbm.Number, "um texto"); err != nil {
		return nbm, err
	}
	if err := obj.optional("origin", &nbm.Origin, "um texto"); err != nil {
		return nbm, err
	}
	return nbm, nil
}

func decodeManufacturer(root object, f Factory) (*Manufacturer, error) {
	obj, _, err := root.object("manufacturer", true)
	if err != nil {
		return nil, err
	}

	var (
		name, model  string
		warrantyTime Scalar
	)
	if err := obj.optional("name", &name, "um texto"); err != nil {
		return nil, err
	}
	if err := obj.optional("model", &model, "um texto"); err != nil {
		return nil, err
	}
	if err := obj.optional("warrantyTime", &warrantyTime, "um número ou texto"); err != nil {
		return nil, err
	}

	return f.NewManufacturer().SetName(name).SetModel(model).SetWarrantyTime(warrantyTime), nil
}

func decodeSku(path string, data []byte, f Factory) (*Sku, error) {
	obj, err := parseObject(path, data)
	if err != nil {
		return nil, err
	}

	var w skuJSON
	if err := obj.required("id", &w.ID, "um número ou texto"); err != nil {
		return nil, err
	}
	fields := []struct {
		key      string
		dst      any
		expected string
	}{
		{"name", &w.Name, "um texto"},
		{"description", &w.Description, "um texto"},
		{"height", &w.Height, "um número"},
		{"width", &w.Width, "um número"},
		{"length", &w.Length, "um número"},
		{"weight", &w.Weight, "um número"},
		{"stockQuantity", &w.StockQuantity, "um número inteiro"},
		{"enable", &w.Enable, "um booleano"},
	}
	for _, fld := range fields {
		if err := obj.optional(fld.key, fld.dst, fld.expected); err != nil {
			return nil, err
		}
	}

	ean, err := decodeEan(obj)
	if err != nil {
		return nil, err
	}

	price, err := decodePrice(obj)
	if err != nil {
		return nil, err
	}

	sku := f.NewSku().
		SetID(w.ID).
		SetName(w.Name).
		SetDescription(w.Description).
		SetEan(ean).
		SetHeight(w.Height).
		SetWidth(w.Width).
		SetLength(w.Length).
		SetWeight(w.Weight).
		SetStockQuantity(w.StockQuantity).
		SetEnable(w.Enable).
		SetPrice(price)
	return sku, nil
}

// decodeEan lê a lista de códigos de barras; elementos null são rejeitados.
func decodeEan(sku object) ([]string, error) {
	var items []*string
	if err := sku.optional("ean", &items, "um array de textos"); err != nil {
		return nil, err
	}
	ean := make([]string, 0, len(items))
	for j, item := range items {
		if item == nil {
			return nil, apperror.NewInvalidKeyError(fmt.Sprintf("%s[%d]", sku.key("ean"), j), "um texto", nil)
		}
		ean = append(ean, *item)
	}
	return ean, nil
}

func decodePrice(sku object) (Price, error) {
	var price Price
	obj, ok, err := sku.object("price", false)
	if err != nil || !ok {
		return price, err
	}
	if err := obj.optional("sellPrice", &price.SellPrice, "um número"); err != nil {
		return price, err
	}
	if err := obj.optional("listPrice", &price.ListPrice, "um número"); err != nil {
		return price, err
	}
	return price, nil
}

func skuKey(i int) string {
	return fmt.Sprintf("sku[%d]", i)
}

// object é um objeto JSON ainda não decodificado, com o caminho usado nas mensagens de erro.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func parseObject(path string, data []byte) (object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return object{}, &apperror.MalformedPayloadError{Key: path, Reason: "deveria ser um objeto JSON", Err: err}
	}
	if fields == nil {
		return object{}, &apperror.MalformedPayloadError{Key: path, Reason: "deveria ser um objeto JSON, recebido null"}
	}
	return object{path: path, fields: fields}, nil
}

func (o object) key(k string) string {
	if o.path == "" {
		return k
	}
	return o.path + "." + k
}

func (o object) lookup(k string) (json.RawMessage, bool) {
	raw, ok := o.fields[k]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

func (o object) required(k string, dst any, expected string) error {
	raw, ok := o.lookup(k)
	if !ok {
		return apperror.NewMissingKeyError(o.key(k))
	}
	return o.decode(k, raw, dst, expected)
}

func (o object) optional(k string, dst any, expected string) error {
	raw, ok := o.lookup(k)
	if !ok {
		return nil
	}
	return o.decode(k, raw, dst, expected)
}

func (o object) decode(k string, raw json.RawMessage, dst any, expected string) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperror.NewInvalidKeyError(o.key(k), expected, err)
	}
	return nil
}

// object devolve a chave k como objeto aninhado; ok é false quando a chave
// opcional está ausente.
func (o object) object(k string, required bool) (object, bool, error) {
	raw, ok := o.lookup(k)
	if !ok {
		if required {
			return object{}, false, apperror.NewMissingKeyError(o.key(k))
		}
		return object{}, false, nil
	}
	nested, err := parseObject(o.key(k), raw)
	if err != nil {
		return object{}, false, err
	}
	return nested, true, nil
}
