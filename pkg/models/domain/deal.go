package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	fieldDate        = "date"
	fieldDeals       = "deals"
	fieldProductName = "productName"
	fieldUnitPrice   = "unitPrice"
	fieldPromoPrice  = "promoPrice"
	fieldPromoEnds   = "promoEnds"
)

// Deal is one product's promotional pricing record for a given date.
// Fields the generator does not interpret are kept in Extra and written back unchanged,
// and so are null or empty known fields until a value is set.
type Deal struct {
	ProductName string
	UnitPrice   *float64
	PromoPrice  *float64
	PromoEnds   string
	Extra       map[string]json.RawMessage
}

// HasUnitPrice reports whether the deal carries a non-zero regular price.
func (d *Deal) HasUnitPrice() bool {
	return d.UnitPrice != nil && *d.UnitPrice != 0
}

// HasPromoPrice reports whether the deal carries a non-zero promotional price.
func (d *Deal) HasPromoPrice() bool {
	return d.PromoPrice != nil && *d.PromoPrice != 0
}

// SetUnitPrice stores a copy of price, never sharing the pointer with the caller.
func (d *Deal) SetUnitPrice(price float64) {
	d.UnitPrice = &price
}

func (d *Deal) SetPromoPrice(price float64) {
	d.PromoPrice = &price
}

// Clone returns a deep copy of the deal.
func (d *Deal) Clone() Deal {
	out := Deal{
		ProductName: d.ProductName,
		PromoEnds:   d.PromoEnds,
		UnitPrice:   cloneFloat(d.UnitPrice),
		PromoPrice:  cloneFloat(d.PromoPrice),
		Extra:       cloneRaw(d.Extra),
	}
	return out
}

func (d *Deal) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode deal: %w", err)
	}

	if err := takeField(fields, fieldProductName, &d.ProductName); err != nil {
		return err
	}
	if err := takeField(fields, fieldUnitPrice, &d.UnitPrice); err != nil {
		return err
	}
	if err := takeField(fields, fieldPromoPrice, &d.PromoPrice); err != nil {
		return err
	}
	var promoEnds *string
	if err := takeField(fields, fieldPromoEnds, &promoEnds); err != nil {
		return err
	}
	if promoEnds != nil {
		d.PromoEnds = *promoEnds
	}

	d.Extra = fields
	return nil
}

func (d Deal) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.Extra)+4)
	for k, v := range d.Extra {
		fields[k] = v
	}

	if d.ProductName != "" {
		if err := putField(fields, fieldProductName, d.ProductName); err != nil {
			return nil, err
		}
	}
	if d.UnitPrice != nil {
		if err := putField(fields, fieldUnitPrice, *d.UnitPrice); err != nil {
			return nil, err
		}
	}
	if d.PromoPrice != nil {
		if err := putField(fields, fieldPromoPrice, *d.PromoPrice); err != nil {
			return nil, err
		}
	}
	if d.PromoEnds != "" {
		if err := putField(fields, fieldPromoEnds, d.PromoEnds); err != nil {
			return nil, err
		}
	}

	return encode(fields)
}

// DealsDocument is the top-level deals file: a date, its deals, and any store metadata.
type DealsDocument struct {
	Date  string
	Deals []Deal
	Extra map[string]json.RawMessage
}

// Clone returns a deep copy of the document, deals included.
func (doc *DealsDocument) Clone() *DealsDocument {
	out := &DealsDocument{
		Date:  doc.Date,
		Deals: make([]Deal, len(doc.Deals)),
		Extra: cloneRaw(doc.Extra),
	}
	for i := range doc.Deals {
		out.Deals[i] = doc.Deals[i].Clone()
	}
	return out
}

// WithDeals returns a copy of the document metadata stamped with date and carrying deals.
// The deals slice is used as-is; callers pass deals they already own.
func (doc *DealsDocument) WithDeals(date string, deals []Deal) *DealsDocument {
	if deals == nil {
		deals = []Deal{}
	}
	return &DealsDocument{
		Date:  date,
		Deals: deals,
		Extra: cloneRaw(doc.Extra),
	}
}

func (doc *DealsDocument) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode deals document: %w", err)
	}

	var date *string
	if err := takeField(fields, fieldDate, &date); err != nil {
		return err
	}
	if date != nil {
		doc.Date = *date
	}
	if err := takeField(fields, fieldDeals, &doc.Deals); err != nil {
		return err
	}

	doc.Extra = fields
	return nil
}

func (doc DealsDocument) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(doc.Extra)+2)
	for k, v := range doc.Extra {
		fields[k] = v
	}

	if err := putField(fields, fieldDate, doc.Date); err != nil {
		return nil, err
	}
	deals := doc.Deals
	if deals == nil {
		deals = []Deal{}
	}
	if err := putField(fields, fieldDeals, deals); err != nil {
		return nil, err
	}

	return encode(fields)
}

// takeField decodes fields[key] into dst and removes it from fields. Null values and
// empty strings are left in fields so they are written back exactly as read.
func takeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode field %q: %w", key, err)
	}
	if !isBlank(raw) {
		delete(fields, key)
	}
	return nil
}

func isBlank(raw json.RawMessage) bool {
	v := string(bytes.TrimSpace(raw))
	return v == "null" || v == `""`
}

func putField(fields map[string]json.RawMessage, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode field %q: %w", key, err)
	}
	fields[key] = raw
	return nil
}

// encode marshals v without HTML escaping so product names such as "Salt & Pepper"
// are written as-is.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneRaw(src map[string]json.RawMessage) map[string]json.RawMessage {
	if src == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(src))
	for k, v := range src {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}
