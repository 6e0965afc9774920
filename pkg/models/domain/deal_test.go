package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "storeId": "store-17",
  "storeName": "Corner Market",
  "date": "20241101",
  "deals": [
    {
      "productName": "Boneless Chicken Breast",
      "sizeText": "per lb",
      "unitPrice": 5.99,
      "promoPrice": 3.99,
      "promoEnds": "2024-11-07",
      "sourceUrl": "https://example.com/chicken",
      "tags": ["meat", "fresh"]
    },
    {
      "productName": "Paper Towels",
      "unitPrice": null
    }
  ]
}`

func TestDealsDocument_UnmarshalJSON(t *testing.T) {
	var doc DealsDocument
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &doc))

	assert.Equal(t, "20241101", doc.Date)
	require.Len(t, doc.Deals, 2)

	chicken := doc.Deals[0]
	assert.Equal(t, "Boneless Chicken Breast", chicken.ProductName)
	require.NotNil(t, chicken.UnitPrice)
	assert.Equal(t, 5.99, *chicken.UnitPrice)
	assert.Equal(t, 3.99, *chicken.PromoPrice)
	assert.Equal(t, "2024-11-07", chicken.PromoEnds)
	assert.JSONEq(t, `"per lb"`, string(chicken.Extra["sizeText"]))
	assert.JSONEq(t, `["meat","fresh"]`, string(chicken.Extra["tags"]))
	assert.NotContains(t, chicken.Extra, "productName")

	towels := doc.Deals[1]
	assert.Nil(t, towels.UnitPrice)
	assert.False(t, towels.HasUnitPrice())
	assert.Empty(t, towels.PromoEnds)

	assert.JSONEq(t, `"Corner Market"`, string(doc.Extra["storeName"]))
	assert.NotContains(t, doc.Extra, "deals")
}

func TestDealsDocument_MarshalJSON_PreservesExtraFields(t *testing.T) {
	var doc DealsDocument
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &doc))

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	expected := `{
		"storeId": "store-17",
		"storeName": "Corner Market",
		"date": "20241101",
		"deals": [
			{
				"productName": "Boneless Chicken Breast",
				"sizeText": "per lb",
				"unitPrice": 5.99,
				"promoPrice": 3.99,
				"promoEnds": "2024-11-07",
				"sourceUrl": "https://example.com/chicken",
				"tags": ["meat", "fresh"]
			},
			{"productName": "Paper Towels", "unitPrice": null}
		]
	}`
	assert.JSONEq(t, expected, string(out))
}

func TestDeal_RoundTrip_KeepsNullAndEmptyFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "null prices", input: `{"productName":"Salt & Pepper","unitPrice":null,"promoPrice":null}`},
		{name: "empty name", input: `{"productName":"","unitPrice":1.5,"sizeText":"1 lb"}`},
		{name: "all blank", input: `{"productName":"","unitPrice":null,"promoPrice":null,"promoEnds":null,"sizeText":"1 lb"}`},
		{name: "empty promo end", input: `{"productName":"Eggs","promoEnds":""}`},
		{name: "zero price", input: `{"productName":"Free Sample","unitPrice":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Deal
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))

			out, err := json.Marshal(d.Clone())

			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestDeal_SetValuesReplaceNullFields(t *testing.T) {
	// Given
	var d Deal
	require.NoError(t, json.Unmarshal([]byte(`{"productName":"","unitPrice":null,"promoPrice":null,"promoEnds":null}`), &d))
	assert.False(t, d.HasUnitPrice())
	assert.Empty(t, d.PromoEnds)

	// When
	d.SetPromoPrice(1.25)
	d.PromoEnds = "2024-11-06"
	out, err := json.Marshal(d)

	// Then
	require.NoError(t, err)
	assert.JSONEq(t, `{"productName":"","unitPrice":null,"promoPrice":1.25,"promoEnds":"2024-11-06"}`, string(out))
}

func TestDealsDocument_MarshalJSON_EmptyDealsIsArray(t *testing.T) {
	out, err := json.Marshal(DealsDocument{Date: "20241101"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"20241101","deals":[]}`, string(out))
}

func TestDealsDocument_UnmarshalJSON_RejectsWrongTypes(t *testing.T) {
	tests := map[string]string{
		"deals not a list":   `{"date":"20241101","deals":{}}`,
		"price not a number": `{"deals":[{"productName":"x","unitPrice":"1.99"}]}`,
		"not an object":      `[1,2,3]`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var doc DealsDocument
			assert.Error(t, json.Unmarshal([]byte(input), &doc))
		})
	}
}

func TestDealsDocument_Clone_IsDeep(t *testing.T) {
	var doc DealsDocument
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &doc))

	clone := doc.Clone()
	*clone.Deals[0].UnitPrice = 100
	clone.Deals[0].ProductName = "changed"
	clone.Deals[0].Extra["sizeText"][1] = 'X'
	clone.Extra["storeId"][1] = 'X'
	clone.Deals = append(clone.Deals, Deal{ProductName: "extra"})

	assert.Equal(t, 5.99, *doc.Deals[0].UnitPrice)
	assert.Equal(t, "Boneless Chicken Breast", doc.Deals[0].ProductName)
	assert.JSONEq(t, `"per lb"`, string(doc.Deals[0].Extra["sizeText"]))
	assert.JSONEq(t, `"store-17"`, string(doc.Extra["storeId"]))
	assert.Len(t, doc.Deals, 2)
}

func TestDealsDocument_WithDeals(t *testing.T) {
	doc := &DealsDocument{
		Date:  "20240101",
		Extra: map[string]json.RawMessage{"storeName": json.RawMessage(`"A"`)},
	}

	out := doc.WithDeals("20241101", nil)

	assert.Equal(t, "20241101", out.Date)
	assert.NotNil(t, out.Deals)
	assert.Empty(t, out.Deals)
	out.Extra["storeName"][1] = 'B'
	assert.JSONEq(t, `"A"`, string(doc.Extra["storeName"]))
	assert.Equal(t, "20240101", doc.Date)
}

func TestDeal_SetPrices_DoNotShareStorage(t *testing.T) {
	var d Deal
	p := 2.5
	d.SetUnitPrice(p)
	d.SetPromoPrice(p)
	p = 9

	assert.Equal(t, 2.5, *d.UnitPrice)
	assert.Equal(t, 2.5, *d.PromoPrice)
	assert.True(t, d.HasUnitPrice())
	assert.True(t, d.HasPromoPrice())
}
