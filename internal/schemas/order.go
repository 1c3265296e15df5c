package schemas

import v "github.com/dmitrymomot/schemakit/pkg/validator"

// Currencies accepted by the order schema.
var Currencies = []string{"EUR", "GBP", "USD"}

func orderItem() *v.DictionaryValidator {
	return v.Dictionary(v.Schema{
		"sku":      v.Text().Trim().Upper().Required().Pattern(`^[A-Z0-9-]{3,20}$`, "must be a valid SKU"),
		"quantity": v.Integer().Required().Positive().Max(1000),
		"price":    v.Float().Required().Min(0),
	})
}

func pickup() *v.DictionaryValidator {
	return v.Dictionary(v.Schema{
		"type":  v.Text().Required().OneOf([]string{"pickup"}),
		"point": v.Text().Required().MinLength(1),
	}).Strict()
}

func delivery() *v.DictionaryValidator {
	return v.Dictionary(v.Schema{
		"type":    v.Text().Required().OneOf([]string{"address"}),
		"line1":   v.Text().Required().MinLength(1),
		"city":    v.Text().Required().MinLength(1),
		"country": v.Text().Required().Length(2),
	}).Strict()
}

// Order validates a purchase order. Every descendant coerces its input, so
// string-typed numbers from form posts are accepted.
func Order() *v.DictionaryValidator {
	return v.Dictionary(v.Schema{
		"id":        v.Text().Required().UUID(),
		"placed_at": v.Text().Required().DateTime(),
		"currency":  v.Text().Trim().Upper().NullifyEmpty().Default("USD").OneOf(Currencies),
		"items": v.List().
			Required("order must contain items").
			MinItems(1, "order must contain items").
			Items(orderItem()),
		"discount": v.Float().Default(0).Between(0, 100),
		"shipping": v.AnyOf("must be a pickup point or a delivery address", pickup(), delivery()).
			Required(),
		"notes": v.Text().
			Trim().
			NullifyEmpty().
			MaxLength(500).
			SatisfiesNone("must not contain links",
				v.Text().Contains("http://"),
				v.Text().Contains("https://"),
			),
	}).CoerceAll()
}
