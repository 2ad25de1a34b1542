package order

// Canonical field names. The extractor keys its output map with these and the
// payload codec serializes them in exactly this order.
const (
	FieldCustomerName   = "customer_name"
	FieldPhone          = "phone"
	FieldLocation       = "location"
	FieldAddress        = "address"
	FieldTotalAmount    = "total_amount"
	FieldPaymentStatus  = "payment_status"
	FieldShippingMethod = "shipping_method"
)

// Fields is the complete set of order fields lifted from one chat message.
// It only ever exists fully populated (optional fields may be empty strings);
// extraction is all-or-nothing and values are verbatim apart from trimming.
type Fields struct {
	CustomerName   string
	Phone          string
	Location       string
	Address        string
	TotalAmount    string // raw currency text, e.g. "25.00" or "12,000"
	PaymentStatus  string
	ShippingMethod string
}

// FieldsFromMap builds Fields from an extractor result keyed by the canonical
// field names.
func FieldsFromMap(m map[string]string) Fields {
	return Fields{
		CustomerName:   m[FieldCustomerName],
		Phone:          m[FieldPhone],
		Location:       m[FieldLocation],
		Address:        m[FieldAddress],
		TotalAmount:    m[FieldTotalAmount],
		PaymentStatus:  m[FieldPaymentStatus],
		ShippingMethod: m[FieldShippingMethod],
	}
}

// values returns the field values in payload order.
func (f Fields) values() []string {
	return []string{
		f.CustomerName,
		f.Phone,
		f.Location,
		f.Address,
		f.TotalAmount,
		f.PaymentStatus,
		f.ShippingMethod,
	}
}

func fieldsFromValues(vs []string) Fields {
	return Fields{
		CustomerName:   vs[0],
		Phone:          vs[1],
		Location:       vs[2],
		Address:        vs[3],
		TotalAmount:    vs[4],
		PaymentStatus:  vs[5],
		ShippingMethod: vs[6],
	}
}
