package label

import (
	"fmt"

	"github.com/khmershop/labelbot/constants"
	"github.com/khmershop/labelbot/internal/common"
	"github.com/khmershop/labelbot/internal/order"
)

// Line is one printed row on the label: a semantic marker glyph and the
// field value.
type Line struct {
	Glyph string
	Text  string
}

// Stack lays the fields out top to bottom and returns the index of the line
// after which the separator rule is drawn (identity block above, payment and
// logistics below). The address line is dropped entirely when the value is
// empty or the upstream "not specified" placeholder, and the stack closes up
// so no gap is printed.
func Stack(f order.Fields) ([]Line, int) {
	lines := []Line{
		{Glyph: "👤", Text: f.CustomerName},
		{Glyph: "📞", Text: f.Phone},
		{Glyph: "📍", Text: f.Location},
	}
	if PrintableAddress(f.Address) {
		lines = append(lines, Line{Glyph: "🏠", Text: f.Address})
	}
	ruleAfter := len(lines) - 1
	lines = append(lines,
		Line{Glyph: "💰", Text: "$" + f.TotalAmount},
		Line{Glyph: "🚚", Text: f.ShippingMethod},
		Line{Glyph: "💳", Text: f.PaymentStatus},
	)
	return lines, ruleAfter
}

// PrintableAddress reports whether the address value warrants its own line.
func PrintableAddress(addr string) bool {
	return addr != "" && addr != constants.AddressPlaceholder
}

// checkComplete guards against rendering with blank critical fields, which
// the all-or-nothing extraction contract should make impossible.
func checkComplete(f order.Fields) error {
	required := map[string]string{
		order.FieldCustomerName:   f.CustomerName,
		order.FieldPhone:          f.Phone,
		order.FieldLocation:       f.Location,
		order.FieldTotalAmount:    f.TotalAmount,
		order.FieldPaymentStatus:  f.PaymentStatus,
		order.FieldShippingMethod: f.ShippingMethod,
	}
	for name, v := range required {
		if v == "" {
			return common.NewAppError("RENDER_ERROR", fmt.Sprintf("required field %s is blank", name), nil)
		}
	}
	return nil
}
