package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/khmershop/labelbot/internal/common"
	"github.com/khmershop/labelbot/internal/order"
)

const orderMsg = "✅សូមបងពិនិត្យ\n" +
	"\n" +
	"👤 អតិថិជន: Sok Dara\n" +
	"📞 លេខទូរស័ព្ទ: 012345678\n" +
	"📍 ទីតាំង: Phnom Penh\n" +
	"🏠 អាសយដ្ឋាន: (មិនបានបញ្ជាក់)\n" +
	"💰 សរុបចុងក្រោយ: $25.00\n" +
	"🟥 មិនទាន់បង់\n" +
	"\n" +
	"🚚 វិធីសាស្រ្តដឹកជញ្ជូន: Moto\n"

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	ex, err := NewExtractor(DefaultTemplate(), nil)
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return ex
}

func TestExtract_NoHeaderIsIgnorable(t *testing.T) {
	ex := newTestExtractor(t)

	inputs := []string{
		"",
		"hello there",
		"👤 អតិថិជន: Sok Dara\n📞 លេខទូរស័ព្ទ: 012345678\n",
	}
	for _, in := range inputs {
		_, err := ex.Extract(in)
		if !errors.Is(err, common.ErrIgnorableInput) {
			t.Errorf("Extract(%q) err = %v, want ErrIgnorableInput", in, err)
		}
	}
}

func TestExtract_CompleteMessage(t *testing.T) {
	ex := newTestExtractor(t)

	got, err := ex.Extract(orderMsg)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := map[string]string{
		order.FieldCustomerName:   "Sok Dara",
		order.FieldPhone:          "012345678",
		order.FieldLocation:       "Phnom Penh",
		order.FieldAddress:        "(មិនបានបញ្ជាក់)",
		order.FieldTotalAmount:    "25.00",
		order.FieldPaymentStatus:  "🟥 មិនទាន់បង់",
		order.FieldShippingMethod: "Moto",
	}
	for name, wv := range want {
		if got[name] != wv {
			t.Errorf("field %s = %q, want %q", name, got[name], wv)
		}
	}
	if len(got) != len(want) {
		t.Errorf("got %d fields, want %d", len(got), len(want))
	}
}

func TestExtract_MissingRequiredFieldIsMalformed(t *testing.T) {
	ex := newTestExtractor(t)

	removed := map[string]string{
		"customer_name":   "👤 អតិថិជន: Sok Dara\n",
		"phone":           "📞 លេខទូរស័ព្ទ: 012345678\n",
		"location":        "📍 ទីតាំង: Phnom Penh\n",
		"total_amount":    "💰 សរុបចុងក្រោយ: $25.00\n",
		"payment_status":  "🟥 មិនទាន់បង់\n",
		"shipping_method": "🚚 វិធីសាស្រ្តដឹកជញ្ជូន: Moto\n",
	}
	for name, line := range removed {
		in := strings.Replace(orderMsg, line, "", 1)
		fields, err := ex.Extract(in)
		if !errors.Is(err, common.ErrMalformedOrder) {
			t.Errorf("without %s: err = %v, want ErrMalformedOrder", name, err)
		}
		if fields != nil {
			t.Errorf("without %s: got partial fields %v, want none", name, fields)
		}
	}
}

func TestExtract_MissingAddressIsAllowed(t *testing.T) {
	ex := newTestExtractor(t)

	in := strings.Replace(orderMsg, "🏠 អាសយដ្ឋាន: (មិនបានបញ្ជាក់)\n", "", 1)
	got, err := ex.Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got[order.FieldAddress] != "" {
		t.Errorf("address = %q, want empty", got[order.FieldAddress])
	}
}

func TestExtract_PaymentStatusClosedSet(t *testing.T) {
	ex := newTestExtractor(t)

	passing := []string{
		"🟥 មិនទាន់បង់",
		"🟩 បង់ប្រាក់រួច",
		"paid",
		"unpaid",
	}
	for _, status := range passing {
		in := strings.Replace(orderMsg, "🟥 មិនទាន់បង់", status, 1)
		got, err := ex.Extract(in)
		if err != nil {
			t.Errorf("status %q: unexpected err %v", status, err)
			continue
		}
		if got[order.FieldPaymentStatus] != status {
			t.Errorf("status %q captured as %q", status, got[order.FieldPaymentStatus])
		}
	}

	failing := []string{
		"🟥 maybe later",
		"🟩 cod",
		"🟥",
	}
	for _, status := range failing {
		in := strings.Replace(orderMsg, "🟥 មិនទាន់បង់", status, 1)
		if _, err := ex.Extract(in); !errors.Is(err, common.ErrMalformedOrder) {
			t.Errorf("status %q: err = %v, want ErrMalformedOrder", status, err)
		}
	}
}

func TestExtract_TrimsSurroundingWhitespace(t *testing.T) {
	ex := newTestExtractor(t)

	in := strings.Replace(orderMsg, "👤 អតិថិជន: Sok Dara\n", "👤 អតិថិជន:   Sok Dara  \n", 1)
	got, err := ex.Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got[order.FieldCustomerName] != "Sok Dara" {
		t.Errorf("customer_name = %q, want %q", got[order.FieldCustomerName], "Sok Dara")
	}
}

func TestExtract_AmountGrammar(t *testing.T) {
	ex := newTestExtractor(t)

	cases := map[string]string{
		"$25.00":  "25.00",
		"$12,000": "12,000",
		"$7":      "7",
	}
	for raw, want := range cases {
		in := strings.Replace(orderMsg, "$25.00", raw, 1)
		got, err := ex.Extract(in)
		if err != nil {
			t.Errorf("amount %q: unexpected err %v", raw, err)
			continue
		}
		if got[order.FieldTotalAmount] != want {
			t.Errorf("amount %q captured as %q, want %q", raw, got[order.FieldTotalAmount], want)
		}
	}
}
