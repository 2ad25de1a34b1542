package label

import (
	"bytes"
	"strings"
	"testing"

	"github.com/khmershop/labelbot/constants"
	"github.com/khmershop/labelbot/internal/order"
)

func completeFields() order.Fields {
	return order.Fields{
		CustomerName:   "Sok Dara",
		Phone:          "012345678",
		Location:       "Phnom Penh",
		Address:        constants.AddressPlaceholder,
		TotalAmount:    "25.00",
		PaymentStatus:  "🟥 មិនទាន់បង់",
		ShippingMethod: "Moto",
	}
}

func TestStack_AddressPlaceholderOmitted(t *testing.T) {
	lines, ruleAfter := Stack(completeFields())
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	if ruleAfter != 2 {
		t.Errorf("rule after line %d, want 2 (location)", ruleAfter)
	}
	for _, ln := range lines {
		if ln.Glyph == "🏠" {
			t.Error("address line present despite placeholder value")
		}
	}
}

func TestStack_WithAddress(t *testing.T) {
	f := completeFields()
	f.Address = "St 123, House 45"
	lines, ruleAfter := Stack(f)
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7", len(lines))
	}
	if ruleAfter != 3 {
		t.Errorf("rule after line %d, want 3 (address)", ruleAfter)
	}

	glyphs := make([]string, 0, len(lines))
	for _, ln := range lines {
		glyphs = append(glyphs, ln.Glyph)
	}
	want := []string{"👤", "📞", "📍", "🏠", "💰", "🚚", "💳"}
	for i := range want {
		if glyphs[i] != want[i] {
			t.Fatalf("glyph order = %v, want %v", glyphs, want)
		}
	}
	if lines[4].Text != "$25.00" {
		t.Errorf("amount line = %q, want %q", lines[4].Text, "$25.00")
	}
}

func TestRenderPDF_Deterministic(t *testing.T) {
	f := completeFields()
	a, err := RenderPDF(f)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	b, err := RenderPDF(f)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same fields rendered different bytes")
	}
	if !bytes.HasPrefix(a, []byte("%PDF")) {
		t.Errorf("output is not a PDF (starts %q)", a[:8])
	}
}

func TestRenderPDF_BlankRequiredFieldFails(t *testing.T) {
	f := completeFields()
	f.Phone = ""
	if _, err := RenderPDF(f); err == nil {
		t.Fatal("expected error for blank required field")
	}
}

func TestViewFromFields_ClearsPlaceholderAddress(t *testing.T) {
	v := ViewFromFields(completeFields())
	if v.Address != "" {
		t.Errorf("address = %q, want empty", v.Address)
	}

	f := completeFields()
	f.Address = "St 123"
	if v := ViewFromFields(f); v.Address != "St 123" {
		t.Errorf("address = %q, want %q", v.Address, "St 123")
	}
}

func TestRenderHTML_ConditionalAddressLine(t *testing.T) {
	v := ViewFromFields(completeFields())
	out, err := RenderHTML(v)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "🏠") {
		t.Error("address line rendered for placeholder value")
	}
	if !strings.Contains(html, "Sok Dara") || !strings.Contains(html, "$25.00") {
		t.Error("expected field values missing from page")
	}

	v.Address = "St 123"
	out, err = RenderHTML(v)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Count(string(out), "🏠") != 1 {
		t.Errorf("want exactly one address line, got %d", strings.Count(string(out), "🏠"))
	}
}

func TestRenderHTML_EscapesValues(t *testing.T) {
	v := View{Name: "<script>x</script>", Phone: "1", Total: "0.00", Payment: "paid"}
	out, err := RenderHTML(v)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(string(out), "<script>x") {
		t.Error("value not escaped")
	}
}

func TestRenderHTML_Idempotent(t *testing.T) {
	v := ViewFromFields(completeFields())
	a, _ := RenderHTML(v)
	b, _ := RenderHTML(v)
	if !bytes.Equal(a, b) {
		t.Error("same view rendered different markup")
	}
}
