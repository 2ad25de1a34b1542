package label

import (
	"bytes"
	"html/template"

	"github.com/khmershop/labelbot/internal/common"
	"github.com/khmershop/labelbot/internal/order"
)

// View is the display shape of a label for the HTML path. Optional lines are
// simply empty; the template skips them. Field values are auto-escaped.
type View struct {
	Name     string
	Phone    string
	Location string
	Address  string
	Total    string
	Payment  string
	Shipping string
}

// ViewFromFields maps a complete field set onto the HTML view, dropping the
// address when it is the "not specified" placeholder.
func ViewFromFields(f order.Fields) View {
	addr := f.Address
	if !PrintableAddress(addr) {
		addr = ""
	}
	return View{
		Name:     f.CustomerName,
		Phone:    f.Phone,
		Location: f.Location,
		Address:  addr,
		Total:    f.TotalAmount,
		Payment:  f.PaymentStatus,
		Shipping: f.ShippingMethod,
	}
}

// Page styled to the physical 78x50mm label so a browser print of the page
// matches the thermal printer output.
const htmlLabel = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Shipping Label</title>
<style>
  @page { size: 78mm 50mm; margin: 0; }
  body { margin: 0; font-family: Helvetica, Arial, sans-serif; }
  .label {
    width: 78mm;
    height: 50mm;
    box-sizing: border-box;
    padding: 3mm 0 0 5mm;
    font-size: 10pt;
  }
  .label p { margin: 0; line-height: 5mm; }
  .label hr { border: none; border-top: 1px solid #000; margin: 1mm 5mm 1mm 0; }
</style>
</head>
<body>
<div class="label">
  <p>👤 {{.Name}}</p>
  <p>📞 {{.Phone}}</p>
  {{if .Location}}<p>📍 {{.Location}}</p>{{end}}
  {{if .Address}}<p>🏠 {{.Address}}</p>{{end}}
  <hr>
  <p>💰 ${{.Total}}</p>
  {{if .Shipping}}<p>🚚 {{.Shipping}}</p>{{end}}
  <p>💳 {{.Payment}}</p>
</div>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("label").Parse(htmlLabel))

// RenderHTML produces the HTML representation of the label.
func RenderHTML(v View) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, v); err != nil {
		return nil, common.WrapError(err, "render label html")
	}
	return buf.Bytes(), nil
}
