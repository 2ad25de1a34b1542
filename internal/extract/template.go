package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khmershop/labelbot/constants"
	"github.com/khmershop/labelbot/internal/common"
	"github.com/khmershop/labelbot/internal/order"
)

// FieldKind selects the matching rule for a field.
type FieldKind string

const (
	// KindText captures free text from the marker to the end of the line.
	KindText FieldKind = "text"
	// KindAmount captures currency digits (grouping commas, optional decimal
	// point) after the marker, skipping an optional '$'.
	KindAmount FieldKind = "amount"
	// KindStatus captures a whole line led by a status marker glyph whose
	// phrase belongs to the template's closed status set.
	KindStatus FieldKind = "status"
)

// FieldSpec describes how one field is located inside the message.
type FieldSpec struct {
	Name     string    `yaml:"name"`
	Marker   string    `yaml:"marker,omitempty"` // unused for status kind
	Kind     FieldKind `yaml:"kind,omitempty"`   // defaults to text
	Required bool      `yaml:"required"`
}

// Template is the declarative description of one order-message format.
// A message qualifies only if it contains Header; each field is then located
// by its own marker-anchored rule. New message formats are template files,
// not code changes.
type Template struct {
	Header        string      `yaml:"header"`
	Fields        []FieldSpec `yaml:"fields"`
	StatusMarkers []string    `yaml:"status_markers,omitempty"`
	StatusPhrases []string    `yaml:"status_phrases,omitempty"`
}

// DefaultTemplate returns the built-in template for the operator's Khmer
// order notification format.
func DefaultTemplate() *Template {
	return &Template{
		Header: "✅សូមបងពិនិត្យ",
		Fields: []FieldSpec{
			{Name: order.FieldCustomerName, Marker: "👤 អតិថិជន:", Kind: KindText, Required: true},
			{Name: order.FieldPhone, Marker: "📞 លេខទូរស័ព្ទ:", Kind: KindText, Required: true},
			{Name: order.FieldLocation, Marker: "📍 ទីតាំង:", Kind: KindText, Required: true},
			{Name: order.FieldAddress, Marker: "🏠 អាសយដ្ឋាន:", Kind: KindText, Required: false},
			{Name: order.FieldTotalAmount, Marker: "សរុបចុងក្រោយ:", Kind: KindAmount, Required: true},
			{Name: order.FieldPaymentStatus, Kind: KindStatus, Required: true},
			{Name: order.FieldShippingMethod, Marker: "🚚 វិធីសាស្រ្តដឹកជញ្ជូន:", Kind: KindText, Required: true},
		},
		StatusMarkers: constants.PaymentStatusMarkers,
		StatusPhrases: constants.PaymentStatusPhrases,
	}
}

// LoadTemplate reads a YAML template file, validates it against the embedded
// JSON schema, and checks the semantic constraints the schema cannot express.
func LoadTemplate(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read template")
	}

	// Schema validation first, on the generic document, so errors name the
	// offending YAML node rather than a zero-valued struct field.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, common.WrapError(err, "parse template yaml")
	}
	if err := validateTemplateDoc(doc); err != nil {
		return nil, common.WrapError(err, "template schema")
	}

	var tpl Template
	if err := yaml.Unmarshal(raw, &tpl); err != nil {
		return nil, common.WrapError(err, "decode template")
	}
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Validate enforces the constraints the renderer and payload codec rely on.
func (t *Template) Validate() error {
	if t.Header == "" {
		return NewTemplateError("header is required")
	}

	seen := make(map[string]bool, len(t.Fields))
	statusFields := 0
	for i := range t.Fields {
		fs := &t.Fields[i]
		if fs.Kind == "" {
			fs.Kind = KindText
		}
		switch fs.Kind {
		case KindText, KindAmount:
			if fs.Marker == "" {
				return NewTemplateError(fmt.Sprintf("field %q needs a marker", fs.Name))
			}
		case KindStatus:
			statusFields++
		default:
			return NewTemplateError(fmt.Sprintf("field %q has unknown kind %q", fs.Name, fs.Kind))
		}
		if seen[fs.Name] {
			return NewTemplateError(fmt.Sprintf("duplicate field %q", fs.Name))
		}
		seen[fs.Name] = true
	}
	if statusFields > 1 {
		return NewTemplateError("at most one status field is allowed")
	}
	if statusFields == 1 {
		if len(t.StatusMarkers) == 0 {
			t.StatusMarkers = constants.PaymentStatusMarkers
		}
		if len(t.StatusPhrases) == 0 {
			t.StatusPhrases = constants.PaymentStatusPhrases
		}
	}

	// The payload schema and the label layout are fixed; every canonical
	// field must be declared, whatever its markers.
	for _, name := range []string{
		order.FieldCustomerName,
		order.FieldPhone,
		order.FieldLocation,
		order.FieldAddress,
		order.FieldTotalAmount,
		order.FieldPaymentStatus,
		order.FieldShippingMethod,
	} {
		if !seen[name] {
			return NewTemplateError(fmt.Sprintf("missing field %q", name))
		}
	}
	return nil
}

// NewTemplateError marks a template-file problem; always a startup failure.
func NewTemplateError(msg string) error {
	return common.NewAppError("TEMPLATE_ERROR", msg, nil)
}
