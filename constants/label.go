package constants

// Physical label geometry in millimetres. The operator prints on a 78x50
// thermal label; these are printer constraints, not layout preferences.
const (
	LabelWidthMM  = 78.0
	LabelHeightMM = 50.0
	LeftMarginMM  = 5.0
	TopMarginMM   = 7.0
	LinePitchMM   = 5.0
)

const (
	LabelFilename    = "label.pdf"
	PrintButtonLabel = "🖨 Print Label"
	PrintedAckText   = "✅ Label generated!"
	PrintFailAckText = "⚠️ Could not generate label. Please retry."
)

// AddressPlaceholder is the literal the upstream order bot emits when the
// customer gave no address. A label line is never printed for it.
const AddressPlaceholder = "(មិនបានបញ្ជាក់)"

// Defaults shown by the HTTP label page when a query parameter is absent.
const (
	DefaultName    = "N/A"
	DefaultPhone   = "N/A"
	DefaultTotal   = "0.00"
	DefaultPayment = "N/A"
)
