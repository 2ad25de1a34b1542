package constants

// PaymentStatusPhrases is the closed set of phrases the order bot uses on the
// payment line. Anything else at that position means the message is not a
// well-formed order; extraction rejects it rather than guessing.
var PaymentStatusPhrases = []string{
	"បង់ប្រាក់រួច",
	"បង់ប្រាក់",
	"មិនទាន់បង់",
	"paid",
	"unpaid",
}

// PaymentStatusMarkers are the glyphs that lead the payment line
// (red = unpaid, green = paid).
var PaymentStatusMarkers = []string{"🟥", "🟩"}
