package label

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/khmershop/labelbot/constants"
	"github.com/khmershop/labelbot/internal/common"
	"github.com/khmershop/labelbot/internal/order"
)

// RenderPDF produces the single-page 78x50mm label document.
// Output is deterministic: the same fields always yield the same bytes
// (document dates are pinned), which also makes a re-activated print action
// idempotent.
func RenderPDF(f order.Fields) ([]byte, error) {
	if err := checkComplete(f); err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: constants.LabelWidthMM, Ht: constants.LabelHeightMM},
	})
	epoch := time.Unix(0, 0).UTC()
	pdf.SetCreationDate(epoch)
	pdf.SetModificationDate(epoch)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(constants.LeftMarginMM, constants.TopMarginMM, constants.LeftMarginMM)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)

	lines, ruleAfter := Stack(f)
	y := constants.TopMarginMM
	for i, ln := range lines {
		pdf.Text(constants.LeftMarginMM, y, ln.Glyph+" "+ln.Text)
		if i == ruleAfter {
			// separator rule in the gap below the identity block
			ruleY := y + constants.LinePitchMM/2
			pdf.Line(constants.LeftMarginMM, ruleY, constants.LabelWidthMM-constants.LeftMarginMM, ruleY)
		}
		y += constants.LinePitchMM
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, common.WrapError(err, "pdf output")
	}
	return buf.Bytes(), nil
}
