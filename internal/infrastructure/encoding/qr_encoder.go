// Package encoding turns a sanction letter into its scannable summary code.
package encoding

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/capfin/sanction-service/internal/domain/model"
)

const qrSizePx = 256

// SummaryPayload renders the pipe-delimited summary a scanner decodes from
// the letter's QR code. The payload is plain ASCII so every reader recovers
// it byte for byte; amounts carry the "Rs" prefix instead of the rupee sign.
func SummaryPayload(letter model.SanctionLetter) string {
	terms := letter.Terms()
	return fmt.Sprintf("CAPFIN|Applicant:%s|Mobile:%s|Loan:Rs%s|Tenure:%dm|EMI:Rs%s",
		letter.Applicant().Name(),
		letter.Applicant().Mobile(),
		commaAmount(terms.Principal()),
		terms.Tenure().Months(),
		fixedAmount(terms.Installment()),
	)
}

// QREncoder produces a PNG QR image of the summary payload.
type QREncoder struct{}

// NewQREncoder creates the encoder.
func NewQREncoder() *QREncoder {
	return &QREncoder{}
}

// Encode returns the summary payload as a 256px PNG with medium error
// correction, enough redundancy to survive print-and-scan.
func (e *QREncoder) Encode(letter model.SanctionLetter) ([]byte, error) {
	png, err := qrcode.Encode(SummaryPayload(letter), qrcode.Medium, qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("encode summary qr: %w", err)
	}
	return png, nil
}

func commaAmount(v decimal.Decimal) string {
	return humanize.CommafWithDigits(v.InexactFloat64(), 2)
}

// fixedAmount pads the per-month figure to exactly two decimals.
func fixedAmount(v decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", v.InexactFloat64())
}
