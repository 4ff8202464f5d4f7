// Package render produces the printable sanction letter and fetches the
// assets embedded in it.
package render

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

const (
	letterTitle    = "CAPITAL FINANCE – LOAN APPROVAL LETTER"
	letterSubtitle = "PERSONAL LOAN SANCTION LETTER (PROVISIONAL)"

	disclaimer = "This sanction letter is provisional and subject to verification of documents, KYC, " +
		"credit underwriting and execution of loan documentation. Final terms will be as per the loan agreement."

	pageWidthMM  = 210.0
	marginMM     = 18.0
	logoWidthMM  = 66.0
	logoHeightMM = 21.5
	qrSizeMM     = 40.0
	labelColMM   = 110.0
	valueColMM   = 64.0
)

// PDFRenderer lays out the single-page A4 sanction letter. The renderer is
// stateless; every call builds a fresh document.
type PDFRenderer struct{}

// NewPDFRenderer creates the renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render builds the letter PDF. A nil QR or logo image is simply left out;
// supplied bytes that cannot be embedded are dropped and reported as
// degradations. Compression stays off so the document text remains
// byte-searchable.
func (r *PDFRenderer) Render(letter model.SanctionLetter, qrPNG, logoPNG []byte) ([]byte, []valueobject.Degradation, error) {
	var degradations []valueobject.Degradation

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(letter.IssuedOn())
	pdf.SetModificationDate(letter.IssuedOn())
	pdf.SetMargins(marginMM, 20, marginMM)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if logoPNG != nil {
		if registerImage(pdf, "brand-logo", logoPNG) {
			pdf.ImageOptions("brand-logo", (pageWidthMM-logoWidthMM)/2, pdf.GetY(), logoWidthMM, logoHeightMM,
				false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			pdf.SetY(pdf.GetY() + logoHeightMM + 4)
		} else {
			degradations = append(degradations, valueobject.DegradationLogoUnavailable)
		}
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(11, 59, 97)
	pdf.CellFormat(0, 9, tr(letterTitle), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(200, 16, 46)
	pdf.CellFormat(0, 8, letterSubtitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	applicant := letter.Applicant()
	terms := letter.Terms()
	labelLine(pdf, "Date: ", letter.IssuedOn().Format("02 January 2006"))
	labelLine(pdf, "Applicant: ", applicant.Name())
	pdf.SetFont("Helvetica", "B", 10.5)
	pdf.Write(6, "Mobile: ")
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.Write(6, applicant.Mobile()+"  |  ")
	pdf.SetFont("Helvetica", "B", 10.5)
	pdf.Write(6, "Email: ")
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.Write(6, applicant.Email())
	pdf.Ln(6)
	labelLine(pdf, "PAN: ", applicant.PAN())
	labelLine(pdf, "Purpose: ", terms.Purpose().String())
	pdf.Ln(6)

	rows := [][2]string{
		{"Loan Amount Sanctioned", currencyCell(terms.Principal())},
		{"Rate of Interest (Reducing)", fmt.Sprintf("%s%% p.a.", terms.AnnualRatePct().Round(2).String())},
		{"Loan Tenure", terms.Tenure().String()},
		{"Estimated Monthly EMI", installmentCell(terms.Installment())},
		{"Processing Fee + GST", currencyCell(terms.ProcessingFee())},
		{"Net Amount to be Disbursed", currencyCell(terms.NetDisbursed())},
		{"Credit Risk Score (0-100)", letter.Assessment().Score().StringFixed(1)},
	}

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "B", 10.5)
	pdf.SetFillColor(200, 16, 46)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(labelColMM, 8, "Loan Detail", "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueColMM, 8, "Value", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(labelColMM, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(valueColMM, 8, row[1], "1", 1, "L", true, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9.5)
	pdf.MultiCell(0, 5.5, disclaimer, "", "L", false)
	pdf.Ln(10)

	footerY := pdf.GetY()
	if qrPNG != nil {
		if registerImage(pdf, "summary-qr", qrPNG) {
			pdf.ImageOptions("summary-qr", pageWidthMM-marginMM-qrSizeMM, footerY, qrSizeMM, qrSizeMM,
				false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		} else {
			degradations = append(degradations, valueobject.DegradationQREmbedSkipped)
		}
	}
	pdf.SetY(footerY)
	pdf.SetFont("Helvetica", "B", 10.5)
	pdf.CellFormat(labelColMM, 6, "Authorised Signatory", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.CellFormat(labelColMM, 6, "Capital Finance", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, degradations, fmt.Errorf("write sanction pdf: %w", err)
	}
	return buf.Bytes(), degradations, nil
}

// registerImage loads PNG bytes into the document under name. A failed load
// leaves the document usable: the sticky fpdf error is cleared and the caller
// records the degradation.
func registerImage(pdf *fpdf.Fpdf, name string, data []byte) bool {
	info := pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
	if info == nil || pdf.Err() {
		pdf.ClearError()
		return false
	}
	return true
}

func labelLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10.5)
	pdf.Write(6, label)
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.Write(6, value)
	pdf.Ln(6)
}

func currencyCell(v decimal.Decimal) string {
	return "Rs. " + humanize.CommafWithDigits(v.InexactFloat64(), 2)
}

// installmentCell pads the monthly figure to exactly two decimals.
func installmentCell(v decimal.Decimal) string {
	return "Rs. " + humanize.FormatFloat("#,###.##", v.InexactFloat64())
}
