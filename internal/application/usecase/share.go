package usecase

import (
	"fmt"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/model"
)

// shareMessage composes the human-facing summary handed to share targets
// (WhatsApp, clipboard). Unlike the QR payload this one keeps the rupee sign.
func shareMessage(letter model.SanctionLetter) string {
	terms := letter.Terms()
	return fmt.Sprintf(
		"Hello, I (%s) have been provisionally sanctioned a loan of ₹%s for '%s' with EMI ₹%s/month for %d months.",
		letter.Applicant().Name(),
		commaAmount(terms.Principal()),
		terms.Purpose().String(),
		fixedAmount(terms.Installment()),
		terms.Tenure().Months(),
	)
}

// whatsappLink builds a wa.me link carrying the message. An empty phone
// produces the generic share form; a phone narrows it to that recipient.
func whatsappLink(phone, text string) string {
	link := "https://wa.me/"
	if digits := model.NormalizeMobile(phone); digits != "" {
		link += digits
	}
	return link + "?text=" + url.QueryEscape(text)
}

func commaAmount(amount decimal.Decimal) string {
	return humanize.CommafWithDigits(amount.InexactFloat64(), 2)
}

// fixedAmount pads per-month figures to exactly two decimals.
func fixedAmount(amount decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", amount.InexactFloat64())
}
