package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/capfin/sanction-service/internal/domain/event"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SanctionLetter aggregate root
// ---------------------------------------------------------------------------

// SanctionLetter is the provisional sanction issued to a validated applicant.
// It is an immutable aggregate; construction assigns the reference ID and
// raises SanctionIssued.
type SanctionLetter struct {
	referenceID  string
	applicant    ApplicantRecord
	terms        LoanTerms
	assessment   RiskAssessment
	issuedOn     time.Time
	domainEvents []event.DomainEvent
}

// NewSanctionLetter issues a sanction for an applicant whose inputs and terms
// have already passed validation.
func NewSanctionLetter(applicant ApplicantRecord, terms LoanTerms, assessment RiskAssessment, issuedOn time.Time) (SanctionLetter, error) {
	if applicant.IsZero() {
		return SanctionLetter{}, errors.New("applicant is required")
	}
	if terms.IsZero() {
		return SanctionLetter{}, errors.New("loan terms are required")
	}
	if issuedOn.IsZero() {
		return SanctionLetter{}, errors.New("issue date is required")
	}

	letter := SanctionLetter{
		referenceID: uuid.New().String(),
		applicant:   applicant,
		terms:       terms,
		assessment:  assessment,
		issuedOn:    issuedOn,
	}

	letter.domainEvents = append(letter.domainEvents, event.NewSanctionIssued(
		letter.referenceID,
		applicant.Name(),
		applicant.Mobile(),
		terms.Principal(),
		terms.Tenure().Months(),
		terms.Installment(),
		assessment.Score(),
	))

	return letter, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s SanctionLetter) ReferenceID() string             { return s.referenceID }
func (s SanctionLetter) Applicant() ApplicantRecord      { return s.applicant }
func (s SanctionLetter) Terms() LoanTerms                { return s.terms }
func (s SanctionLetter) Assessment() RiskAssessment      { return s.assessment }
func (s SanctionLetter) IssuedOn() time.Time             { return s.issuedOn }
func (s SanctionLetter) DomainEvents() []event.DomainEvent { return s.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (s SanctionLetter) ClearEvents() SanctionLetter {
	next := s
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// Rendered artifact
// ---------------------------------------------------------------------------

// SanctionArtifact bundles the rendered outputs for one letter: the PDF
// document, the QR summary image embedded in it, and any degradations hit
// while rendering.
type SanctionArtifact struct {
	Document     []byte
	QRImage      []byte
	Degradations []valueobject.Degradation
}

// Degraded reports whether the artifact was produced on a degraded path.
func (a SanctionArtifact) Degraded() bool {
	return len(a.Degradations) > 0
}
