package valueobject

// ---------------------------------------------------------------------------
// Degradation – non-fatal quality loss recorded by the pipeline
// ---------------------------------------------------------------------------

// Degradation names an optional element the pipeline had to drop while still
// producing the artifact. Degradations are reported, logged at WARN, and never
// escalate to failures.
type Degradation string

const (
	// DegradationLogoUnavailable records that the header logo could not be
	// fetched and the letter was rendered without it.
	DegradationLogoUnavailable Degradation = "logo_unavailable"

	// DegradationQREmbedSkipped records that the QR image could not be
	// embedded and the footer fell back to the signatory label alone.
	DegradationQREmbedSkipped Degradation = "qr_embed_skipped"

	// DegradationOCRUnavailable records that text extraction was requested
	// but no extractor is available in this deployment.
	DegradationOCRUnavailable Degradation = "ocr_unavailable"
)

// String returns the wire form of the degradation.
func (d Degradation) String() string { return string(d) }

// DegradationStrings flattens a degradation list for logging and responses.
func DegradationStrings(ds []Degradation) []string {
	if len(ds) == 0 {
		return nil
	}
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = string(d)
	}
	return out
}
