package port

import (
	"context"

	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

// AssetFetcher defines the port for retrieving remote assets such as the
// letterhead logo. Implementations must bound the fetch with a timeout.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// SummaryEncoder defines the port for encoding a letter summary into a
// scannable image.
type SummaryEncoder interface {
	// Encode returns a PNG containing the letter's summary payload.
	Encode(letter model.SanctionLetter) ([]byte, error)
}

// ArtifactRenderer defines the port for rendering the sanction document.
type ArtifactRenderer interface {
	// Render produces the letter document. The QR and logo images are
	// optional; a nil or unusable image degrades the layout instead of
	// failing the render. Degradations hit along the way are returned
	// alongside the document.
	Render(letter model.SanctionLetter, qrPNG, logoPNG []byte) ([]byte, []valueobject.Degradation, error)
}
