package inventory

import (
	"context"
	"io"

	"github.com/zewarhq/zewar-api/internal/domain/entity"
)

// BlobStore stores uploaded image bytes and returns a public URL.
type BlobStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (url string, err error)
}

// TagPDFGenerator renders the printable tag label of one inventory unit.
type TagPDFGenerator interface {
	GenerateTagPDF(ctx context.Context, unit *entity.InventoryUnit, itemName string) ([]byte, error)
}
