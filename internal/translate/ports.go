package translate

import (
	"context"
	"errors"
)

// ErrTranslate means the translation service failed (transport, 4xx/5xx,
// unparseable body). The caller keeps its last-good translation.
var ErrTranslate = errors.New("translation failed")

// Client translates text into targetCode. sourceHint is an ISO code or
// "auto" for service-side source detection.
type Client interface {
	Translate(ctx context.Context, text, targetCode, sourceHint string) (string, error)
}
