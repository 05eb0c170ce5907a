package service

import (
	"context"
	"encoding/json"
)

// MediaProcessor submits images to the external AI service. Calls are opaque and may be slow.
type MediaProcessor interface {
	// Process posts the job payload to the operation endpoint ("remove-background", "enhance").
	Process(ctx context.Context, operation string, payload json.RawMessage) error
}
