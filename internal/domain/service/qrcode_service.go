package service

import (
	"github.com/google/uuid"
)

// HandoffPayload is what the customer shows the rider at the door.
type HandoffPayload struct {
	TaskID uuid.UUID `json:"task_id"`
	Code   string    `json:"code"`
}

// QRCodeService encodes and decodes delivery hand-off QR codes
type QRCodeService interface {
	// GenerateHandoffQR renders the payload as a PNG QR code
	GenerateHandoffQR(payload HandoffPayload) ([]byte, error)

	// ParseHandoffQR parses scanned QR data
	ParseHandoffQR(qrData string) (*HandoffPayload, error)
}
