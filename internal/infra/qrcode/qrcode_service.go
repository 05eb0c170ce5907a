package qrcode

import (
	"encoding/json"

	"nexus/config"
	"nexus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	handoffType = "handoff"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// handoffData is the JSON document encoded in a hand-off QR code
type handoffData struct {
	Type   string `json:"type"`
	TaskID string `json:"task_id"`
	Code   string `json:"code"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateHandoffQR generates the QR code a customer shows the rider on delivery
func (s *qrcodeService) GenerateHandoffQR(payload service.HandoffPayload) ([]byte, error) {
	if payload.TaskID == uuid.Nil || payload.Code == "" {
		return nil, errors.New("hand-off payload requires task id and code")
	}

	jsonData, err := json.Marshal(handoffData{
		Type:   handoffType,
		TaskID: payload.TaskID.String(),
		Code:   payload.Code,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseHandoffQR parses scanned QR data into the task id and code
func (s *qrcodeService) ParseHandoffQR(qrData string) (*service.HandoffPayload, error) {
	var data handoffData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != handoffType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	taskID, err := uuid.Parse(data.TaskID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse task ID")
	}

	if data.Code == "" {
		return nil, errors.New("QR code carries no hand-off code")
	}

	return &service.HandoffPayload{TaskID: taskID, Code: data.Code}, nil
}
