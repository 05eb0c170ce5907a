package qrcode

import (
	"encoding/json"
	"testing"

	"nexus/config"
	"nexus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}))
}

func TestQRCodeService_GenerateHandoffQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateHandoffQR(service.HandoffPayload{TaskID: uuid.New(), Code: "482913"})
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateHandoffQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M")
			qrBytes, err := svc.GenerateHandoffQR(service.HandoffPayload{TaskID: uuid.New(), Code: "000001"})
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateHandoffQR_InvalidPayload(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateHandoffQR(service.HandoffPayload{Code: "123456"})
	assert.Error(t, err)

	_, err = svc.GenerateHandoffQR(service.HandoffPayload{TaskID: uuid.New()})
	assert.Error(t, err)
}

func TestQRCodeService_ParseHandoffQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	taskID := uuid.New()

	validData, err := json.Marshal(handoffData{Type: "handoff", TaskID: taskID.String(), Code: "731004"})
	require.NoError(t, err)

	wrongType, err := json.Marshal(handoffData{Type: "subscription", TaskID: taskID.String(), Code: "731004"})
	require.NoError(t, err)

	badTaskID, err := json.Marshal(handoffData{Type: "handoff", TaskID: "not-a-uuid", Code: "731004"})
	require.NoError(t, err)

	noCode, err := json.Marshal(handoffData{Type: "handoff", TaskID: taskID.String()})
	require.NoError(t, err)

	tests := []struct {
		name    string
		qrData  string
		wantErr bool
	}{
		{"Valid hand-off QR", string(validData), false},
		{"Wrong type", string(wrongType), true},
		{"Invalid task ID", string(badTaskID), true},
		{"Missing code", string(noCode), true},
		{"Invalid JSON", "not json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := svc.ParseHandoffQR(tt.qrData)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, taskID, payload.TaskID)
			assert.Equal(t, "731004", payload.Code)
		})
	}
}
