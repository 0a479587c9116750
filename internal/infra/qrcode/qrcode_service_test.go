package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_StoreURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://glaces.example.org/")

	assert.Equal(t, "https://glaces.example.org/?store=42", service.StoreURL(42))
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService(0, "M", "https://glaces.example.org")

	qrBytes, err := service.GenerateStoreQR(7)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	small, err := NewQRCodeService(128, "M", "https://x").GenerateStoreQR(1)
	require.NoError(t, err)
	large, err := NewQRCodeService(512, "M", "https://x").GenerateStoreQR(1)
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}
