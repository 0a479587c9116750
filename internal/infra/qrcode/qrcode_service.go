package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"locator/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Codes encode
// baseURL + "/?store=<id>".
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "m", "medium":
		return qrcode.Medium
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// StoreURL returns the public map link for a store
func (s *qrcodeService) StoreURL(storeID int64) string {
	query := url.Values{}
	query.Set("store", strconv.FormatInt(storeID, 10))

	return s.baseURL + "/?" + query.Encode()
}

// GenerateStoreQR renders the store link as a PNG
func (s *qrcodeService) GenerateStoreQR(storeID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.StoreURL(storeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
