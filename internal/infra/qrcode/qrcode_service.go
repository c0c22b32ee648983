// Package qrcode renders the share codes customers scan to open a store's bowl builder.
package qrcode

import (
	"encoding/json"
	"strings"

	"acai/internal/domain/service"
	"acai/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const storeQRType = "store"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	StoreID string `json:"store_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL may be empty, in which case codes carry only the store id.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = 256
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
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateStoreQR generates a PNG QR code linking to the store's bowl builder
func (s *qrcodeService) GenerateStoreQR(storeID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		StoreID: storeID.String(),
		Type:    storeQRType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/stores/" + data.StoreID
	}

	jsonData, err := json.Marshal(data)
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

// ParseStoreQR parses QR code data and returns the store ID
func (s *qrcodeService) ParseStoreQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != storeQRType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	storeID, err := uuid.Parse(data.StoreID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse store ID")
	}

	return storeID, nil
}
