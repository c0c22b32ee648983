package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for the store share QR codes
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code pointing customers to the store's bowl builder
	GenerateStoreQR(storeID uuid.UUID) ([]byte, error)

	// ParseStoreQR parses QR code data and returns the store ID
	ParseStoreQR(qrData string) (uuid.UUID, error)
}
