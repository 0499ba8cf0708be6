package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a QR code the claiming organization presents at pickup
	GeneratePickupQR(donationID, organizationID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the donation and organization IDs
	ParsePickupQR(qrData string) (donationID, organizationID uuid.UUID, err error)
}
