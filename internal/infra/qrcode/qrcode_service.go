package qrcode

import (
	"encoding/json"
	"fmt"

	"foodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	DonationID     string `json:"donation_id"`
	OrganizationID string `json:"organization_id"`
	Type           string `json:"type"`
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR generates a QR code the claiming organization presents at pickup
func (s *qrcodeService) GeneratePickupQR(donationID, organizationID uuid.UUID) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		DonationID:     donationID.String(),
		OrganizationID: organizationID.String(),
		Type:           "pickup",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR parses QR code data and returns the donation and organization IDs
func (s *qrcodeService) ParsePickupQR(qrData string) (donationID, organizationID uuid.UUID, err error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "pickup" {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUIDs
	donationID, err = uuid.Parse(data.DonationID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse donation ID: %w", err)
	}
	organizationID, err = uuid.Parse(data.OrganizationID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse organization ID: %w", err)
	}

	return donationID, organizationID, nil
}
