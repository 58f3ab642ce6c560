package service

import (
	"nutria/internal/domain/entity"
)

// QRCodeService defines the interface for food share code generation and parsing
type QRCodeService interface {
	// GenerateFoodQR renders a PNG QR code that identifies a food
	GenerateFoodQR(key entity.FoodKey) ([]byte, error)

	// ParseFoodQR decodes the payload of a food QR code
	ParseFoodQR(qrData string) (entity.FoodKey, error)
}
