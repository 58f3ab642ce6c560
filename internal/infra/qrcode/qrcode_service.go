package qrcode

import (
	"encoding/json"

	"nutria/config"
	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/service"
	"nutria/internal/errors"

	"github.com/skip2/go-qrcode"
)

const foodPayloadType = "food"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	FoodID string `json:"food_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
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

// NewFromConfig builds the service from the qrcode config section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateFoodQR renders the food key as a PNG QR code
func (s *qrcodeService) GenerateFoodQR(key entity.FoodKey) ([]byte, error) {
	jsonData, err := json.Marshal(QRCodeData{
		FoodID: key.String(),
		Type:   foodPayloadType,
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

// ParseFoodQR decodes a scanned payload back into a food key. A payload that
// is not a food code yields ErrInvalidFoodKey.
func (s *qrcodeService) ParseFoodQR(qrData string) (entity.FoodKey, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return entity.FoodKey{}, domainerrors.ErrInvalidFoodKey.WithDetails("payload is not a food code")
	}

	if data.Type != foodPayloadType {
		return entity.FoodKey{}, domainerrors.ErrInvalidFoodKey.WithDetails("unexpected code type " + data.Type)
	}

	return entity.ParseFoodKey(data.FoodID)
}
