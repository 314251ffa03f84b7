package services

import (
	"fmt"
	"math/rand"
	"time"

	payos "github.com/payOSHQ/payos-lib-golang"

	"tourvisto/internal/config"
)

// PaymentService creates hosted checkout links for generated trips.
type PaymentService interface {
	CreatePaymentLink(name, description string, price int, tripID string) (string, error)
}

type paymentService struct {
	cfg config.PayOSConfig
}

func NewPaymentService(cfg *config.Config) PaymentService {
	return &paymentService{cfg: cfg.PayOS}
}

func (p *paymentService) CreatePaymentLink(name, description string, price int, tripID string) (string, error) {
	if p.cfg.ClientID == "" || p.cfg.APIKey == "" || p.cfg.ChecksumKey == "" {
		return "", fmt.Errorf("payos credentials not configured")
	}

	if err := payos.Key(p.cfg.ClientID, p.cfg.APIKey, p.cfg.ChecksumKey); err != nil {
		return "", fmt.Errorf("payos client init: %w", err)
	}

	// payOS expects a numeric order code; unix seconds plus a short random
	// suffix keeps it unique enough and within 13 digits.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	description = truncateDescription(description, 25)

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    price,
		Items: []payos.Item{
			{Name: name, Price: price, Quantity: 1},
		},
		Description: description,
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL + "?tripId=" + tripID,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		return "", fmt.Errorf("payos create link: %w", err)
	}
	return resp.CheckoutUrl, nil
}

// truncateDescription caps the provider-facing description at max runes.
// Descriptions often lead with emoji, so cutting on bytes could split a
// multi-byte character.
func truncateDescription(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
