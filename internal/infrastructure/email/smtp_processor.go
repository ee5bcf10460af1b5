package email

import (
	"context"
	"fmt"
	"net/smtp"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
	"github.com/Axocidue/SportsStore/pkg/logger"
)

const orderSubject = "New order submitted"

// Settings configures the SMTP order processor
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SMTPOrderProcessor notifies the shop operator of new orders by email
type SMTPOrderProcessor struct {
	settings Settings
	// send is swappable so tests can intercept the wire call
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPOrderProcessor(settings Settings) *SMTPOrderProcessor {
	return &SMTPOrderProcessor{
		settings: settings,
		send:     smtp.SendMail,
	}
}

func (p *SMTPOrderProcessor) ProcessOrder(ctx context.Context, cart *cartModel.Cart, details checkoutModel.ShippingDetails) error {
	body := ComposeOrderMessage(cart, details)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		p.settings.From, p.settings.To, orderSubject, body))

	var auth smtp.Auth
	if p.settings.Username != "" {
		auth = smtp.PlainAuth("", p.settings.Username, p.settings.Password, p.settings.Host)
	}

	addr := fmt.Sprintf("%s:%d", p.settings.Host, p.settings.Port)

	// net/smtp has no context support; run the send in a goroutine so the
	// checkout timeout still applies.
	errCh := make(chan error, 1)
	go func() {
		errCh <- p.send(addr, auth, p.settings.From, []string{p.settings.To}, msg)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send order email: %w", ctx.Err())
	case err := <-errCh:
		if err != nil {
			logger.Error("failed to send order email", err)
			return fmt.Errorf("send order email: %w", err)
		}
	}

	logger.Info("order email sent", map[string]interface{}{
		"to":    p.settings.To,
		"total": cart.ComputeTotalValue().StringFixed(2),
	})
	return nil
}
