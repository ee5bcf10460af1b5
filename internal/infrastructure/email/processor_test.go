package email

import (
	"context"
	"errors"
	"net/smtp"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	catalogModel "github.com/Axocidue/SportsStore/internal/domains/catalog/model"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
)

func shippingTo(name string) checkoutModel.ShippingDetails {
	return checkoutModel.ShippingDetails{
		Name: name, Line1: "123 Main St", City: "Lund", Country: "Sweden", Zip: "22100",
	}
}

func singleItemCart(t *testing.T) *cartModel.Cart {
	t.Helper()
	cart := cartModel.NewCart()
	require.NoError(t, cart.AddItem(catalogModel.Product{
		ID: 1, Name: "Kayak", Price: decimal.RequireFromString("275.00"),
	}, 1))
	return cart
}

func TestSMTPOrderProcessor_SendsComposedMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	p := NewSMTPOrderProcessor(Settings{
		Host: "mail.example.com", Port: 587,
		From: "shop@example.com", To: "operator@example.com",
	})
	p.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := p.ProcessOrder(context.Background(), singleItemCart(t), shippingTo("Alex"))
	require.NoError(t, err)

	assert.Equal(t, "mail.example.com:587", gotAddr)
	assert.Equal(t, "shop@example.com", gotFrom)
	assert.Equal(t, []string{"operator@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: New order submitted")
	assert.Contains(t, string(gotMsg), "Total order value: 275.00")
}

func TestSMTPOrderProcessor_PropagatesSendFailure(t *testing.T) {
	p := NewSMTPOrderProcessor(Settings{Host: "mail.example.com", Port: 587})
	p.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	}

	err := p.ProcessOrder(context.Background(), singleItemCart(t), shippingTo("Alex"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPOrderProcessor_RespectsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	p := NewSMTPOrderProcessor(Settings{Host: "mail.example.com", Port: 587})
	p.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		<-block
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.ProcessOrder(ctx, singleItemCart(t), shippingTo("Alex"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileOrderProcessor_WritesOneOrderFile(t *testing.T) {
	dir := t.TempDir()
	p := NewFileOrderProcessor(filepath.Join(dir, "orders"))

	err := p.ProcessOrder(context.Background(), singleItemCart(t), shippingTo("Alex"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "orders"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "orders", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total order value: 275.00")
	assert.Contains(t, string(data), "Alex")
}

func TestNoopOrderProcessor_AlwaysSucceeds(t *testing.T) {
	p := NewNoopOrderProcessor()
	assert.NoError(t, p.ProcessOrder(context.Background(), singleItemCart(t), shippingTo("Alex")))
}
