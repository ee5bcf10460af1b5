package email

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
	"github.com/Axocidue/SportsStore/pkg/logger"
)

// FileOrderProcessor drops each order summary into a pickup directory
// instead of sending mail. Useful for local development and for shops
// that feed orders into a folder-watching fulfilment tool.
type FileOrderProcessor struct {
	dir string
}

func NewFileOrderProcessor(dir string) *FileOrderProcessor {
	return &FileOrderProcessor{dir: dir}
}

func (p *FileOrderProcessor) ProcessOrder(ctx context.Context, cart *cartModel.Cart, details checkoutModel.ShippingDetails) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create pickup directory: %w", err)
	}

	name := fmt.Sprintf("order-%s-%s.txt", time.Now().UTC().Format("20060102T150405"), uuid.New().String()[:8])
	path := filepath.Join(p.dir, name)

	body := ComposeOrderMessage(cart, details)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write order file: %w", err)
	}

	logger.Info("order written to pickup directory", map[string]interface{}{
		"path":  path,
		"total": cart.ComputeTotalValue().StringFixed(2),
	})
	return nil
}
