package service

import (
	"context"
	"errors"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	"github.com/Axocidue/SportsStore/internal/domains/checkout/model"
	"github.com/Axocidue/SportsStore/pkg/logger"
)

type CheckoutService struct {
	processor      OrderProcessor
	processTimeout time.Duration
}

func NewCheckoutService(processor OrderProcessor, processTimeout time.Duration) ServiceInterface {
	if processor == nil {
		panic("checkout: order processor is required")
	}
	if processTimeout <= 0 {
		processTimeout = 15 * time.Second
	}
	return &CheckoutService{
		processor:      processor,
		processTimeout: processTimeout,
	}
}

// Checkout runs two validation gates and then submits the order.
//
// Gate 1: an empty cart fails immediately.
// Gate 2: structurally invalid shipping details fail with field errors.
// Either failure leaves the cart untouched and the processor uncalled.
//
// When both gates pass the processor runs exactly once, under a timeout;
// any processor error (timeout included) surfaces as a failed outcome and
// the cart keeps its lines, so the caller may retry with the same cart.
// Only a confirmed submission clears the cart.
func (s *CheckoutService) Checkout(ctx context.Context, cart *cartModel.Cart, details model.ShippingDetails) model.Result {
	if cart.IsEmpty() {
		return model.Failed("cart is empty")
	}

	if err := details.Validate(); err != nil {
		return model.Failed(flattenValidationErrors(err)...)
	}

	processCtx, cancel := context.WithTimeout(ctx, s.processTimeout)
	defer cancel()

	if err := s.processor.ProcessOrder(processCtx, cart, details); err != nil {
		logger.Error("order processing failed", err)
		return model.Failed("order could not be submitted: " + err.Error())
	}

	cart.Clear()
	return model.Completed()
}

// flattenValidationErrors turns ozzo's field error map into stable,
// human-readable messages.
func flattenValidationErrors(err error) []string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+": "+fieldErrs[field].Error())
	}
	return msgs
}
