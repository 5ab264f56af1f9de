package services

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingService computes the exact monetary total of an order at placement
// time. The VIP discount rate is a configuration input of the service, not a
// literal inside the placement logic, so tiered or campaign-based discounting
// can replace it without touching the engine.
//
// Example:
//
//	pricing, err := services.NewPricingService(decimal.RequireFromString("0.10"))
//	if err != nil {
//	    return err
//	}
//	total, err := pricing.Total(anOrder)
type PricingService struct {
	vipDiscountRate decimal.Decimal
}

// NewPricingService creates a pricing service with the given VIP discount rate.
// The rate is a fraction of the pre-discount total and must be in [0, 1).
func NewPricingService(vipDiscountRate decimal.Decimal) (PricingService, error) {
	if vipDiscountRate.IsNegative() || vipDiscountRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return PricingService{}, errs.NewValueIsInvalidErrorWithCause("vipDiscountRate is invalid",
			fmt.Errorf("%s is not in [0, 1)", vipDiscountRate))
	}

	return PricingService{vipDiscountRate: vipDiscountRate}, nil
}

// VIPDiscountRate returns the configured VIP discount rate.
func (s PricingService) VIPDiscountRate() decimal.Decimal {
	return s.vipDiscountRate
}

// Total computes the order's total: the sum of all item subtotals accumulated
// left-to-right from zero, with the VIP discount applied once on the
// pre-discount total when the owning customer holds the VIP flag.
//
// The discount is never compounded: it is computed on the item sum only.
func (s PricingService) Total(o *order.Order) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := kernel.ZeroMoney()
	for _, item := range o.Items() {
		subtotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total = total.Add(subtotal)
	}

	if !o.IsVIPCustomer() {
		return total, nil
	}

	discount, err := total.Multiply(s.vipDiscountRate)
	if err != nil {
		return kernel.Money{}, err
	}

	return total.Subtract(discount)
}
