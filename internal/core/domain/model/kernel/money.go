package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNotConstructed is returned when a Money instance was not created
	// through one of the constructor functions.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"money must be created via NewMoneyFromString, NewMoneyFromDecimal, or ZeroMoney")

	// ErrMoneyFormatIsInvalid is returned when a textual amount is not a valid
	// decimal numeral.
	ErrMoneyFormatIsInvalid = errors.New("money amount is not a valid decimal numeral")

	// ErrMoneyAmountIsNegative is returned when a construction or an arithmetic
	// operation would produce a negative amount.
	ErrMoneyAmountIsNegative = errors.New("money amount must not be negative")
)

// Money is an immutable value object representing an exact, non-negative
// monetary amount. It is backed by an arbitrary-precision decimal so that
// amounts are never subject to binary floating-point rounding error.
//
// Money maintains one invariant: the amount is always >= 0. Every operation
// that could violate it (construction from a negative value, subtraction,
// multiplication by a negative scalar) fails with ErrMoneyAmountIsNegative
// instead of producing an invalid instance.
//
// Arithmetic methods return new instances; a Money value never changes after
// construction. Equality and ordering compare the exact decimal value.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("10.00")
//	total, _ := price.MultiplyInt(2)
//	fmt.Println(total) // 20
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoneyFromString parses a culture-invariant decimal numeral into a Money.
// Returns ErrMoneyFormatIsInvalid if the text is not a valid decimal numeral
// and ErrMoneyAmountIsNegative if the parsed value is negative.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrMoneyFormatIsInvalid, s)
	}

	return NewMoneyFromDecimal(amount)
}

// NewMoneyFromDecimal creates a Money from a decimal value.
// Returns ErrMoneyAmountIsNegative if the value is negative.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrMoneyAmountIsNegative, amount)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns the additive identity, an amount of exactly 0.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two amounts.
// The sum of two non-negative amounts is non-negative, so Add never fails.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Subtract returns the difference of two amounts.
// Returns ErrMoneyAmountIsNegative if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrMoneyAmountIsNegative, m.amount, other.amount)
	}

	return Money{
		amount: result,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Multiply returns the amount multiplied by a decimal factor.
// The factor itself is not required to be non-negative, but the result is:
// a negative product fails with ErrMoneyAmountIsNegative.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	result := m.amount.Mul(factor)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s * %s", ErrMoneyAmountIsNegative, m.amount, factor)
	}

	return Money{
		amount: result,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MultiplyInt returns the amount multiplied by an integer scalar.
func (m Money) MultiplyInt(n int) (Money, error) {
	return m.Multiply(decimal.NewFromInt(int64(n)))
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsEqual compares two amounts by exact decimal value.
// Trailing zeros do not affect equality: 10.0 equals 10.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Compare orders two amounts by exact decimal value.
// Returns -1 if m < other, 0 if equal, and +1 if m > other.
func (m Money) Compare(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsZero reports whether the amount is exactly 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks if the Money was properly constructed.
// Returns ErrMoneyIsNotConstructed for a zero-value instance.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
