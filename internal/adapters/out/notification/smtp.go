// Package notification sends customer-facing emails over SMTP.
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"ordering/internal/core/domain/model/order"
)

// SMTPSink implements ports.NotificationSink over plain SMTP.
//
// The customer profile service owns real addresses; this service only knows
// customer ids, so recipients are formed as <customerID>@recipientDomain and
// resolved by the mail gateway.
type SMTPSink struct {
	addr            string
	from            string
	recipientDomain string
	send            func(addr string, from string, to []string, msg []byte) error
}

// NewSMTPSink creates a sink that delivers through the SMTP server at addr
// (host:port) using the given sender address.
func NewSMTPSink(addr string, from string, recipientDomain string) *SMTPSink {
	return &SMTPSink{
		addr:            addr,
		from:            from,
		recipientDomain: recipientDomain,
		send: func(addr string, from string, to []string, msg []byte) error {
			return smtp.SendMail(addr, nil, from, to, msg)
		},
	}
}

// SendOrderConfirmation emails the customer that their order was placed,
// including the fixed total.
func (s *SMTPSink) SendOrderConfirmation(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	total := "unknown"
	if totalValue := aggregate.TotalValue(); totalValue != nil {
		total = totalValue.String()
	}

	to := fmt.Sprintf("%s@%s", aggregate.CustomerID().String(), s.recipientDomain)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: Order %s confirmed\r\n", aggregate.ID().String())
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Your order %s has been placed. Total: %s\r\n", aggregate.ID().String(), total)

	if err := s.send(s.addr, s.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}

	return nil
}
