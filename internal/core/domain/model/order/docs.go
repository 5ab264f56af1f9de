// Package order provides domain entities and business logic for order placement
// in the e-commerce system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, total, and lifecycle
//   - Item: An immutable order line with product, exact price, and quantity
//   - Status: A state machine that enforces valid order status transitions
//   - OrderPlacedEvent: The integration event raised when an order is placed
//
// Key business rules:
//   - Orders must have a valid unique identifier and customer
//   - Order status follows a defined workflow: Draft -> Placed -> Shipped -> Delivered
//   - Items can only be added while the order is in Draft status
//   - Placement requires Draft status and at least one item; it fixes the order total
//   - The total is set exactly once, at placement time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
