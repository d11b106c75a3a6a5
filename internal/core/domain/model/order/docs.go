// Package order provides the Order aggregate: a customer order for a quantity of
// ice tubes of one size, priced once at creation and then driven through its
// delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the customer, the snapshot price and total,
//     the status, the assigned rider and the delivery evidence
//   - Status: the closed set of lifecycle states and the transition table
//   - DeliveryMode: whether the customer picks the order up or it is delivered
//   - Customer: name, address and contact number of the buyer
//
// Key business rules:
//   - Price and total are fixed when the order is created and never recomputed,
//     whatever happens to the inventory price afterwards
//   - Completed is final; Cancelled can only be left by reactivation, which
//     re-deducts stock (the stock side is coordinated by domain/services)
//   - Orders are archived, never deleted, and only once they are terminal
package order
