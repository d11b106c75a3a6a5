// Package services provides domain services that coordinate the Order and
// inventory Item aggregates. Neither aggregate knows about the other; the
// rules that keep stock and orders consistent live here.
//
// The package includes:
//   - Pricing: resolves the unit price an order is frozen with
//   - OrderPlacement: creates an order and takes its quantity from stock
//   - OrderLifecycle: moves an order through its statuses and applies the
//     stock effect of each move
//
// Services are pure: they mutate the aggregates they are given and never
// persist anything. Command handlers load the aggregates inside a unit of
// work, call a service and save the results in the same transaction.
package services
