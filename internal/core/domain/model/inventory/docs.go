// Package inventory models the stock ledger: one Item per product size with a
// unit price, a quantity on hand and a stock status derived from that quantity.
//
// Key business rules:
//   - Quantity never goes below zero; a deduction that would do so fails with
//     errs.InsufficientStockError and leaves the item untouched
//   - Status is recomputed on every quantity change (see StatusForQuantity)
//   - Items are never deleted, only archived; archived items reject changes
package inventory
