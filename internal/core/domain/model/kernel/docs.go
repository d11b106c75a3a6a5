// Package kernel holds the value objects shared by every aggregate of the
// ice-tube back office: identifiers and the normalized product size that ties
// orders to inventory records.
package kernel
