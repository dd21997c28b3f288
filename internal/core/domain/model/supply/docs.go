// Package supply provides the supplier delivery ("supply") aggregate.
//
// A supply is created together with its supply document and line items and
// deleted in reverse order. Line prices are the prices agreed with the
// supplier, not the catalog prices; TotalCost is always the recomputed sum of
// the lines.
//
// Status workflow:
//
//	ordered -> shipped -> delivered
//	ordered -> cancelled
//	shipped -> cancelled
package supply
