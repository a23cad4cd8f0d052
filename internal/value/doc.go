// Package value defines the scalar values a template computes and the
// expression trees that compute them.
//
// Both Value and Expr are closed unions: the unexported marker methods keep
// implementations inside this package, so consumers can switch over the
// concrete types exhaustively.
//
// Expressions are built programmatically. There is no textual syntax.
package value
