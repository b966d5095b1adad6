// Package option provides Option[A], a value that is either present (Some)
// or absent (None). It is the optional container consumed by the either
// package's FromOption, Compact, FilterMap and Wither.
package option
