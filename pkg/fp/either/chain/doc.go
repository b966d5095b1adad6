// Package chain provides a fluent wrapper around either.Either[E, A]
// for building synchronous railway chains.
//
// It composes Chain, Map, Try, OrElse and Fold behind a convenient Chain type.
// This enables ergonomic pipelines without branching on the Either at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from an Either or a value
// - Then: switch to a new Either[E, B] via a function
// - ThenTry: call a function (B, error) and convert the error to a Left
// - Map: transform the Right value (A -> B)
// - Ensure: run side effects on Right without changing the value
// - Recover: replace a Left with the Either produced from it
// - Finally: collapse the chain into a final value via handlers
package chain
