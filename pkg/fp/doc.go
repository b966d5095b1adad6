// Package fp contains the small typeclass contracts shared by the either,
// option and task packages. Instances are passed explicitly as values, there
// is no ambient resolution.
//
// Highlights:
// - Eq/Show/Semigroup/Monoid: contracts plus Func adapters
// - EqStrict/EqString/ShowString/MonoidString/MonoidSum/MonoidError: ready instances
// - Applicative: the Of/Map dictionary used by traversals into another effect
// - Separated: the pair produced by partitioning
// - Tuple1/Tuple2/Tuple3: fixed-arity tuples for Tupled/ApT
package fp
