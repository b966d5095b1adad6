// Package either provides Either[E, A], a value holding exactly one of a Left
// E (failure or alternative) or a Right A (success), and the pure combinators
// over it. Functions take the Either first and the continuation after it.
//
// Highlights:
// - Left/Right/FromPredicate/FromNullable/FromOption/TryCatch/Try/ParseJSON: construct
// - Map/MapLeft/Bimap: transform one or both sides
// - Chain/ChainFirst/Ap/ApFirst/ApSecond/Flatten/Duplicate/Extend: sequence, stopping at the first Left
// - Fold/GetOrElse/Reduce/ReduceRight/FoldMap/ToUnion: eliminate
// - Alt/OrElse/Swap/Elem/Exists/FilterOrElse: alternatives and tests
// - Traverse/Sequence/TraverseSlice/SequenceSlice: traverse into an effect or over a slice
// - GetEq/GetShow/GetSemigroup: instances built from the instances of each side
// - GetCompactable/GetFilterable/GetWitherable: filtering with an empty Left
// - GetApplicativeValidation/GetAltValidation: accumulate Lefts instead of stopping
// - Do/BindTo/Bind/Let/ApS/Tupled/ApT: build a record or tuple step by step
//
// No function in this package panics for a valid Either. The zero Either is a
// Left holding the zero E.
package either
