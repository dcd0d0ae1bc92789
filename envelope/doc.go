// Package envelope provides Envelope, a Result that also carries an outcome
// code and optional transport data.
//
// An Envelope always has a code, even on success: a Success code is a value
// in its own right, not merely the absence of failure. Like a Result it holds
// errors, informational messages and a value, and its success state is
// derived from the error list alone. It may also carry multi-value Headers,
// a Stream payload and metadata.
//
// Envelopes are assembled with a Builder, which is a plain accumulator: it
// does not check that the code agrees with the errors. The built Envelope
// derives everything (IsSuccess, ErrorSummary, ErrorsByCategory, ...) from
// its errors, so the two can never disagree.
//
//	env := envelope.NewBuilder[User]().
//	    WithCode(code.Success).
//	    WithValue(user).
//	    AddHeader("ETag", etag).
//	    Build()
//
// Combinators mirror the result package: Map, Bind and Match are package
// functions, Tap and OnFailure are methods, and ToResult / FromResult convert
// between the two.
package envelope
