// Package optionoids checks the shape and content of keyword-style option
// sets (map[string]any) passed into functions.
//
// A Checker holds the options, an optional key filter and a failure policy:
//
// - Hard mode (Expecting) stops at the first failure and reports it via Err.
// - Soft mode (Checking) collects every failure into Errors and keeps going.
//
// Filters (That/Plus/Minus/All) choose which keys the next checks look at;
// checks (Exist, Required, Populated, OfType, PossibleValues, JustOne, ...)
// inspect only that filtered view.
//
// Typical usage:
//
//	func Connect(opts optionoids.Options) error {
//		err := opts.Expecting("host", "port").Required().
//			That("port").OfType(optionoids.Int).
//			That("tls").Flag().
//			All().OnlyThese("host", "port", "tls").
//			Err()
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// Failures are *Error values with a Kind and a payload (keys, expected types
// or variants). Use errors.Is with the Err* sentinels, or AsError/AsErrors.
//
// Sub-packages:
// - source loads Options from JSON, YAML, .env files, the environment and URL values.
// - middleware, middleware/gin and middleware/echo check HTTP request parameters.
// - cmd/optionoids checks documents from the command line.
package optionoids
