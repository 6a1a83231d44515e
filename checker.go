package optionoids

import (
	"go.uber.org/zap"

	"github.com/Fish-Fur/optionoids/internal/message"
)

// Checker wraps an options set and runs checks against its filtered view.
// Every filter and check method mutates the Checker in place and returns it,
// so calls chain. A Checker is single-owner and not safe for concurrent use.
//
// In hard mode the first failure halts the chain: it is kept as the raised
// error (see Err) and later checks do nothing. In soft mode every failure is
// appended to Errors and the chain continues.
type Checker struct {
	options Options
	params  Options
	keys    []string
	current Options

	hard   bool
	raised *Error
	errs   Errors

	logger *zap.Logger
}

// Option configures a Checker at construction.
type Option func(*Checker)

// WithKeys sets the initial key filter.
func WithKeys(keys ...string) Option {
	return func(c *Checker) { c.keys = normalizeKeys(keys) }
}

// Hard selects the failure policy; true raises, false collects.
func Hard(hard bool) Option {
	return func(c *Checker) { c.hard = hard }
}

// Soft selects the collecting failure policy.
func Soft() Option { return Hard(false) }

// WithLogger sets the logger failures are reported to at debug level.
// Nil loggers are ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a Checker over options. Without options it checks every key and
// runs in hard mode.
func New(options Options, opts ...Option) *Checker {
	c := &Checker{
		options: options,
		params:  Options{},
		hard:    true,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.clip()
	return c
}

// Expecting returns a hard-mode Checker over options scoped to keys.
func Expecting(options Options, keys ...string) *Checker {
	return New(options, WithKeys(keys...))
}

// Checking returns a soft-mode Checker over options scoped to keys.
func Checking(options Options, keys ...string) *Checker {
	return New(options, WithKeys(keys...), Soft())
}

// WithParams replaces the additional parameters merged over the options.
// Parameters win on key collisions. Calls do not accumulate.
func (c *Checker) WithParams(params Options) *Checker {
	c.params = params.Clone()
	c.clip()
	return c
}

// WithParamsOf coerces v (see Coerce) and uses it as the parameters. A value
// that cannot be coerced is a RequiredDataUnavailable failure for the "params"
// check, and the previous parameters are kept.
func (c *Checker) WithParamsOf(v any) *Checker {
	params, err := Coerce(v)
	if err != nil {
		c.logger.Debug("params not coercible", zap.Error(err))
		return c.fail(NewError(KindRequiredDataUnavailable, WithCheck(CheckParams)))
	}
	return c.WithParams(params)
}

// CurrentOptions returns a copy of the filtered view.
func (c *Checker) CurrentOptions() Options { return c.current.Clone() }

// GlobalOptions returns a copy of the options merged with the parameters,
// without the key filter.
func (c *Checker) GlobalOptions() Options { return c.merged() }

// Keys returns a copy of the current key filter.
func (c *Checker) Keys() []string { return append([]string(nil), c.keys...) }

// IsHard reports whether the Checker raises on the first failure.
func (c *Checker) IsHard() bool { return c.hard }

// ---- filtering ----

// All removes the key filter so every key is in view.
func (c *Checker) All() *Checker {
	c.keys = nil
	c.clip()
	return c
}

// And is an alias for All.
func (c *Checker) And() *Checker { return c.All() }

// That replaces the key filter. The keys need not exist in the options; only
// those that do are in view.
func (c *Checker) That(keys ...string) *Checker {
	c.keys = normalizeKeys(keys)
	c.clip()
	return c
}

// Minus removes keys from the key filter.
func (c *Checker) Minus(keys ...string) *Checker {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	kept := c.keys[:0:0]
	for _, k := range c.keys {
		if _, ok := drop[k]; !ok {
			kept = append(kept, k)
		}
	}
	c.keys = kept
	c.clip()
	return c
}

// Plus adds keys to the key filter.
func (c *Checker) Plus(keys ...string) *Checker {
	c.keys = normalizeKeys(append(c.Keys(), keys...))
	c.clip()
	return c
}

// ---- key presence ----

// OnlyThese fails with UnexpectedKeys when the view holds keys outside allowed.
// Allowed keys missing from the view are fine.
func (c *Checker) OnlyThese(allowed ...string) *Checker {
	if c.halted() {
		return c
	}
	ok := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		ok[k] = struct{}{}
	}
	var unexpected []string
	for _, k := range c.current.Keys() {
		if _, found := ok[k]; !found {
			unexpected = append(unexpected, k)
		}
	}
	if len(unexpected) > 0 {
		c.fail(NewError(KindUnexpectedKeys, WithErrorKeys(unexpected...)))
	}
	return c
}

// Exist fails with RequiredDataUnavailable when there is no key filter, and
// with MissingKeys when filter keys are absent from the options.
func (c *Checker) Exist() *Checker {
	if c.halted() {
		return c
	}
	if len(c.keys) == 0 {
		return c.fail(NewError(KindRequiredDataUnavailable, WithCheck(CheckPresent)))
	}
	var missing []string
	for _, k := range c.keys {
		if _, ok := c.current[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		c.fail(NewError(KindMissingKeys, WithErrorKeys(missing...)))
	}
	return c
}

// ---- value population ----

// Populated fails with UnexpectedBlankValue listing every blank value.
func (c *Checker) Populated() *Checker {
	return c.failOn(IsBlank, KindUnexpectedBlankValue)
}

// AllPopulated is an alias for Populated.
func (c *Checker) AllPopulated() *Checker { return c.Populated() }

// Blank fails with UnexpectedPopulatedValue listing every non-blank value.
func (c *Checker) Blank() *Checker {
	return c.failOn(IsPresent, KindUnexpectedPopulatedValue)
}

// AllBlank is an alias for Blank.
func (c *Checker) AllBlank() *Checker { return c.Blank() }

// NotNilValues fails with UnexpectedNilValue listing every nil value.
func (c *Checker) NotNilValues() *Checker {
	return c.failOn(IsNil, KindUnexpectedNilValue)
}

// NilValues fails with UnexpectedNonNilValue listing every non-nil value.
func (c *Checker) NilValues() *Checker {
	return c.failOn(func(v any) bool { return !IsNil(v) }, KindUnexpectedNonNilValue)
}

// ---- key count ----

// OneOrNone fails with UnexpectedMultipleKeys when more than one key is in view.
func (c *Checker) OneOrNone() *Checker {
	if c.halted() || len(c.current) <= 1 {
		return c
	}
	keys := c.current.Keys()
	return c.fail(NewError(KindUnexpectedMultipleKeys,
		WithErrorKeys(keys...),
		WithMessage("Expected a maximum of one key, but found: "+message.Sentence(keys)),
	))
}

// JustOne fails with RequiredDataUnavailable when the view is empty and with
// UnexpectedMultipleKeys when it holds more than one key.
func (c *Checker) JustOne() *Checker {
	if c.halted() {
		return c
	}
	switch len(c.current) {
	case 0:
		return c.fail(NewError(KindRequiredDataUnavailable, WithCheck(CheckOneRequired)))
	case 1:
		return c
	}
	keys := c.current.Keys()
	return c.fail(NewError(KindUnexpectedMultipleKeys,
		WithErrorKeys(keys...),
		WithMessage("Expected exactly one key, but found: "+message.Sentence(keys)),
	))
}

// OneOrMore fails with ExpectedMultipleKeys when the view is empty.
func (c *Checker) OneOrMore() *Checker {
	if c.halted() || len(c.current) > 0 {
		return c
	}
	return c.fail(NewError(KindExpectedMultipleKeys))
}

// ---- types and variants ----

// OfTypes fails with UnexpectedValueType listing every non-nil value that
// matches none of types.
func (c *Checker) OfTypes(types ...Type) *Checker {
	if c.halted() {
		return c
	}
	var failed []string
	for _, k := range c.current.Keys() {
		v := c.current[k]
		if IsNil(v) {
			continue
		}
		if !matchesAny(v, types) {
			failed = append(failed, k)
		}
	}
	if len(failed) > 0 {
		c.fail(NewError(KindUnexpectedValueType, WithErrorKeys(failed...), WithTypes(typeNames(types)...)))
	}
	return c
}

// OfType is an alias for OfTypes.
func (c *Checker) OfType(types ...Type) *Checker { return c.OfTypes(types...) }

// Types is an alias for OfTypes.
func (c *Checker) Types(types ...Type) *Checker { return c.OfTypes(types...) }

// Type is an alias for OfTypes.
func (c *Checker) Type(types ...Type) *Checker { return c.OfTypes(types...) }

// PossibleValues fails with UnexpectedValueVariant listing every non-nil value
// equal to none of variants.
func (c *Checker) PossibleValues(variants ...any) *Checker {
	if c.halted() {
		return c
	}
	var failed []string
	for _, k := range c.current.Keys() {
		v := c.current[k]
		if IsNil(v) {
			continue
		}
		if !equalsAny(v, variants) {
			failed = append(failed, k)
		}
	}
	if len(failed) > 0 {
		c.fail(NewError(KindUnexpectedValueVariant, WithErrorKeys(failed...), WithVariants(variants...)))
	}
	return c
}

// ---- composites ----

// Identifier checks that values are non-blank strings or symbols.
func (c *Checker) Identifier() *Checker {
	return c.OfType(String, Symbol).Populated()
}

// Flag checks that values are non-nil booleans. false is a valid flag.
func (c *Checker) Flag() *Checker {
	return c.OfType(Bool).NotNilValues()
}

// Required checks that the filter keys exist and their values are populated.
func (c *Checker) Required() *Checker {
	return c.Exist().Populated()
}

// ---- results ----

// Errors returns the failures collected in soft mode, in check order. It is
// always empty in hard mode.
func (c *Checker) Errors() Errors { return append(Errors(nil), c.errs...) }

// Failed reports whether soft mode collected any failure.
func (c *Checker) Failed() bool { return len(c.errs) > 0 }

// Err returns the raised failure in hard mode, or the collected failures in
// soft mode. It returns nil when no check failed.
func (c *Checker) Err() error {
	if c.hard {
		if c.raised == nil {
			return nil
		}
		return c.raised
	}
	if len(c.errs) == 0 {
		return nil
	}
	return c.Errors()
}

// Must panics with Err when a check failed and returns the Checker otherwise.
func (c *Checker) Must() *Checker {
	if err := c.Err(); err != nil {
		panic(err)
	}
	return c
}

// ---- internals ----

func (c *Checker) halted() bool { return c.raised != nil }

func (c *Checker) fail(e *Error) *Checker {
	c.logger.Debug("option check failed",
		zap.String("kind", string(e.Kind)),
		zap.Strings("keys", e.Keys),
		zap.Bool("hard", c.hard),
	)
	if c.hard {
		if c.raised == nil {
			c.raised = e
		}
		return c
	}
	c.errs = append(c.errs, e)
	return c
}

func (c *Checker) failOn(pred func(any) bool, kind Kind) *Checker {
	if c.halted() {
		return c
	}
	var failed []string
	for _, k := range c.current.Keys() {
		if pred(c.current[k]) {
			failed = append(failed, k)
		}
	}
	if len(failed) > 0 {
		c.fail(NewError(kind, WithErrorKeys(failed...)))
	}
	return c
}

func (c *Checker) merged() Options {
	out := make(Options, len(c.options)+len(c.params))
	for k, v := range c.options {
		out[k] = v
	}
	for k, v := range c.params {
		out[k] = v
	}
	return out
}

// clip recomputes the filtered view.
func (c *Checker) clip() {
	all := c.merged()
	if len(c.keys) == 0 {
		c.current = all
		return
	}
	view := make(Options, len(c.keys))
	for _, k := range c.keys {
		if v, ok := all[k]; ok {
			view[k] = v
		}
	}
	c.current = view
}

// normalizeKeys drops empty keys and duplicates, keeping first-seen order.
func normalizeKeys(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func matchesAny(v any, types []Type) bool {
	for _, t := range types {
		if t.Match != nil && t.Match(v) {
			return true
		}
	}
	return false
}

func equalsAny(v any, variants []any) bool {
	for _, variant := range variants {
		if sameValue(v, variant) {
			return true
		}
	}
	return false
}
