// Package selector builds CSS selector strings from typed parts.
//
// A compound selector is a sequence of simple parts which must be appended in
// the order CSS defines for them:
//
//	element#id.class[attr]:pseudoClass::pseudoElement
//	          \----/\----/\----------/
//	          may occur several times
//
// Element, id and pseudo-element occur at most once. Compound or already
// combined selectors can be joined with one of the combinators ' ', '+', '~'
// or '>' into a complex selector.
//
// Every value returned by this package is immutable: appending a part returns
// a new compound and leaves the receiver untouched, so a partially built
// selector may be used as a common prefix for several others. Validation
// failures are sticky, the first one is kept by the returned selector and is
// reported by Err and Render.
package selector
