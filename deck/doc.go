// Package deck implements the pure slide model for ppresent.
//
// A Deck is parsed from a flat sequence of document lines with a literal
// heading-prefix rule. Slides are immutable values; slide indices are
// 1-based and always clamped into deck bounds.
package deck
