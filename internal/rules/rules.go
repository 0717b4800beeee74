package rules

import "github.com/jmpinto/gazeta/internal/model"

// Op is the quantifier applied to one rule element
type Op int

const (
	One  Op = iota // Exactly one matching token
	Opt            // Zero or one matching token
	Star           // Zero or more matching tokens
	Plus           // One or more matching tokens
	Not            // Exactly one token that must NOT match
)

// Predicate tests a single token
type Predicate func(Token) bool

// Element pairs a predicate with a quantifier
type Element struct {
	Pred Predicate
	Op   Op
}

// Rule is an ordered token-sequence pattern producing one match category
type Rule struct {
	Category model.MatchCategory
	Elements []Element
}

// Match attempts the rule at token index start. On success it returns
// the index one past the last consumed token. Repetition is greedy but
// backtracks, so a trailing required element can reclaim tokens from a
// preceding Star/Plus (an all-caps banner split across two lines must
// leave tokens for the second line).
func (r *Rule) Match(tokens []Token, start int) (int, bool) {
	return matchSeq(r.Elements, tokens, start)
}

func matchSeq(elems []Element, tokens []Token, i int) (int, bool) {
	if len(elems) == 0 {
		return i, true
	}
	e := elems[0]
	rest := elems[1:]

	switch e.Op {
	case One:
		if i < len(tokens) && e.Pred(tokens[i]) {
			return matchSeq(rest, tokens, i+1)
		}
	case Not:
		if i < len(tokens) && !e.Pred(tokens[i]) {
			return matchSeq(rest, tokens, i+1)
		}
	case Opt:
		if i < len(tokens) && e.Pred(tokens[i]) {
			if end, ok := matchSeq(rest, tokens, i+1); ok {
				return end, true
			}
		}
		return matchSeq(rest, tokens, i)
	case Star, Plus:
		max := i
		for max < len(tokens) && e.Pred(tokens[max]) {
			max++
		}
		min := i
		if e.Op == Plus {
			min = i + 1
		}
		for j := max; j >= min; j-- {
			if end, ok := matchSeq(rest, tokens, j); ok {
				return end, true
			}
		}
	}
	return 0, false
}

// Common predicates

func isUpper(t Token) bool   { return t.IsUpper() }
func isPunct(t Token) bool   { return t.IsPunct() }
func isNewline(t Token) bool { return t.IsNewline() }
func likeNum(t Token) bool   { return t.LikeNum() }

func isSingleLetter(t Token) bool {
	return t.IsAlpha() && t.RuneLen() == 1
}

func text(want string) Predicate {
	return func(t Token) bool { return t.Text == want }
}

func textIn(options ...string) Predicate {
	set := make(map[string]bool, len(options))
	for _, o := range options {
		set[o] = true
	}
	return func(t Token) bool { return set[t.Text] }
}

func lower(want string) Predicate {
	return func(t Token) bool { return t.Lower() == want }
}

func lowerIn(options ...string) Predicate {
	set := make(map[string]bool, len(options))
	for _, o := range options {
		set[o] = true
	}
	return func(t Token) bool { return set[t.Lower()] }
}
