// Package resolver walks a token list against the command tree to find the
// deepest matching node. Matching is exact string equality on one token at a
// time; there is no prefix or fuzzy matching. The resolver performs no I/O
// and never mutates the tree.
package resolver
