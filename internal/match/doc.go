// Package match ranks known names by edit distance so that unresolved
// references can be reported with "did you mean" suggestions.
package match
