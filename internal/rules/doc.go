// Package rules implements the keyword-to-document rule table and the
// prompt matcher.
//
// Rules are data, not code: an ordered list of keyword sets, each mapping
// to a document reference, loaded from the project's rules.yaml. Matching
// is case-insensitive substring matching against the whole prompt. It is
// deliberately not word-bounded and not semantic; a short keyword can match
// inside an unrelated word, and that is accepted behavior.
package rules
