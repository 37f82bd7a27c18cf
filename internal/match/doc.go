// Package match ranks known names by similarity to an unknown one.
//
// It backs the "did you mean" suggestions attached to answer diagnostics:
//   - NormalizeIdent: folds case and separators so "gitName", "git_name"
//     and "git.name" compare equal
//   - Levenshtein: rune-wise edit distance
//   - Rank / Suggest: scored, deterministic candidate lists
package match
