// Package diagnostic provides structured errors, warnings and notes produced
// while validating form schemas and extracting answers.
//
// Key capabilities:
//   - Stable snake_case codes per finding
//   - Field name and path attached to each finding
//   - "Did you mean" suggestions for unknown names
//   - Folding all errors into a single error value
package diagnostic
