// Package codec reads entry files and writes built trees.
//
// Entry files list (path, value) pairs in YAML or JSON (comments and trailing
// commas allowed):
//
//	- path: git.name
//	  value: Alice
//	- path: [git, email]
//	  value: a@x.com
//
// Trees are written as JSON, YAML, TOML, CBOR or back as an entry file with
// one entry per leaf. The CBOR form uses Core
// Deterministic Encoding, so Digest yields the same value for equal trees
// however their entries were ordered.
package codec
