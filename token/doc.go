// Package token provides the text cursor and low-level lexical
// helpers shared by the tern and JSON parsers.
package token
