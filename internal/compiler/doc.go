// Package compiler converts the raw bytes of machine files into machine definitions.
//
// Two encodings are supported: the line-oriented tabular format and the structured
// object format (JSON or YAML). Both are permissive about rules: a malformed rule
// entry is skipped and counted, while the rest of the machine still loads.
package compiler
