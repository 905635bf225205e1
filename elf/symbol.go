package elf

import "github.com/ianlancetaylor/demangle"

// PrettyName returns the symbol's name run through a C++/Rust demangler.
// Names that don't parse as mangled symbols are returned unchanged, so
// this is always safe to call regardless of the symbol's source language.
func (symbol *SymbolRecord) PrettyName() string {
	return demangle.Filter(symbol.Name)
}
