package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type SymbolSuite struct{}

func TestSymbol(t *testing.T) {
	suite.RunTests(t, &SymbolSuite{})
}

func (SymbolSuite) TestPrettyNameDemanglesMangledSymbol(t *testing.T) {
	symbol := &SymbolRecord{Name: "_Z3fooi"}
	expect.Equal(t, "foo(int)", symbol.PrettyName())
}

func (SymbolSuite) TestPrettyNamePassesThroughUnmangledSymbol(t *testing.T) {
	symbol := &SymbolRecord{Name: "main"}
	expect.Equal(t, "main", symbol.PrettyName())
}
