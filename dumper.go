package forth

import (
	"fmt"
	"io"
)

type evalDumper struct {
	e   *Evaluator
	out io.Writer
}

func (e *Evaluator) dump(out io.Writer) {
	evalDumper{e: e, out: out}.dump()
}

func (dump evalDumper) dump() {
	fmt.Fprintf(dump.out, "# Evaluator Dump\n")
	dump.dumpStack()
	dump.dumpWords()
}

func (dump evalDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.e.stack.values)
}

func (dump evalDumper) dumpWords() {
	names := dump.e.dict.names()
	fmt.Fprintf(dump.out, "  words: %v\n", len(names))
	for _, name := range names {
		// primitives are only listed once shadowed
		def := dump.e.dict.words[name]
		if def.primitive {
			continue
		}
		fmt.Fprintf(dump.out, "  %v\n", def)
	}
}
