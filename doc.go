/* Package forth evaluates a small dialect of FORTH: integer arithmetic, a
handful of stack words, and user defined words.

FORTH programs are sequences of space separated words acting on a stack of
integers.  Numbers push themselves.  Everything else is looked up in a
dictionary, case-insensitively, and run.  The dictionary starts out holding
only the primitive words:

	+ - * /    pop b, pop a, push a op b (division truncates toward zero)
	dup        a -- a a
	drop       a --
	swap       a b -- b a
	over       a b -- a b a

A definition starts with ":", names a word, and runs up to the next ";":

	: double 2 * ;
	3 double      ( leaves 6 )

The body of a definition is compiled when its ";" is read: every word in it
must already be defined, and what it meant at that moment is what the new word
will do, forever.  Redefining a word later changes only what later input
sees:

	: foo 5 ;
	: bar foo 1 + ;
	: foo 6 ;
	bar           ( still leaves 6, since bar captured the first foo )

This also means a word may be redefined in terms of its old self, as in
": foo foo 1 + ;", and that primitives may be shadowed, as in ": swap dup ;".

Each call to Evaluate handles one line atomically: if anything goes wrong, the
stack is put back the way it was before the call, and the error is returned.
Definitions that were completed before the failure remain.

(The parenthesized remarks above are only for the reader; the dialect has no
comment syntax.)
*/
package forth
