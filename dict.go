package forth

import (
	"sort"
	"strings"
)

// Definition is the meaning of a dictionary word: either one of the built-in
// primitives, or a composite body compiled when the word was defined.
type Definition struct {
	name      string
	primitive bool
	code      []op
}

// Name returns the word's canonical, lower-case name.
func (def Definition) Name() string { return def.name }

// Primitive reports whether the definition is built in.
func (def Definition) Primitive() bool { return def.primitive }

// String renders the definition in source form, e.g. ": double 2 * ;".
// Calls to composite words render with the callee's name at the time the
// definition was compiled.
func (def Definition) String() string {
	var sb strings.Builder
	sb.WriteString(": ")
	sb.WriteString(def.name)
	if def.primitive {
		sb.WriteString(" <primitive>")
	} else {
		for _, o := range def.code {
			sb.WriteByte(' ')
			sb.WriteString(o.String())
		}
	}
	sb.WriteString(" ;")
	return sb.String()
}

// The dictionary maps canonical word names to their current definitions.
// Definitions are never removed, only replaced; a replacement is seen by
// later lookups, while bodies already compiled keep what they captured.
type dictionary struct {
	words map[string]Definition
}

func (dict *dictionary) init() {
	dict.words = make(map[string]Definition, codeMax)
	for code := codeFirstPrimitive; code < codeMax; code++ {
		name := codeNames[code]
		dict.words[name] = Definition{
			name:      name,
			primitive: true,
			code:      []op{{code: code}},
		}
	}
}

func (dict dictionary) lookup(name string) (Definition, bool) {
	def, ok := dict.words[strings.ToLower(name)]
	return def, ok
}

func (dict dictionary) names() []string {
	names := make([]string, 0, len(dict.words))
	for name := range dict.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// define compiles body against the dictionary as it stands now, then binds
// name to the result. Nothing is bound if any body word is undefined.
func (dict *dictionary) define(name string, body []Token) error {
	code, err := dict.compile(body)
	if err != nil {
		return err
	}
	name = strings.ToLower(name)
	dict.words[name] = Definition{name: name, code: code}
	return nil
}

func (dict dictionary) compile(body []Token) ([]op, error) {
	code := make([]op, 0, len(body))
	for _, tok := range body {
		if tok.Kind == IntegerToken {
			code = append(code, op{code: codeLiteral, val: tok.Value})
			continue
		}
		def, ok := dict.lookup(tok.Text)
		switch {
		case !ok:
			return nil, &WordError{Word: tok.Text, Err: ErrUnknownWord}
		case def.primitive:
			code = append(code, def.code...)
		default:
			code = append(code, op{code: codeCall, name: def.name, body: def.code})
		}
	}
	return code, nil
}
