package forth

// Evaluator executes lines of input against its own stack and dictionary.
// An Evaluator is not safe for concurrent use; independent Evaluators share
// nothing.
type Evaluator struct {
	logging

	stack stack
	dict  dictionary

	// word is the input token being processed, used to attribute errors.
	word string
}

// A definition is captured from the token after ":" up to the next ";".
// Body tokens are only resolved once the closing ";" is reached.
type definer struct {
	named bool
	name  string
	body  []Token
}

func (e *Evaluator) evaluate(line string) {
	var def *definer
	tz := NewTokenizer(line)
	for {
		tok, ok, err := tz.Next()
		if err != nil {
			e.halt(err)
		} else if !ok {
			break
		}
		e.word = tok.Text

		switch {
		case def == nil:
			def = e.interpret(tok)

		case !def.named:
			if tok.Kind != WordToken || tok.Text == ":" || tok.Text == ";" {
				e.haltWord(ErrInvalidDefinition)
			}
			def.named, def.name = true, tok.Text

		case tok.Kind == WordToken && tok.Text == ":":
			e.haltWord(ErrInvalidDefinition)

		case tok.Kind == WordToken && tok.Text == ";":
			e.logf(":", "define %v %v", def.name, def.body)
			e.haltif(e.dict.define(def.name, def.body))
			def = nil

		default:
			def.body = append(def.body, tok)
		}
	}

	if def != nil {
		e.word = ":"
		if def.named {
			e.word = def.name
		}
		e.haltWord(ErrUnbalancedDefinition)
	}
}

// interpret handles one token in normal mode, returning a new definer if the
// token begins a definition.
func (e *Evaluator) interpret(tok Token) *definer {
	if tok.Kind == IntegerToken {
		e.logf(">", "push %v", tok.Value)
		e.push(tok.Value)
		return nil
	}

	switch tok.Text {
	case ":":
		return &definer{}
	case ";":
		e.haltWord(ErrUnbalancedDefinition)
	}

	def, ok := e.dict.lookup(tok.Text)
	if !ok {
		e.haltWord(ErrUnknownWord)
	}
	e.logf(">", "exec %v -- s:%v", def.name, e.stack.values)
	e.exec(def.code)
	return nil
}
