package forth

import "strconv"

// op is one compiled instruction. Literals carry their value; calls carry the
// callee's name and the body it had when the call was compiled.
type op struct {
	code int
	val  int
	name string
	body []op
}

func (o op) String() string {
	switch o.code {
	case codeLiteral:
		return strconv.Itoa(o.val)
	case codeCall:
		return o.name
	default:
		return codeNames[o.code]
	}
}

const (
	codeLiteral = iota // <INTERNAL>  push the op's value
	codeCall           // <INTERNAL>  run a captured composite body

	// Primitive words, in dictionary seeding order:
	codeAdd  // +      a b -- a+b
	codeSub  // -      a b -- a-b
	codeMul  // *      a b -- a*b
	codeDiv  // /      a b -- a/b
	codeDup  // dup    a -- a a
	codeDrop // drop   a --
	codeSwap // swap   a b -- b a
	codeOver // over   a b -- a b a

	codeMax
	codeFirstPrimitive = codeAdd
)

var codeTable [codeMax]func(e *Evaluator, o op)
var codeNames [codeMax]string

func init() {
	codeTable = [...]func(e *Evaluator, o op){
		(*Evaluator).literal,
		(*Evaluator).call,

		(*Evaluator).add,
		(*Evaluator).sub,
		(*Evaluator).mul,
		(*Evaluator).div,
		(*Evaluator).dup,
		(*Evaluator).drop,
		(*Evaluator).swap,
		(*Evaluator).over,
	}

	codeNames = [...]string{
		"literal",
		"call",

		"+",
		"-",
		"*",
		"/",
		"dup",
		"drop",
		"swap",
		"over",
	}
}

func (e *Evaluator) exec(code []op) {
	for _, o := range code {
		codeTable[o.code](e, o)
	}
}

func (e *Evaluator) literal(o op) { e.push(o.val) }

func (e *Evaluator) call(o op) {
	if e.logfn != nil {
		e.logf(">", "call %v -- s:%v", o.name, e.stack.values)
		defer e.withLogPrefix("	")()
	}
	e.exec(o.body)
}

func (e *Evaluator) add(op) { b, a := e.pop2(); e.push(a + b) }
func (e *Evaluator) sub(op) { b, a := e.pop2(); e.push(a - b) }
func (e *Evaluator) mul(op) { b, a := e.pop2(); e.push(a * b) }

// Division truncates toward zero, as Go's integer division does.
func (e *Evaluator) div(op) {
	b, a := e.pop2()
	if b == 0 {
		e.haltWord(ErrDivisionByZero)
	}
	e.push(a / b)
}

func (e *Evaluator) dup(op)  { e.push(e.peek(0)) }
func (e *Evaluator) over(op) { e.push(e.peek(1)) }
func (e *Evaluator) drop(op) { e.need(1); e.pop() }

func (e *Evaluator) swap(op) {
	b, a := e.pop2()
	e.push(b)
	e.push(a)
}

func (e *Evaluator) push(val int) {
	if err := e.stack.push(val); err != nil {
		e.haltWord(err)
	}
}

func (e *Evaluator) pop() int {
	val, err := e.stack.pop()
	if err != nil {
		e.haltWord(err)
	}
	return val
}

// pop2 pops the right hand operand then the left, after checking that both
// are present.
func (e *Evaluator) pop2() (b, a int) {
	e.need(2)
	return e.pop(), e.pop()
}

func (e *Evaluator) peek(n int) int {
	val, err := e.stack.peek(n)
	if err != nil {
		e.haltWord(err)
	}
	return val
}

func (e *Evaluator) need(n int) {
	if err := e.stack.need(n); err != nil {
		e.haltWord(err)
	}
}
