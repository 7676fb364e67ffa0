package token

// Kind distinguishes the two token variants.
type Kind int

const (
	// OperandKind marks a token carrying an operand name.
	OperandKind Kind = iota

	// OperatorKind marks a token carrying an Operator.
	OperatorKind
)

// String returns "operand" or "operator".
func (k Kind) String() string {
	if k == OperatorKind {
		return "operator"
	}
	return "operand"
}

// Token is a single operand or operator. The zero value is an operand
// with an empty name.
type Token struct {
	kind Kind
	name string
	op   Operator
}

// NewOperand creates an operand token carrying name verbatim.
func NewOperand(name string) Token {
	return Token{kind: OperandKind, name: name}
}

// NewOperator creates an operator token.
func NewOperator(op Operator) Token {
	return Token{kind: OperatorKind, op: op}
}

// Kind returns the token variant.
func (t Token) Kind() Kind {
	return t.kind
}

// IsOperand reports whether t is an operand.
func (t Token) IsOperand() bool {
	return t.kind == OperandKind
}

// IsOperator reports whether t is an operator.
func (t Token) IsOperator() bool {
	return t.kind == OperatorKind
}

// Name returns the operand name. It is empty for operator tokens.
func (t Token) Name() string {
	return t.name
}

// Operator returns the operator and true for operator tokens.
// For operands it returns false.
func (t Token) Operator() (Operator, bool) {
	if t.kind != OperatorKind {
		return 0, false
	}
	return t.op, true
}

// String returns the canonical form of the token: the operand name, or the
// operator symbol.
func (t Token) String() string {
	if t.kind == OperatorKind {
		return t.op.String()
	}
	return t.name
}
