package engine

// Term is a variable scaled by an integer coefficient.
type Term struct {
	Var   Var
	Coeff int64
}

// LinearExpr is a weighted sum of variables plus a constant offset. The zero
// value is an empty expression and ready to use.
type LinearExpr struct {
	terms  []Term
	offset int64
}

// Constant returns an expression holding only the constant k.
func Constant(k int64) LinearExpr {
	return LinearExpr{offset: k}
}

// Sum returns an expression adding the given variables with coefficient 1.
func Sum(vars ...Var) LinearExpr {
	e := LinearExpr{}
	for _, v := range vars {
		e.AddVar(v)
	}
	return e
}

// AddVar appends v with coefficient 1.
func (e *LinearExpr) AddVar(v Var) {
	e.AddTerm(v, 1)
}

// AddTerm appends v scaled by coeff.
func (e *LinearExpr) AddTerm(v Var, coeff int64) {
	e.terms = append(e.terms, Term{Var: v, Coeff: coeff})
}

// AddConstant adds k to the constant offset.
func (e *LinearExpr) AddConstant(k int64) {
	e.offset += k
}

// Add appends all terms and the offset of other.
func (e *LinearExpr) Add(other LinearExpr) {
	e.terms = append(e.terms, other.terms...)
	e.offset += other.offset
}

// Terms returns the accumulated terms. The slice must not be mutated.
func (e LinearExpr) Terms() []Term {
	return e.terms
}

// Offset returns the constant part of the expression.
func (e LinearExpr) Offset() int64 {
	return e.offset
}

// CoeffOf returns the summed coefficient of v across all terms.
func (e LinearExpr) CoeffOf(v Var) int64 {
	var c int64
	for _, t := range e.terms {
		if t.Var.ID == v.ID {
			c += t.Coeff
		}
	}
	return c
}
