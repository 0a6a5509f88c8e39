package calc

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/denismitr/intset/set"
	"github.com/denismitr/intset/workspace"
)

type Kind uint8

const (
	KindSet Kind = iota
	KindBool
	KindInt
)

// Result of a single statement. A set result is owned by the caller,
// Release frees it.
type Result struct {
	Kind Kind
	Name string
	Set  *set.SortedSet
	Bool bool
	Int  int
}

func (r Result) String() string {
	switch r.Kind {
	case KindBool:
		return strconv.FormatBool(r.Bool)
	case KindInt:
		return strconv.Itoa(r.Int)
	}

	if r.Name != "" {
		return r.Name + " = " + r.Set.String()
	}
	return r.Set.String()
}

func (r Result) Release() {
	if r.Set != nil {
		r.Set.Destroy()
	}
}

type (
	Evaluator struct {
		ws     *workspace.Workspace
		strict bool
	}

	Option func(ev *Evaluator)
)

// WithStrict makes set literals that are not strictly ascending an error
// instead of being sorted.
func WithStrict(strict bool) Option {
	return func(ev *Evaluator) {
		ev.strict = strict
	}
}

func New(ws *workspace.Workspace, options ...Option) *Evaluator {
	ev := &Evaluator{ws: ws}
	for _, o := range options {
		o(ev)
	}
	return ev
}

func (ev *Evaluator) Workspace() *workspace.Workspace {
	return ev.ws
}

// Eval parses and runs one statement against the workspace.
func (ev *Evaluator) Eval(input string) (Result, error) {
	stmt, err := parse(input)
	if err != nil {
		return Result{}, err
	}

	switch st := stmt.(type) {
	case assignment:
		return ev.assign(st)

	case comparison:
		var ok bool
		err := ev.withOperands(st.left, st.right, func(a, b *set.SortedSet) {
			if st.op == tokEq {
				ok = a.Equal(b)
			} else {
				ok = a.LessThan(b)
			}
		})
		return Result{Kind: KindBool, Bool: ok}, err

	case membership:
		s, borrowed, err := ev.operand(st.set)
		if err != nil {
			return Result{}, err
		}
		defer ev.release(s, borrowed)
		return Result{Kind: KindBool, Bool: s.IsMember(st.value)}, nil

	case cardinality:
		s, borrowed, err := ev.operand(st.set)
		if err != nil {
			return Result{}, err
		}
		defer ev.release(s, borrowed)
		return Result{Kind: KindInt, Int: s.Cardinality()}, nil

	case evaluation:
		s, err := ev.owned(st.expr)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindSet, Set: s}, nil
	}

	return Result{}, errors.Errorf("unsupported statement %T", stmt)
}

func (ev *Evaluator) assign(st assignment) (Result, error) {
	if st.op == tokAssign {
		s, err := ev.owned(st.expr)
		if err != nil {
			return Result{}, err
		}
		ev.ws.Set(st.name, s)
		s.Destroy()
	} else {
		bound, found := ev.ws.Get(st.name)
		if !found {
			return Result{}, errors.Wrapf(ErrUndefined, "%q", st.name)
		}

		rhs, borrowed, err := ev.operand(st.expr)
		if err != nil {
			return Result{}, err
		}
		apply(st.op, bound, rhs)
		ev.release(rhs, borrowed)
	}

	bound, _ := ev.ws.Get(st.name)
	return Result{Kind: KindSet, Name: st.name, Set: bound.Clone()}, nil
}

func (ev *Evaluator) withOperands(left, right expr, f func(a, b *set.SortedSet)) error {
	a, aBorrowed, err := ev.operand(left)
	if err != nil {
		return err
	}
	defer ev.release(a, aBorrowed)

	b, bBorrowed, err := ev.operand(right)
	if err != nil {
		return err
	}
	defer ev.release(b, bBorrowed)

	f(a, b)
	return nil
}

// operand evaluates e. A borrowed set belongs to the workspace and must
// not be mutated or released.
func (ev *Evaluator) operand(e expr) (s *set.SortedSet, borrowed bool, err error) {
	switch e := e.(type) {
	case *identifier:
		s, found := ev.ws.Get(e.name)
		if !found {
			return nil, false, errors.Wrapf(ErrUndefined, "%q at %d", e.name, e.pos)
		}
		return s, true, nil

	case *setLiteral:
		if !ev.strict {
			return set.FromValues(e.values, ev.ws.Options()...), false, nil
		}
		s, err := set.FromSorted(e.values, ev.ws.Options()...)
		if err != nil {
			return nil, false, errors.Wrapf(err, "set at %d", e.pos)
		}
		return s, false, nil

	case *binary:
		left, err := ev.owned(e.left)
		if err != nil {
			return nil, false, err
		}

		right, rightBorrowed, err := ev.operand(e.right)
		if err != nil {
			left.Destroy()
			return nil, false, err
		}

		apply(e.op, left, right)
		ev.release(right, rightBorrowed)
		return left, false, nil
	}

	return nil, false, errors.Errorf("unsupported expression %T", e)
}

// owned evaluates e into a set the caller may mutate.
func (ev *Evaluator) owned(e expr) (*set.SortedSet, error) {
	s, borrowed, err := ev.operand(e)
	if err != nil {
		return nil, err
	}
	if borrowed {
		return s.Clone(), nil
	}
	return s, nil
}

func (ev *Evaluator) release(s *set.SortedSet, borrowed bool) {
	if !borrowed {
		s.Destroy()
	}
}

func apply(op tokenKind, dst, src *set.SortedSet) {
	switch op {
	case tokPlus, tokPlusAssign:
		dst.Union(src)
	case tokStar, tokStarAssign:
		dst.Intersect(src)
	case tokMinus, tokMinusAssign:
		dst.Difference(src)
	}
}
