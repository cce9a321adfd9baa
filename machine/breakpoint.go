// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Breakpoint is a starlark condition over the machine symbols, such as
// `pc == 0x208 and v0 > 3`.
type Breakpoint struct {
	Expr string
}

// Eval evaluates the condition with the symbols predeclared.
func (bp *Breakpoint) Eval(symbols iter.Seq2[string, int]) (hit bool, err error) {
	thread := starlark.Thread{Name: "break"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range symbols {
		pred[key] = starlark.MakeInt(value)
	}

	prog := "rc=" + bp.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "break", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(bp.Expr)
		return
	}

	st_bool, ok := st_rc.(starlark.Bool)
	if !ok {
		err = ErrExpression(bp.Expr)
		return
	}

	hit = bool(st_bool)
	return
}
