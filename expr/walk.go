package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Visitor is called for every node of a tree walk, together with the nesting
// level of the node (the root is at level 0). If a visitor returns false for
// a list, the elements of the list will not be visited.
type Visitor func(node Expr, level int) bool

type frame struct {
	node  Expr
	level int
}

// Walk traverses an expression tree in pre-order, left to right.
//
// Walk does not recurse, but keeps pending nodes on an explicit stack. Trees
// of any depth may therefore be walked without regard to goroutine stack size.
func Walk(e Expr, visit Visitor) {
	if e == nil || visit == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(frame{node: e})
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame)
		if !visit(f.node, f.level) {
			continue
		}
		if l, ok := f.node.(List); ok {
			for i := len(l) - 1; i >= 0; i-- { // push in reverse to pop left to right
				stack.Push(frame{node: l[i], level: f.level + 1})
			}
		}
	}
}

// Depth returns the maximum nesting depth of lists within e.
// Atoms and Noop have depth 0, an empty list has depth 1.
func Depth(e Expr) int {
	depth := 0
	Walk(e, func(node Expr, level int) bool {
		if _, ok := node.(List); ok && level+1 > depth {
			depth = level + 1
		}
		return true
	})
	return depth
}

// Count returns the number of nodes in a tree, including the root.
func Count(e Expr) int {
	n := 0
	Walk(e, func(Expr, int) bool {
		n++
		return true
	})
	tracer().Debugf("tree has %d nodes", n)
	return n
}
