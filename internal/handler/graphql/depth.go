package graphql

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
)

// checkDepth rejects operations whose selections nest deeper than maxDepth.
// Root fields sit at depth 0, fragments count where they are spread and
// introspection fields are ignored. The document must already be valid, so
// fragment cycles cannot occur.
func checkDepth(doc *ast.Document, maxDepth int) []gqlerrors.FormattedError {
	fragments := make(map[string]*ast.FragmentDefinition)
	var operations []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.FragmentDefinition:
			fragments[d.Name.Value] = d
		case *ast.OperationDefinition:
			operations = append(operations, d)
		}
	}

	var errs []gqlerrors.FormattedError
	for _, op := range operations {
		d := depthLimiter{fragments: fragments, max: maxDepth}
		d.selectionSet(op.SelectionSet, 0)
		if d.exceeded {
			errs = append(errs, gqlerrors.NewFormattedError(
				fmt.Sprintf("'%s' exceeds maximum operation depth of %d", operationLabel(op), maxDepth),
			))
		}
	}
	return errs
}

type depthLimiter struct {
	fragments map[string]*ast.FragmentDefinition
	max       int
	exceeded  bool
}

func (d *depthLimiter) selectionSet(set *ast.SelectionSet, depth int) int {
	if set == nil {
		return 0
	}
	deepest := 0
	for _, sel := range set.Selections {
		if n := d.selection(sel, depth); n > deepest {
			deepest = n
		}
		if d.exceeded {
			break
		}
	}
	return deepest
}

func (d *depthLimiter) selection(sel ast.Selection, depth int) int {
	if depth > d.max {
		d.exceeded = true
		return depth
	}
	switch s := sel.(type) {
	case *ast.Field:
		if strings.HasPrefix(s.Name.Value, "__") || s.SelectionSet == nil {
			return 0
		}
		return 1 + d.selectionSet(s.SelectionSet, depth+1)
	case *ast.InlineFragment:
		return d.selectionSet(s.SelectionSet, depth)
	case *ast.FragmentSpread:
		if frag, ok := d.fragments[s.Name.Value]; ok {
			return d.selectionSet(frag.SelectionSet, depth)
		}
	}
	return 0
}

func operationLabel(op *ast.OperationDefinition) string {
	if op.Name != nil && op.Name.Value != "" {
		return op.Name.Value
	}
	return "anonymous"
}
