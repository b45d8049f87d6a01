package pqgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

// String renders the whole graph as program text in the configured
// Dialect, in the section order §4.10 fixes: declarations, scalars,
// reused intermediates, temp intermediates, then the user's main
// equations — with a destructor line inserted right after a temp's last
// use among the main equations, per the depgraph.Graph built up during
// SubstituteCSE.
func (g *PQGraph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	declared := g.deps.DeclarationOrder()
	var scalars, reused, temps []string
	for _, name := range declared {
		switch g.kinds[name] {
		case kindScalar:
			scalars = append(scalars, name)
		case kindReused:
			reused = append(reused, name)
		case kindTemp:
			temps = append(temps, name)
		}
	}

	var b strings.Builder
	if all := concat(scalars, reused, temps); len(all) > 0 {
		b.WriteString("declare " + strings.Join(all, ", ") + "\n")
	}

	for _, name := range scalars {
		b.WriteString(g.emitEquation(name))
	}
	for _, name := range reused {
		b.WriteString(g.emitEquation(name))
	}
	for _, name := range temps {
		b.WriteString(g.emitEquation(name))
	}

	mainIdx := 0
	for _, name := range g.order {
		if g.kinds[name] != kindMain {
			continue
		}
		b.WriteString(g.emitEquation(name))
		for _, dead := range g.deps.DestructorsAt(mainIdx) {
			b.WriteString(g.destructorLine(dead))
		}
		mainIdx++
	}

	return b.String()
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func (g *PQGraph) destructorLine(name string) string {
	if g.Options.Dialect == DialectArray {
		return "del " + name + "\n"
	}
	return "del " + name + ";\n"
}

func (g *PQGraph) emitEquation(name string) string {
	eq := g.equations[name]
	var b strings.Builder
	for _, t := range eq.Terms {
		b.WriteString(g.emitTerm(name, t))
	}
	return b.String()
}

// emitTerm renders one Term assigned to lhsName, dispatching on Dialect
// (§6): the tensor dialect indexes both sides with string literals and
// terminates with ';'; the array dialect assigns bare names and wraps
// any multi-operand contraction in an explicit einsum call.
func (g *PQGraph) emitTerm(lhsName string, t term.Term) string {
	coefPrefix := ""
	if t.Coefficient != 1 {
		coefPrefix = strconv.FormatFloat(t.Coefficient, 'g', -1, 64) + " * "
	}
	op := "+="
	if t.IsAssignment {
		op = "="
	}

	if g.Options.Dialect == DialectArray {
		rhs := einsumExpr(t)
		if rhs == "" {
			rhs = plainProduct(t)
		}
		return fmt.Sprintf("%s %s %s%s\n", lhsName, op, coefPrefix, rhs)
	}

	lhsIdx := g.indexString(t.LHS.Lines)
	operands := t.Operands
	if t.Tree != nil {
		leaves := t.Tree.ToVector(true)
		operands = make([]vertex.Vertex, len(leaves))
		for i, leaf := range leaves {
			operands[i] = *leaf.Leaf
		}
	}
	parts := make([]string, len(operands))
	for i, v := range operands {
		parts[i] = v.BaseName
		if idx := g.indexString(v.Lines); idx != "" {
			parts[i] += "(\"" + idx + "\")"
		}
	}
	rhs := strings.Join(parts, " * ")
	rendered := fmt.Sprintf("%s %s %s%s;\n", lhsName, op, coefPrefix, rhs)
	if lhsIdx != "" {
		rendered = fmt.Sprintf("%s(\"%s\") %s %s%s;\n", lhsName, lhsIdx, op, coefPrefix, rhs)
	}
	if g.Options.SeparateConditions {
		if blocks := blockChars(t.LHS.Lines); blocks != "" {
			rendered = strings.TrimSuffix(rendered, "\n") + "  // block:" + blocks + "\n"
		}
	}
	return rendered
}

func plainProduct(t term.Term) string {
	parts := make([]string, len(t.Operands))
	for i, op := range t.Operands {
		parts[i] = op.Name()
	}
	return strings.Join(parts, " * ")
}

// einsumExpr builds an array-dialect `einsum("ij,jk->ik", A, B)` call over
// t's fully flattened leaf operands, assigning one letter per distinct
// Line encountered across the whole term so shared (contracted) indices
// get the same letter on every operand that carries them, the way NumPy/
// opt_einsum's subscript convention works. Returns "" for a term with no
// built Tree (nothing to flatten).
func einsumExpr(t term.Term) string {
	if t.Tree == nil {
		return ""
	}
	leaves := t.Tree.ToVector(true)
	if len(leaves) == 0 {
		return ""
	}

	letters := make(map[line.Line]byte)
	next := byte('a')
	assign := func(l line.Line) byte {
		if c, ok := letters[l]; ok {
			return c
		}
		c := next
		next++
		letters[l] = c
		return c
	}

	operandSubs := make([]string, len(leaves))
	operandNames := make([]string, len(leaves))
	for i, op := range leaves {
		var sb strings.Builder
		for _, l := range op.Leaf.Lines {
			sb.WriteByte(assign(l))
		}
		operandSubs[i] = sb.String()
		operandNames[i] = op.Leaf.Name()
	}

	var outSub strings.Builder
	for _, l := range t.LHS.Lines {
		outSub.WriteByte(assign(l))
	}

	subscript := strings.Join(operandSubs, ",") + "->" + outSub.String()
	return fmt.Sprintf("einsum(%q, %s)", subscript, strings.Join(operandNames, ", "))
}

// indexString renders lines as a tensor-library index literal. When
// Options.PrintTrialIndex is false, a sigma (excited-state) line's actual
// label is masked with a placeholder character rather than materialized,
// matching §6's print_trial_index default of false.
func (g *PQGraph) indexString(lines []line.Line) string {
	var b strings.Builder
	for _, l := range lines {
		if l.Sigma && !g.Options.PrintTrialIndex {
			b.WriteByte('*')
			continue
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// blockChars returns the distinct spin/range block characters carried by
// lines, in line order, or "" if none carry a block — the annotation
// Options.SeparateConditions appends to an emitted term so a
// spin/range-blocked variant is visibly distinguished (§6
// separate_conditions).
func blockChars(lines []line.Line) string {
	var b strings.Builder
	for _, l := range lines {
		if l.HasBlock() {
			b.WriteByte(l.Block())
		}
	}
	return b.String()
}
