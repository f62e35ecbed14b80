package patterns

import (
	"fmt"
	"io"
)

// Element accepts visitors; Accept performs the double dispatch.
type Element interface {
	Accept(v Visitor)
	Name() string
}

// Visitor declares one method per concrete element.
type Visitor interface {
	VisitNumber(e *NumberElement)
	VisitText(e *TextElement)
}

// NumberElement carries an integer value.
type NumberElement struct {
	Value int
}

func (e *NumberElement) Accept(v Visitor) { v.VisitNumber(e) }
func (e *NumberElement) Name() string     { return "NumberElement" }

// TextElement carries a string value.
type TextElement struct {
	Value string
}

func (e *TextElement) Accept(v Visitor) { v.VisitText(e) }
func (e *TextElement) Name() string     { return "TextElement" }

// PrintVisitor narrates each element it visits.
type PrintVisitor struct {
	Out io.Writer
}

func (v *PrintVisitor) VisitNumber(e *NumberElement) {
	fmt.Fprintf(v.Out, "Visiting NumberElement with value: %d\n", e.Value)
}

func (v *PrintVisitor) VisitText(e *TextElement) {
	fmt.Fprintf(v.Out, "Visiting TextElement with value: %s\n", e.Value)
}

// CountVisitor tallies visited elements.
type CountVisitor struct {
	Out   io.Writer
	count int
}

func (v *CountVisitor) VisitNumber(*NumberElement) {
	v.count++
	fmt.Fprintln(v.Out, "Counting NumberElement...")
}

func (v *CountVisitor) VisitText(*TextElement) {
	v.count++
	fmt.Fprintln(v.Out, "Counting TextElement...")
}

// Count reports how many elements have been visited.
func (v *CountVisitor) Count() int { return v.count }

// DemoVisitor walks through operations defined apart from the structure.
func DemoVisitor(w io.Writer) {
	banner(w, "👤 VISITOR PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern defines operations on object structures.")
	fmt.Fprintln(w, "Go benefit: Accept methods give double dispatch without reflection.")

	elements := []Element{
		&NumberElement{Value: 42},
		&TextElement{Value: "Hello"},
		&NumberElement{Value: 100},
	}

	section(w, "Example 1: Printing visitor")
	printer := &PrintVisitor{Out: w}
	for _, e := range elements {
		e.Accept(printer)
	}

	section(w, "Example 2: Counting visitor")
	counter := &CountVisitor{Out: w}
	for _, e := range elements {
		e.Accept(counter)
	}
	fmt.Fprintf(w, "Visited %d elements\n", counter.Count())

	points(w,
		"Add new operations without modifying elements",
		"Separate algorithms from object structures",
		"Use case: compiler AST walkers, type checkers",
		"Double dispatch through Accept",
	)
}
