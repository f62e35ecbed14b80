package patterns

import (
	"fmt"
	"io"
)

// Coffee is the component interface decorators wrap.
type Coffee interface {
	Cost() float64
	Description() string
}

// SimpleCoffee is the undecorated base component.
type SimpleCoffee struct{}

func (SimpleCoffee) Cost() float64       { return 2.0 }
func (SimpleCoffee) Description() string { return "Simple coffee" }

// milkDecorator adds milk on top of any coffee.
type milkDecorator struct {
	inner Coffee
}

// WithMilk wraps a coffee, adding $0.50.
func WithMilk(c Coffee) Coffee { return milkDecorator{inner: c} }

func (d milkDecorator) Cost() float64 { return d.inner.Cost() + 0.5 }
func (d milkDecorator) Description() string {
	return d.inner.Description() + ", milk"
}

// sugarDecorator adds sugar on top of any coffee.
type sugarDecorator struct {
	inner Coffee
}

// WithSugar wraps a coffee, adding $0.20.
func WithSugar(c Coffee) Coffee { return sugarDecorator{inner: c} }

func (d sugarDecorator) Cost() float64 { return d.inner.Cost() + 0.2 }
func (d sugarDecorator) Description() string {
	return d.inner.Description() + ", sugar"
}

// DemoDecorator walks through stacking behavior onto a base component.
func DemoDecorator(w io.Writer) {
	banner(w, "🎨 DECORATOR PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern adds behavior to objects dynamically.")
	fmt.Fprintln(w, "Go benefit: decorators are just wrappers satisfying the same interface.")

	section(w, "Example 1: Building coffee with decorators")
	var coffee Coffee = SimpleCoffee{}
	fmt.Fprintf(w, "%s - $%.2f\n", coffee.Description(), coffee.Cost())

	coffee = WithMilk(coffee)
	fmt.Fprintf(w, "%s - $%.2f\n", coffee.Description(), coffee.Cost())

	section(w, "Example 2: Multiple decorators")
	loaded := WithSugar(WithMilk(SimpleCoffee{}))
	fmt.Fprintf(w, "%s - $%.2f\n", loaded.Description(), loaded.Cost())

	points(w,
		"Add behavior without modifying existing code",
		"Wrappers compose in any order",
		"Open/Closed Principle",
		"Alternative to deep type hierarchies",
	)
}
