package patterns

import (
	"fmt"
	"io"
	"strings"
)

// Demo is one runnable pattern demonstration.
type Demo struct {
	Number int    // 1-based menu position
	Slug   string // stable identifier used by `run <pattern>`
	Title  string
	Run    func(w io.Writer)
}

// registry lists the demos in menu order. Numbers must stay dense and
// 1-based; the menu and the run subcommand both dispatch through it.
var registry = []Demo{
	{1, "builder", "Builder", DemoBuilder},
	{2, "factory", "Factory", DemoFactory},
	{3, "singleton", "Singleton", DemoSingleton},
	{4, "observer", "Observer", DemoObserver},
	{5, "strategy", "Strategy", DemoStrategy},
	{6, "command", "Command", DemoCommand},
	{7, "decorator", "Decorator", DemoDecorator},
	{8, "adapter", "Adapter", DemoAdapter},
	{9, "facade", "Facade", DemoFacade},
	{10, "template-method", "Template Method", DemoTemplateMethod},
	{11, "proxy", "Proxy", DemoProxy},
	{12, "visitor", "Visitor", DemoVisitor},
	{13, "memento", "Memento", DemoMemento},
	{14, "chain-of-responsibility", "Chain of Responsibility", DemoChainOfResponsibility},
	{15, "state", "State", DemoState},
}

// All returns the demos in menu order.
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// ByNumber looks up a demo by its menu position.
func ByNumber(n int) (Demo, bool) {
	if n < 1 || n > len(registry) {
		return Demo{}, false
	}
	return registry[n-1], true
}

// BySlug looks up a demo by its stable identifier.
func BySlug(slug string) (Demo, bool) {
	for _, d := range registry {
		if d.Slug == slug {
			return d, true
		}
	}
	return Demo{}, false
}

// banner prints a demo title over a separator rule.
func banner(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// section introduces a numbered example within a demo.
func section(w io.Writer, text string) {
	fmt.Fprintf(w, "\n📝 %s\n", text)
}

// points prints the closing interview talking points.
func points(w io.Writer, lines ...string) {
	fmt.Fprintln(w, "\n💡 Interview Points:")
	for _, line := range lines {
		fmt.Fprintf(w, "   • %s\n", line)
	}
}
