package patterns

import (
	"fmt"
	"io"
	"strings"
)

// LegacyPrinter is the existing system with an incompatible interface.
type LegacyPrinter struct {
	text string
}

func NewLegacyPrinter(text string) *LegacyPrinter { return &LegacyPrinter{text: text} }

// PrintLegacy emits the old wire format.
func (p *LegacyPrinter) PrintLegacy() string {
	return "OLD: " + p.text
}

// Printer is the interface modern callers expect.
type Printer interface {
	Print() string
}

// PrinterAdapter wraps a LegacyPrinter behind the modern interface.
type PrinterAdapter struct {
	legacy *LegacyPrinter
}

func NewPrinterAdapter(text string) *PrinterAdapter {
	return &PrinterAdapter{legacy: NewLegacyPrinter(text)}
}

func (a *PrinterAdapter) Print() string {
	return strings.TrimPrefix(a.legacy.PrintLegacy(), "OLD: ")
}

// ModernPrinter is a native implementation of the modern interface.
type ModernPrinter struct {
	text string
}

func NewModernPrinter(text string) *ModernPrinter { return &ModernPrinter{text: text} }

func (p *ModernPrinter) Print() string {
	return "MODERN: " + p.text
}

// DemoAdapter walks through bridging a legacy interface into a new one.
func DemoAdapter(w io.Writer) {
	banner(w, "🔌 ADAPTER PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern makes incompatible interfaces work together.")
	fmt.Fprintln(w, "Go benefit: the adapter satisfies the target interface implicitly.")

	section(w, "Example 1: Adapter for a legacy system")
	adapter := NewPrinterAdapter("Hello from legacy system!")
	fmt.Fprintln(w, adapter.Print())

	section(w, "Example 2: Modern implementation")
	modern := NewModernPrinter("Hello from modern system!")
	fmt.Fprintln(w, modern.Print())

	section(w, "Example 3: Using both through the interface")
	printers := []Printer{
		NewPrinterAdapter("Adapted legacy printer"),
		NewModernPrinter("Modern printer"),
	}
	for _, p := range printers {
		fmt.Fprintln(w, p.Print())
	}

	points(w,
		"Make incompatible interfaces cooperate",
		"Reuse legacy code unchanged",
		"Adapter owns the translation logic",
		"Callers see only the target interface",
	)
}
