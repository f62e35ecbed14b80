package patterns

import (
	"fmt"
	"io"
)

// PaymentStrategy is the interchangeable algorithm.
type PaymentStrategy interface {
	Pay(amount float64) string
}

type CreditCardPayment struct{}

func (CreditCardPayment) Pay(amount float64) string {
	return fmt.Sprintf("Paid $%.2f using Credit Card", amount)
}

type PayPalPayment struct{}

func (PayPalPayment) Pay(amount float64) string {
	return fmt.Sprintf("Paid $%.2f using PayPal", amount)
}

type BitcoinPayment struct{}

func (BitcoinPayment) Pay(amount float64) string {
	return fmt.Sprintf("Paid $%.2f using Bitcoin", amount)
}

// PaymentProcessor is the context holding the current strategy.
type PaymentProcessor struct {
	strategy PaymentStrategy
}

func NewPaymentProcessor(strategy PaymentStrategy) *PaymentProcessor {
	return &PaymentProcessor{strategy: strategy}
}

// Process delegates to whichever strategy was injected.
func (p *PaymentProcessor) Process(amount float64) string {
	return p.strategy.Pay(amount)
}

// DemoStrategy walks through swapping payment algorithms at runtime.
func DemoStrategy(w io.Writer) {
	banner(w, "🎯 STRATEGY PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern makes algorithms interchangeable.")
	fmt.Fprintln(w, "Go benefit: any type satisfying the interface plugs in.")

	section(w, "Example 1: Different payment methods")
	fmt.Fprintln(w, NewPaymentProcessor(CreditCardPayment{}).Process(100.0))
	fmt.Fprintln(w, NewPaymentProcessor(PayPalPayment{}).Process(50.0))
	fmt.Fprintln(w, NewPaymentProcessor(BitcoinPayment{}).Process(75.5))

	points(w,
		"Each algorithm lives in its own type",
		"Context selects the strategy at construction",
		"New strategies need no changes to the processor",
		"Open/Closed Principle in practice",
	)
}
