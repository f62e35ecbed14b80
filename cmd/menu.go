package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/patterns-prep/patterns-prep/catalog"
	"github.com/patterns-prep/patterns-prep/patterns"
)

// Menu drives the interactive loop: header, numbered choices, demo dispatch,
// tips screen, and exit. Reads from in, writes everything to out.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer
	cat *catalog.Catalog
}

// NewMenu builds a menu over the embedded catalog. A broken embedded catalog
// is a build defect, not a user error, so it is fatal.
func NewMenu(in io.Reader, out io.Writer) *Menu {
	cat, err := catalog.Load()
	if err != nil {
		logrus.Fatalf("load pattern catalog: %v", err)
	}
	return &Menu{in: bufio.NewScanner(in), out: out, cat: cat}
}

// Run loops until the user exits or stdin hits EOF.
func (m *Menu) Run() {
	demoCount := len(patterns.All())
	tipsChoice := demoCount + 1
	exitChoice := demoCount + 2

	for {
		m.printHeader()
		m.printMenu(tipsChoice, exitChoice)

		fmt.Fprintf(m.out, "\n🎯 Choose a pattern to explore (1-%d): ", exitChoice)
		line, ok := m.readLine()
		if !ok {
			fmt.Fprintln(m.out)
			m.printFarewell()
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(m.out, "❌ Invalid choice! Please enter a number between 1-%d.\n", exitChoice)
			m.pause()
			continue
		}

		switch {
		case choice == tipsChoice:
			m.printTips()
			m.pause()
		case choice == exitChoice:
			m.printFarewell()
			return
		case choice >= 1 && choice <= demoCount:
			m.runDemo(choice)
			if !m.askContinue() {
				m.printFarewell()
				return
			}
		default:
			fmt.Fprintf(m.out, "❌ Invalid choice! Please select 1-%d.\n", exitChoice)
			m.pause()
		}
	}
}

func (m *Menu) printHeader() {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(m.out, "\n%s\n", rule)
	fmt.Fprintln(m.out, "🚀 DESIGN PATTERNS INTERVIEW PREP 🚀")
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, "Master the most common design patterns in Go!")
	fmt.Fprintln(m.out, "Each pattern includes real-world examples and Go-specific idioms.")
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) printMenu(tipsChoice, exitChoice int) {
	fmt.Fprintln(m.out, "\n📚 AVAILABLE PATTERNS:")
	fmt.Fprintln(m.out, strings.Repeat("-", 50))
	for _, d := range patterns.All() {
		label := d.Title
		if entry, ok := m.cat.Entry(d.Slug); ok {
			label = entry.Label
		}
		fmt.Fprintf(m.out, "%-3s %s\n", fmt.Sprintf("%d.", d.Number), label)
	}
	fmt.Fprintf(m.out, "%d. 📖 Interview Tips & Common Questions\n", tipsChoice)
	fmt.Fprintf(m.out, "%d. 🚪 Exit\n", exitChoice)
	fmt.Fprintln(m.out, strings.Repeat("-", 50))
}

func (m *Menu) printTips() {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(m.out, "\n%s\n", rule)
	fmt.Fprintln(m.out, "📖 INTERVIEW TIPS & STRATEGIES")
	fmt.Fprintln(m.out, rule)

	fmt.Fprintln(m.out, "\n💡 Key Interview Tips:")
	for _, tip := range m.cat.Tips.Advice {
		fmt.Fprintf(m.out, "   %s\n", tip)
	}

	fmt.Fprintln(m.out, "\n🔄 Common Follow-up Questions:")
	for i, question := range m.cat.Tips.FollowUps {
		fmt.Fprintf(m.out, "   %d. %s\n", i+1, question)
	}

	fmt.Fprintf(m.out, "\n%s\n", rule)
}

func (m *Menu) runDemo(number int) {
	demo, ok := patterns.ByNumber(number)
	if !ok {
		fmt.Fprintln(m.out, "❌ Invalid pattern selection!")
		return
	}

	if entry, ok := m.cat.Entry(demo.Slug); ok {
		fmt.Fprintf(m.out, "\nℹ️  %s\n", entry.Summary)
	}

	logrus.Debugf("running demo %q", demo.Slug)
	fmt.Fprintln(m.out, "\n🚀 Running demo...")
	fmt.Fprintln(m.out)
	demo.Run(m.out)
	logrus.Debugf("demo %q finished", demo.Slug)

	fmt.Fprintf(m.out, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintln(m.out, "✅ Demo completed successfully!")
}

// askContinue returns true when the user wants another pattern.
func (m *Menu) askContinue() bool {
	fmt.Fprint(m.out, "\n🔄 Would you like to explore another pattern? (y/n): ")
	line, ok := m.readLine()
	if !ok {
		fmt.Fprintln(m.out)
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (m *Menu) pause() {
	fmt.Fprintln(m.out, "\nPress Enter to continue...")
	m.readLine()
}

// readLine reads one input line; ok is false on EOF.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) printFarewell() {
	fmt.Fprintln(m.out, "\n🎉 Thanks for using Design Patterns Interview Prep!")
	fmt.Fprintln(m.out, "Good luck with your interviews! 🚀")
}
