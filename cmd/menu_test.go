package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runMenu drives the interactive loop against scripted stdin and returns
// everything it printed.
func runMenu(input string) string {
	var buf bytes.Buffer
	NewMenu(strings.NewReader(input), &buf).Run()
	return buf.String()
}

func TestMenu_ChoiceRunsMatchingDemo(t *testing.T) {
	// GIVEN choice 5 (Strategy) followed by declining to continue
	out := runMenu("5\nn\n")

	// THEN exactly that demo ran
	assert.Contains(t, out, "STRATEGY PATTERN DEMO")
	assert.NotContains(t, out, "BUILDER PATTERN DEMO")
	assert.Contains(t, out, "✅ Demo completed successfully!")
	assert.Contains(t, out, "Good luck with your interviews!")
}

func TestMenu_ContinuePromptRunsAnotherDemo(t *testing.T) {
	// GIVEN a demo, a yes, a second demo, then a no
	out := runMenu("1\ny\n14\nn\n")

	assert.Contains(t, out, "BUILDER PATTERN DEMO")
	assert.Contains(t, out, "CHAIN OF RESPONSIBILITY DEMO")
}

func TestMenu_TipsScreenReturnsToMenu(t *testing.T) {
	// GIVEN tips (16), an Enter to continue, then exit (17)
	out := runMenu("16\n\n17\n")

	assert.Contains(t, out, "INTERVIEW TIPS & STRATEGIES")
	assert.Contains(t, out, "Common Follow-up Questions:")
	// Menu redisplayed after the tips screen
	assert.GreaterOrEqual(t, strings.Count(out, "AVAILABLE PATTERNS:"), 2)
	assert.Contains(t, out, "Good luck with your interviews!")
}

func TestMenu_ExitChoiceTerminates(t *testing.T) {
	out := runMenu("17\n")
	assert.Contains(t, out, "Thanks for using Design Patterns Interview Prep!")
	assert.Equal(t, 1, strings.Count(out, "AVAILABLE PATTERNS:"),
		"menu must not redisplay after exit")
}

func TestMenu_NonNumericInputReprompts(t *testing.T) {
	out := runMenu("banana\n\n17\n")
	assert.Contains(t, out, "❌ Invalid choice! Please enter a number between 1-17.")
	assert.GreaterOrEqual(t, strings.Count(out, "AVAILABLE PATTERNS:"), 2,
		"menu must redisplay after invalid input")
}

func TestMenu_OutOfRangeInputReprompts(t *testing.T) {
	out := runMenu("99\n\n17\n")
	assert.Contains(t, out, "❌ Invalid choice! Please select 1-17.")
	assert.GreaterOrEqual(t, strings.Count(out, "AVAILABLE PATTERNS:"), 2)
}

func TestMenu_EOFTerminatesCleanly(t *testing.T) {
	// GIVEN stdin that ends immediately
	out := runMenu("")

	// THEN the loop exits with the farewell instead of spinning or crashing
	assert.Contains(t, out, "Good luck with your interviews!")
}

func TestMenu_DemoPrefixedWithCatalogSummary(t *testing.T) {
	out := runMenu("7\nn\n")
	assert.Contains(t, out, "ℹ️")
	assert.Contains(t, out, "milk and sugar")
}
