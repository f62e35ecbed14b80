package patterns

import (
	"fmt"
	"io"
	"strings"
)

// PipelineSteps supplies the variable steps of the processing skeleton.
type PipelineSteps interface {
	Load()
	Validate()
	Transform()
	Save()
}

// RunPipeline is the template method: the step order is fixed here, the
// steps themselves come from the provider.
func RunPipeline(w io.Writer, steps PipelineSteps) {
	fmt.Fprintln(w, "📊 Data Processing Pipeline")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	steps.Load()
	steps.Validate()
	steps.Transform()
	steps.Save()
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w, "✅ Processing complete!")
}

// CSVSteps processes comma-separated data.
type CSVSteps struct {
	Out io.Writer
}

func (s CSVSteps) Load()      { fmt.Fprintln(s.Out, "📁 Loading CSV data...") }
func (s CSVSteps) Validate()  { fmt.Fprintln(s.Out, "✓ Validating CSV format...") }
func (s CSVSteps) Transform() { fmt.Fprintln(s.Out, "🔄 Transforming CSV data...") }
func (s CSVSteps) Save()      { fmt.Fprintln(s.Out, "💾 Saving processed CSV data...") }

// JSONSteps processes JSON documents.
type JSONSteps struct {
	Out io.Writer
}

func (s JSONSteps) Load()      { fmt.Fprintln(s.Out, "📁 Loading JSON data...") }
func (s JSONSteps) Validate()  { fmt.Fprintln(s.Out, "✓ Validating JSON format...") }
func (s JSONSteps) Transform() { fmt.Fprintln(s.Out, "🔄 Transforming JSON data...") }
func (s JSONSteps) Save()      { fmt.Fprintln(s.Out, "💾 Saving processed JSON data...") }

// DemoTemplateMethod walks through a fixed skeleton with swappable steps.
func DemoTemplateMethod(w io.Writer) {
	banner(w, "📋 TEMPLATE METHOD PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern defines an algorithm skeleton with customizable steps.")
	fmt.Fprintln(w, "Go benefit: a template function over a steps interface.")

	section(w, "Example 1: CSV processing")
	RunPipeline(w, CSVSteps{Out: w})

	section(w, "Example 2: JSON processing")
	RunPipeline(w, JSONSteps{Out: w})

	points(w,
		"Skeleton fixes the step order in one place",
		"Providers supply only the variable steps",
		"Removes duplicated pipeline scaffolding",
		"Hollywood Principle: don't call us, we'll call you",
	)
}
