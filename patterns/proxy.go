package patterns

import (
	"fmt"
	"io"
)

// Image is the subject interface shared by the real image and its proxy.
type Image interface {
	Display()
}

// RealImage pays the expensive disk load at construction.
type RealImage struct {
	out      io.Writer
	filename string
}

func NewRealImage(w io.Writer, filename string) *RealImage {
	fmt.Fprintf(w, "Loading %s from disk (expensive operation)\n", filename)
	return &RealImage{out: w, filename: filename}
}

func (i *RealImage) Display() {
	fmt.Fprintf(i.out, "Displaying %s\n", i.filename)
}

// ImageProxy defers the load until the first Display and caches the result.
type ImageProxy struct {
	out      io.Writer
	filename string
	real     *RealImage
}

func NewImageProxy(w io.Writer, filename string) *ImageProxy {
	fmt.Fprintf(w, "Creating image proxy: %s\n", filename)
	return &ImageProxy{out: w, filename: filename}
}

func (p *ImageProxy) Display() {
	if p.real == nil {
		fmt.Fprintln(p.out, "Lazy loading initiated")
		p.real = NewRealImage(p.out, p.filename)
	}
	p.real.Display()
}

// Loaded reports whether the proxy has materialized the real image yet.
func (p *ImageProxy) Loaded() bool { return p.real != nil }

// DemoProxy walks through lazy loading behind a placeholder.
func DemoProxy(w io.Writer) {
	banner(w, "🎭 PROXY PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern provides a placeholder for another object.")
	fmt.Fprintln(w, "Go benefit: nil check plus cached pointer makes lazy init one branch.")

	section(w, "Example 1: Lazy loading with a proxy")
	fmt.Fprintln(w, "Note: the image is NOT loaded until Display is called")
	proxy := NewImageProxy(w, "huge_image.jpg")

	fmt.Fprintln(w, "\nFirst access through the proxy:")
	proxy.Display()

	fmt.Fprintln(w, "\nSecond access reuses the cached image:")
	proxy.Display()

	section(w, "Example 2: Direct access (no proxy)")
	direct := NewRealImage(w, "direct.jpg")
	direct.Display()

	points(w,
		"Lazy initialization on first use",
		"Virtual proxy for expensive objects",
		"Loaded result cached for later accesses",
		"Same interface as the real subject",
	)
}
