package patterns

import (
	"bytes"
	"strings"
	"testing"
)

func TestImageProxy_LoadsOnceOnFirstDisplay(t *testing.T) {
	// GIVEN a proxy for an expensive image
	var buf bytes.Buffer
	proxy := NewImageProxy(&buf, "huge_image.jpg")

	// THEN construction does not load
	if proxy.Loaded() {
		t.Fatal("proxy must not load at construction time")
	}
	if strings.Contains(buf.String(), "expensive operation") {
		t.Fatal("construction must not perform the expensive load")
	}

	// WHEN the image is displayed twice
	proxy.Display()
	proxy.Display()

	// THEN the expensive load happened exactly once
	loads := strings.Count(buf.String(), "expensive operation")
	if loads != 1 {
		t.Errorf("expensive load count: got %d, want 1", loads)
	}
	if !proxy.Loaded() {
		t.Error("proxy must cache the loaded image")
	}

	// AND both displays rendered
	displays := strings.Count(buf.String(), "Displaying huge_image.jpg")
	if displays != 2 {
		t.Errorf("display count: got %d, want 2", displays)
	}
}
