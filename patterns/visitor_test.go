package patterns

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountVisitor_CountsEveryElement(t *testing.T) {
	elements := []Element{
		&NumberElement{Value: 42},
		&TextElement{Value: "Hello"},
		&NumberElement{Value: 100},
	}

	counter := &CountVisitor{Out: &bytes.Buffer{}}
	for _, e := range elements {
		e.Accept(counter)
	}
	assert.Equal(t, 3, counter.Count())
}

func TestPrintVisitor_DispatchesByElementType(t *testing.T) {
	var buf bytes.Buffer
	printer := &PrintVisitor{Out: &buf}

	(&NumberElement{Value: 7}).Accept(printer)
	(&TextElement{Value: "go"}).Accept(printer)

	assert.Contains(t, buf.String(), "NumberElement with value: 7")
	assert.Contains(t, buf.String(), "TextElement with value: go")
}
