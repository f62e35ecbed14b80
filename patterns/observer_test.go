package patterns

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewsFeed_CategoryFiltering(t *testing.T) {
	// GIVEN a feed with an email observer on Technology and an SMS observer
	// on Breaking only
	var buf bytes.Buffer
	feed := NewNewsFeed(&buf)
	feed.Attach(NewEmailNotifier(&buf, "Tech Subscriber", "user@example.com",
		[]string{"Technology"}))
	feed.Attach(NewSMSSender(&buf, "Alert System", "+1234567890",
		[]string{"Breaking"}))

	// WHEN a Technology event is published
	buf.Reset()
	feed.Publish("AI News", "...", "Technology")

	// THEN only the email observer reacts
	out := buf.String()
	assert.Contains(t, out, "📧 Email sent to user@example.com")
	assert.NotContains(t, out, "📱 SMS")

	// WHEN a Breaking event is published
	buf.Reset()
	feed.Publish("Earthquake", "...", "Breaking")

	// THEN only the SMS observer reacts
	out = buf.String()
	assert.Contains(t, out, "📱 SMS sent to +1234567890")
	assert.NotContains(t, out, "📧 Email")
}

func TestNewsFeed_EmptyCategoriesMatchEverything(t *testing.T) {
	var buf bytes.Buffer
	feed := NewNewsFeed(&buf)
	feed.Attach(NewEmailNotifier(&buf, "Firehose", "all@example.com", nil))

	feed.Publish("Weather Update", "...", "Weather")
	assert.Contains(t, buf.String(), "Email sent to all@example.com")
}

func TestNewsFeed_Detach(t *testing.T) {
	var buf bytes.Buffer
	feed := NewNewsFeed(&buf)
	feed.Attach(NewEmailNotifier(&buf, "Tech Subscriber", "user@example.com",
		[]string{"Technology"}))
	assert.Equal(t, 1, feed.ObserverCount())

	feed.Detach("Tech Subscriber")
	assert.Equal(t, 0, feed.ObserverCount())

	buf.Reset()
	feed.Publish("More Tech", "...", "Technology")
	assert.NotContains(t, buf.String(), "Email sent")
}

func TestNewsFeed_AssignsIncrementingIDs(t *testing.T) {
	var buf bytes.Buffer
	feed := NewNewsFeed(&buf)

	var got []int
	feed.Attach(observerFunc(func(e NewsEvent) { got = append(got, e.ID) }))

	feed.Publish("one", "...", "x")
	feed.Publish("two", "...", "x")
	feed.Publish("three", "...", "x")
	assert.Equal(t, []int{1, 2, 3}, got)
}

// observerFunc adapts a function to the NewsObserver interface for tests.
type observerFunc func(e NewsEvent)

func (f observerFunc) Update(e NewsEvent) { f(e) }
func (observerFunc) Name() string         { return "func" }
