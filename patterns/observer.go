package patterns

import (
	"fmt"
	"io"
	"slices"
)

// NewsEvent is the payload delivered to observers.
type NewsEvent struct {
	ID       int
	Title    string
	Body     string
	Category string
}

// NewsObserver receives published events.
type NewsObserver interface {
	Update(event NewsEvent)
	Name() string
}

// NewsFeed is the subject: it owns the observer list and assigns event IDs.
type NewsFeed struct {
	out       io.Writer
	observers []NewsObserver
	nextID    int
}

// NewNewsFeed returns a feed narrating subject-side activity to w.
func NewNewsFeed(w io.Writer) *NewsFeed {
	return &NewsFeed{out: w, nextID: 1}
}

// Attach registers an observer.
func (f *NewsFeed) Attach(o NewsObserver) {
	f.observers = append(f.observers, o)
	fmt.Fprintf(f.out, "Observer '%s' attached\n", o.Name())
}

// Detach removes all observers with the given name.
func (f *NewsFeed) Detach(name string) {
	f.observers = slices.DeleteFunc(f.observers, func(o NewsObserver) bool {
		return o.Name() == name
	})
}

// ObserverCount reports how many observers are attached.
func (f *NewsFeed) ObserverCount() int { return len(f.observers) }

// Publish creates an event with the next ID and notifies every observer.
func (f *NewsFeed) Publish(title, body, category string) {
	event := NewsEvent{
		ID:       f.nextID,
		Title:    title,
		Body:     body,
		Category: category,
	}
	f.nextID++

	fmt.Fprintf(f.out, "Notifying %d observers about: %s\n", len(f.observers), event.Title)
	for _, o := range f.observers {
		o.Update(event)
	}
}

// EmailNotifier sends email for matching categories; an empty category list
// matches everything.
type EmailNotifier struct {
	out        io.Writer
	name       string
	email      string
	categories []string
}

func NewEmailNotifier(w io.Writer, name, email string, categories []string) *EmailNotifier {
	return &EmailNotifier{out: w, name: name, email: email, categories: categories}
}

func (n *EmailNotifier) Name() string { return n.name }

func (n *EmailNotifier) Update(event NewsEvent) {
	if len(n.categories) == 0 || slices.Contains(n.categories, event.Category) {
		fmt.Fprintf(n.out, "📧 Email sent to %s (%s) about: %s\n", n.email, n.name, event.Title)
	}
}

// SMSSender texts only for priority categories.
type SMSSender struct {
	out                io.Writer
	name               string
	phone              string
	priorityCategories []string
}

func NewSMSSender(w io.Writer, name, phone string, priorityCategories []string) *SMSSender {
	return &SMSSender{out: w, name: name, phone: phone, priorityCategories: priorityCategories}
}

func (s *SMSSender) Name() string { return s.name }

func (s *SMSSender) Update(event NewsEvent) {
	if slices.Contains(s.priorityCategories, event.Category) {
		fmt.Fprintf(s.out, "📱 SMS sent to %s (%s) about: %s\n", s.phone, s.name, event.Title)
	}
}

// DemoObserver walks through a one-to-many notification setup.
func DemoObserver(w io.Writer) {
	banner(w, "👀 OBSERVER PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern defines a one-to-many dependency between objects.")
	fmt.Fprintln(w, "Go benefit: a plain interface slice, no inheritance needed.")

	section(w, "Example 1: News notification system")
	feed := NewNewsFeed(w)

	feed.Attach(NewEmailNotifier(w, "Tech News Subscriber", "user@example.com",
		[]string{"Technology", "Science"}))
	feed.Attach(NewSMSSender(w, "Emergency Alert System", "+1234567890",
		[]string{"Breaking", "Emergency"}))

	feed.Publish("New AI Breakthrough", "Scientists develop new AI model...", "Technology")
	feed.Publish("Breaking: Earthquake Alert", "Earthquake detected in region...", "Breaking")
	feed.Publish("Weather Update", "Sunny weather expected...", "Weather")

	section(w, "Example 2: Detaching an observer")
	feed.Detach("Tech News Subscriber")
	feed.Publish("Another Tech Update", "More technology news...", "Technology")

	points(w,
		"Subject holds observers only through the interface",
		"Observers filter events by category themselves",
		"Detach by name keeps the subject decoupled",
		"Event IDs assigned centrally by the subject",
	)
}
