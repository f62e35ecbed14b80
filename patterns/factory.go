package patterns

import (
	"fmt"
	"io"
)

// Animal is the factory's product interface.
type Animal interface {
	Sound() string
	Species() string
	Weight() float64
}

// AnimalKind selects which concrete animal the factory builds.
type AnimalKind string

const (
	KindDog  AnimalKind = "dog"
	KindCat  AnimalKind = "cat"
	KindBird AnimalKind = "bird"
)

// Dog is a concrete product.
type Dog struct {
	name   string
	weight float64
}

func (d Dog) Sound() string   { return fmt.Sprintf("%s says: Woof!", d.name) }
func (d Dog) Species() string { return "Canis lupus familiaris" }
func (d Dog) Weight() float64 { return d.weight }

// Cat is a concrete product.
type Cat struct {
	name   string
	weight float64
}

func (c Cat) Sound() string   { return fmt.Sprintf("%s says: Meow!", c.name) }
func (c Cat) Species() string { return "Felis catus" }
func (c Cat) Weight() float64 { return c.weight }

// NewAnimal builds an animal of the given kind, validating the weight range
// per species. Birds are not implemented yet and always error.
func NewAnimal(kind AnimalKind, name string, weight float64) (Animal, error) {
	switch kind {
	case KindDog:
		if weight < 1.0 || weight > 100.0 {
			return nil, fmt.Errorf("dog weight must be between 1.0 and 100.0 kg, got %.1f", weight)
		}
		return Dog{name: name, weight: weight}, nil
	case KindCat:
		if weight < 0.5 || weight > 20.0 {
			return nil, fmt.Errorf("cat weight must be between 0.5 and 20.0 kg, got %.1f", weight)
		}
		return Cat{name: name, weight: weight}, nil
	case KindBird:
		return nil, fmt.Errorf("bird implementation not yet available")
	default:
		return nil, fmt.Errorf("unknown animal kind %q", kind)
	}
}

// NewDog is a convenience factory using the average dog weight.
func NewDog(name string) Animal { return Dog{name: name, weight: 25.0} }

// NewCat is a convenience factory using the average cat weight.
func NewCat(name string) Animal { return Cat{name: name, weight: 4.5} }

// DemoFactory walks through object creation via a factory function.
func DemoFactory(w io.Writer) {
	banner(w, "🏭 FACTORY PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern creates objects without naming concrete types.")
	fmt.Fprintln(w, "Go benefit: constructor functions returning an interface.")

	section(w, "Example 1: Creating animals with the factory")
	buddy, _ := NewAnimal(KindDog, "Buddy", 30.0)
	whiskers, _ := NewAnimal(KindCat, "Whiskers", 5.0)
	animals := []Animal{buddy, whiskers, NewDog("Max"), NewCat("Luna")}

	for _, a := range animals {
		fmt.Fprintln(w, a.Sound())
		fmt.Fprintf(w, "   Species: %s\n", a.Species())
		fmt.Fprintf(w, "   Weight: %.1f kg\n\n", a.Weight())
	}

	section(w, "Example 2: Error handling with invalid parameters")
	if _, err := NewAnimal(KindDog, "Tiny", 0.5); err != nil {
		fmt.Fprintf(w, "❌ Error: %v\n", err)
	} else {
		fmt.Fprintln(w, "✅ Animal created")
	}

	points(w,
		"Interfaces give runtime polymorphism without inheritance",
		"Kind constants select the concrete product",
		"Validation errors surface as plain error returns",
		"Callers depend only on the Animal interface",
	)
}
