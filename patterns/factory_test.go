package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnimal_WeightValidation(t *testing.T) {
	tests := []struct {
		name    string
		kind    AnimalKind
		weight  float64
		wantErr bool
	}{
		{"dog in range", KindDog, 30.0, false},
		{"dog at lower bound", KindDog, 1.0, false},
		{"dog too light", KindDog, 0.5, true},
		{"dog too heavy", KindDog, 150.0, true},
		{"cat in range", KindCat, 5.0, false},
		{"cat at lower bound", KindCat, 0.5, false},
		{"cat too heavy", KindCat, 25.0, true},
		{"bird unsupported", KindBird, 1.0, true},
		{"unknown kind", AnimalKind("fish"), 1.0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAnimal(tc.kind, "Pet", tc.weight)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, a)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.weight, a.Weight())
			}
		})
	}
}

func TestConvenienceFactories_AverageWeights(t *testing.T) {
	dog := NewDog("Max")
	assert.Equal(t, 25.0, dog.Weight())
	assert.Contains(t, dog.Sound(), "Woof")
	assert.Equal(t, "Canis lupus familiaris", dog.Species())

	cat := NewCat("Luna")
	assert.Equal(t, 4.5, cat.Weight())
	assert.Contains(t, cat.Sound(), "Meow")
	assert.Equal(t, "Felis catus", cat.Species())
}
