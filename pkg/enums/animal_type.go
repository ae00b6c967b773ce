package enums

import "fmt"

// AnimalType tags a feed product with the species it targets.
type AnimalType string

const (
	AnimalTypeCattle  AnimalType = "cattle"
	AnimalTypePoultry AnimalType = "poultry"
	AnimalTypeSwine   AnimalType = "swine"
	AnimalTypeSheep   AnimalType = "sheep"
	AnimalTypeRabbit  AnimalType = "rabbit"
	AnimalTypeFish    AnimalType = "fish"
	AnimalTypeShrimp  AnimalType = "shrimp"
	AnimalTypeGoat    AnimalType = "goat"
	AnimalTypeHorse   AnimalType = "horse"
)

var validAnimalTypes = []AnimalType{
	AnimalTypeCattle,
	AnimalTypePoultry,
	AnimalTypeSwine,
	AnimalTypeSheep,
	AnimalTypeRabbit,
	AnimalTypeFish,
	AnimalTypeShrimp,
	AnimalTypeGoat,
	AnimalTypeHorse,
}

// String implements fmt.Stringer.
func (a AnimalType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AnimalType.
func (a AnimalType) IsValid() bool {
	for _, candidate := range validAnimalTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// AnimalTypes returns the full enumeration.
func AnimalTypes() []AnimalType {
	out := make([]AnimalType, len(validAnimalTypes))
	copy(out, validAnimalTypes)
	return out
}

// ParseAnimalType converts raw input into an AnimalType.
func ParseAnimalType(value string) (AnimalType, error) {
	for _, candidate := range validAnimalTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid animal type %q", value)
}
