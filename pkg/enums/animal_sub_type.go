package enums

import "fmt"

// AnimalSubType refines an AnimalType tag. Subtypes only carry meaning in the
// context of the animal type(s) present on the product.
type AnimalSubType string

const (
	// cattle
	AnimalSubTypeDairy AnimalSubType = "dairy"
	AnimalSubTypeBeef  AnimalSubType = "beef"
	AnimalSubTypeCalf  AnimalSubType = "calf"
	// poultry
	AnimalSubTypeLayers   AnimalSubType = "layers"
	AnimalSubTypeBroilers AnimalSubType = "broilers"
	AnimalSubTypeChicks   AnimalSubType = "chicks"
	// swine
	AnimalSubTypePiglets   AnimalSubType = "piglets"
	AnimalSubTypeGrowing   AnimalSubType = "growing"
	AnimalSubTypeFinishing AnimalSubType = "finishing"
	// sheep
	AnimalSubTypeLambs AnimalSubType = "lambs"
	AnimalSubTypeEwes  AnimalSubType = "ewes"
	// rabbit
	AnimalSubTypeMeatRabbit     AnimalSubType = "meat_rabbit"
	AnimalSubTypeBreedingRabbit AnimalSubType = "breeding_rabbit"
	// fish
	AnimalSubTypeTilapia  AnimalSubType = "tilapia"
	AnimalSubTypeSalmon   AnimalSubType = "salmon"
	AnimalSubTypeTambaqui AnimalSubType = "tambaqui"
	// shrimp
	AnimalSubTypeFreshwaterShrimp AnimalSubType = "freshwater_shrimp"
	AnimalSubTypeSaltwaterShrimp  AnimalSubType = "saltwater_shrimp"
	// goat
	AnimalSubTypeMeatGoat AnimalSubType = "meat_goat"
	AnimalSubTypeMilkGoat AnimalSubType = "milk_goat"
	AnimalSubTypeKidGoat  AnimalSubType = "kid_goat"
	// horse
	AnimalSubTypeFoal             AnimalSubType = "foal"
	AnimalSubTypeAdultHorse       AnimalSubType = "adult_horse"
	AnimalSubTypePerformanceHorse AnimalSubType = "performance_horse"
)

var subTypesByAnimalType = map[AnimalType][]AnimalSubType{
	AnimalTypeCattle:  {AnimalSubTypeDairy, AnimalSubTypeBeef, AnimalSubTypeCalf},
	AnimalTypePoultry: {AnimalSubTypeLayers, AnimalSubTypeBroilers, AnimalSubTypeChicks},
	AnimalTypeSwine:   {AnimalSubTypePiglets, AnimalSubTypeGrowing, AnimalSubTypeFinishing},
	AnimalTypeSheep:   {AnimalSubTypeLambs, AnimalSubTypeEwes},
	AnimalTypeRabbit:  {AnimalSubTypeMeatRabbit, AnimalSubTypeBreedingRabbit},
	AnimalTypeFish:    {AnimalSubTypeTilapia, AnimalSubTypeSalmon, AnimalSubTypeTambaqui},
	AnimalTypeShrimp:  {AnimalSubTypeFreshwaterShrimp, AnimalSubTypeSaltwaterShrimp},
	AnimalTypeGoat:    {AnimalSubTypeMeatGoat, AnimalSubTypeMilkGoat, AnimalSubTypeKidGoat},
	AnimalTypeHorse:   {AnimalSubTypeFoal, AnimalSubTypeAdultHorse, AnimalSubTypePerformanceHorse},
}

// String implements fmt.Stringer.
func (a AnimalSubType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AnimalSubType.
func (a AnimalSubType) IsValid() bool {
	for _, subs := range subTypesByAnimalType {
		for _, candidate := range subs {
			if candidate == a {
				return true
			}
		}
	}
	return false
}

// BelongsTo reports whether the subtype refines the given animal type.
func (a AnimalSubType) BelongsTo(animalType AnimalType) bool {
	for _, candidate := range subTypesByAnimalType[animalType] {
		if candidate == a {
			return true
		}
	}
	return false
}

// SubTypesFor returns the subtypes valid for the given animal type.
func SubTypesFor(animalType AnimalType) []AnimalSubType {
	subs := subTypesByAnimalType[animalType]
	out := make([]AnimalSubType, len(subs))
	copy(out, subs)
	return out
}

// ParseAnimalSubType converts raw input into an AnimalSubType.
func ParseAnimalSubType(value string) (AnimalSubType, error) {
	candidate := AnimalSubType(value)
	if candidate.IsValid() {
		return candidate, nil
	}
	return "", fmt.Errorf("invalid animal sub type %q", value)
}
