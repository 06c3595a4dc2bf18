package domain

import (
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// AllergenFlagPrefix prefixes every allergen flag name on a product record.
const AllergenFlagPrefix = "contains_"

// StandardAllergens lists the allergens every product declares, in the order
// the flags are stored and presented.
var StandardAllergens = []string{ //nolint: gochecknoglobals
	"peanuts",
	"tree_nuts",
	"milk",
	"eggs",
	"fish",
	"shellfish",
	"wheat",
	"soy",
}

// AllergenFlag is a single `contains_<allergen>` entry of a product.
type AllergenFlag struct {
	Name    string
	Present bool
}

// Allergen returns the allergen identifier of the flag, i.e. its name
// without the contains_ prefix.
func (f AllergenFlag) Allergen() string {
	return strings.TrimPrefix(f.Name, AllergenFlagPrefix)
}

// Allergens holds the allergen flags of a product in presentation order.
// JSON objects are decoded and encoded with their key order preserved, which
// the health evaluator relies on for the order of allergen issues.
type Allergens struct {
	Flags []AllergenFlag
}

// NewAllergens builds the standard flag set, marking the given allergen
// identifiers as present.
func NewAllergens(present ...string) *Allergens {
	a := &Allergens{Flags: make([]AllergenFlag, 0, len(StandardAllergens))}
	for _, name := range StandardAllergens {
		a.Flags = append(a.Flags, AllergenFlag{
			Name:    AllergenFlagPrefix + name,
			Present: slices.Contains(present, name),
		})
	}

	return a
}

// Contains reports whether the flag for allergen is present and true.
func (a *Allergens) Contains(allergen string) bool {
	if a == nil {
		return false
	}
	for _, f := range a.Flags {
		if f.Name == AllergenFlagPrefix+allergen {
			return f.Present
		}
	}

	return false
}

// Set updates the flag for allergen, appending it when missing.
func (a *Allergens) Set(allergen string, present bool) {
	name := AllergenFlagPrefix + allergen
	for i := range a.Flags {
		if a.Flags[i].Name == name {
			a.Flags[i].Present = present

			return
		}
	}
	a.Flags = append(a.Flags, AllergenFlag{Name: name, Present: present})
}

// MarshalJSON encodes the flags as a JSON object in flag order.
func (a Allergens) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.ObjStart()
	for _, f := range a.Flags {
		e.FieldStart(f.Name)
		e.Bool(f.Present)
	}
	e.ObjEnd()

	return e.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of boolean flags keeping key order.
// A null flag value is read as false.
func (a *Allergens) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	flags := make([]AllergenFlag, 0, len(StandardAllergens))
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		flag := AllergenFlag{Name: key}
		switch d.Next() {
		case jx.Null:
			if err := d.Null(); err != nil {
				return errors.Wrapf(err, "flag %q", key)
			}
		default:
			v, err := d.Bool()
			if err != nil {
				return errors.Wrapf(err, "flag %q", key)
			}
			flag.Present = v
		}
		flags = append(flags, flag)

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode allergens")
	}
	a.Flags = flags

	return nil
}
