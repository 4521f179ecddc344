package models

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned for option labels outside the closed sets
// and for zero-valued options passed where a selection is required.
var ErrUnknownOption = errors.New("unknown option")

// Pronoun is one of the fixed pronoun choices on the application form.
// The label is unexported so other packages can only use the values below.
type Pronoun struct {
	label string
}

var (
	HeHim       = Pronoun{"He/him"}
	SheHer      = Pronoun{"She/her"}
	TheyThem    = Pronoun{"They/them"}
	XeXem       = Pronoun{"Xe/xem"}
	ZeHir       = Pronoun{"Ze/hir"}
	EyEm        = Pronoun{"Ey/em"}
	HirHir      = Pronoun{"Hir/hir"}
	FaeFaer     = Pronoun{"Fae/faer"}
	HuHu        = Pronoun{"Hu/hu"}
	UseNameOnly = Pronoun{"Use name only"}
	Custom      = Pronoun{"Custom"}
)

// Pronouns lists every pronoun in form order.
func Pronouns() []Pronoun {
	return []Pronoun{HeHim, SheHer, TheyThem, XeXem, ZeHir, EyEm, HirHir, FaeFaer, HuHu, UseNameOnly, Custom}
}

func (p Pronoun) String() string { return p.label }

// IsZero reports whether no pronoun was chosen.
func (p Pronoun) IsZero() bool { return p.label == "" }

func (p Pronoun) MarshalText() ([]byte, error) { return []byte(p.label), nil }

func (p *Pronoun) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Pronoun{}
		return nil
	}
	parsed, err := ParsePronoun(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePronoun maps a form label such as "They/them" back to its Pronoun.
func ParsePronoun(label string) (Pronoun, error) {
	for _, p := range Pronouns() {
		if p.label == label {
			return p, nil
		}
	}
	return Pronoun{}, fmt.Errorf("%w: pronoun %q", ErrUnknownOption, label)
}

// ExperienceLevel is one of the year bands offered by the experience questions.
type ExperienceLevel struct {
	label string
}

var (
	NoExperience = ExperienceLevel{"None"}
	ZeroToOne    = ExperienceLevel{"0-1 year"}
	OneToTwo     = ExperienceLevel{"1-2 years"}
	TwoToFour    = ExperienceLevel{"2-4 years"}
	FivePlus     = ExperienceLevel{"5+ years"}
)

// ExperienceLevels lists every band from least to most experience.
func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{NoExperience, ZeroToOne, OneToTwo, TwoToFour, FivePlus}
}

func (l ExperienceLevel) String() string { return l.label }

func (l ExperienceLevel) IsZero() bool { return l.label == "" }

func (l ExperienceLevel) MarshalText() ([]byte, error) { return []byte(l.label), nil }

func (l *ExperienceLevel) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = ExperienceLevel{}
		return nil
	}
	parsed, err := ParseExperienceLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func ParseExperienceLevel(label string) (ExperienceLevel, error) {
	for _, l := range ExperienceLevels() {
		if l.label == label {
			return l, nil
		}
	}
	return ExperienceLevel{}, fmt.Errorf("%w: experience level %q", ErrUnknownOption, label)
}
