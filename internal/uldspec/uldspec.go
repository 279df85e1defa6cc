package uldspec

import "strings"

// HeightOverhangCm is the tolerance allowed above the internal height of a
// container when checking dimensional fit. Cargo may protrude up to this many
// centimeters past the rated internal height.
const HeightOverhangCm = 5

// DefaultCode is the ULD type assumed when a caller does not specify one.
// AKE is the smallest standard container in the table.
const DefaultCode = "AKE"

// Spec describes one ULD (Unit Load Device) container class.
//
// MaxNetKg is stored as published rather than derived as gross minus tare, so
// the table stays faithful to the reference figures if a future entry does
// not subtract cleanly. InternalVolumeM3 is the device's rated usable volume,
// not the product of the three internal dimensions.
type Spec struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	MaxGrossKg       float64 `json:"maxGrossKg"`
	TareKg           float64 `json:"tareKg"`
	MaxNetKg         float64 `json:"maxNetKg"`
	InternalLengthCm float64 `json:"internalLengthCm"`
	InternalWidthCm  float64 `json:"internalWidthCm"`
	InternalHeightCm float64 `json:"internalHeightCm"`
	InternalVolumeM3 float64 `json:"internalVolumeM3"`
}

// specs holds the reference table in declaration order. The table is constant
// data; it is only ever read.
var specs = []Spec{
	{Code: "AKE", Name: "LD3", MaxGrossKg: 1588, TareKg: 85, MaxNetKg: 1503, InternalLengthCm: 150, InternalWidthCm: 147, InternalHeightCm: 157, InternalVolumeM3: 3.5},
	{Code: "AAA", Name: "LD7", MaxGrossKg: 4626, TareKg: 120, MaxNetKg: 4506, InternalLengthCm: 311, InternalWidthCm: 147, InternalHeightCm: 157, InternalVolumeM3: 7.2},
	{Code: "AKN", Name: "LD8", MaxGrossKg: 2449, TareKg: 105, MaxNetKg: 2344, InternalLengthCm: 238, InternalWidthCm: 147, InternalHeightCm: 157, InternalVolumeM3: 5.5},
	{Code: "AAP", Name: "LD6", MaxGrossKg: 3176, TareKg: 115, MaxNetKg: 3061, InternalLengthCm: 311, InternalWidthCm: 147, InternalHeightCm: 157, InternalVolumeM3: 7.2},
	{Code: "AMA", Name: "LD9", MaxGrossKg: 6804, TareKg: 180, MaxNetKg: 6624, InternalLengthCm: 311, InternalWidthCm: 238, InternalHeightCm: 157, InternalVolumeM3: 11.6},
}

var byCode = func() map[string]Spec {
	m := make(map[string]Spec, len(specs))
	for _, s := range specs {
		m[s.Code] = s
	}
	return m
}()

// Canonicalize normalises a caller-supplied ULD code to its canonical
// uppercase form.
func Canonicalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the spec for the given code. Lookup is case-insensitive.
func Lookup(code string) (Spec, bool) {
	s, ok := byCode[Canonicalize(code)]
	return s, ok
}

// All returns a copy of the specification table in declaration order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Codes returns the known ULD codes in declaration order.
func Codes() []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Code
	}
	return out
}

// CodeList returns the known codes joined for use in diagnostics,
// e.g. "AKE, AAA, AKN, AAP, AMA".
func CodeList() string {
	return strings.Join(Codes(), ", ")
}
