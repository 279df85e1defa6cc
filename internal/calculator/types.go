package calculator

import "github.com/airfreightlabs/uld-load-planner/internal/uldspec"

// CargoItem is one caller-supplied cargo line. Weight is in kilograms and the
// dimensions are in centimeters. A zero Quantity is treated as one item.
type CargoItem struct {
	Weight   float64 `json:"weight"`
	LengthCm float64 `json:"length"`
	WidthCm  float64 `json:"width"`
	HeightCm float64 `json:"height"`
	Quantity int     `json:"quantity"`
}

// WeightLine is the per-item contribution to a weight total.
type WeightLine struct {
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weightKg"`
	TotalKg  float64 `json:"totalKg"`
}

// WeightTotal aggregates cargo items into a total weight with a breakdown in
// input order.
type WeightTotal struct {
	TotalKg float64      `json:"totalKg"`
	Lines   []WeightLine `json:"lines"`
}

// VolumeLine is the per-item contribution to a volume total.
type VolumeLine struct {
	Quantity int     `json:"quantity"`
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
	HeightCm float64 `json:"heightCm"`
	TotalM3  float64 `json:"totalM3"`
}

// VolumeTotal aggregates cargo items into a total volume in cubic meters.
type VolumeTotal struct {
	TotalM3 float64      `json:"totalM3"`
	Lines   []VolumeLine `json:"lines"`
}

// WeightValidation reports whether a cargo weight fits one ULD's capacity.
// ComparedKg is the value held against CapacityKg: cargo plus tare when the
// gross limit applies, the cargo weight alone when the net limit applies.
type WeightValidation struct {
	Spec           uldspec.Spec `json:"spec"`
	CargoKg        float64      `json:"cargoKg"`
	IncludeTare    bool         `json:"includeTare"`
	ComparedKg     float64      `json:"comparedKg"`
	CapacityKg     float64      `json:"capacityKg"`
	Valid          bool         `json:"valid"`
	RemainingKg    float64      `json:"remainingKg"`
	ExcessKg       float64      `json:"excessKg"`
	UtilizationPct float64      `json:"utilizationPct"`
}

// AxisCheck is one dimension of a fit check. LimitCm already includes the
// height overhang tolerance where it applies.
type AxisCheck struct {
	Axis     string  `json:"axis"`
	CargoCm  float64 `json:"cargoCm"`
	LimitCm  float64 `json:"limitCm"`
	Fits     bool    `json:"fits"`
	ExcessCm float64 `json:"excessCm"`
}

// FitResult reports whether a cargo piece fits a ULD's internal dimensions.
// Axes are fixed: no rotation search is performed, so a piece that would fit
// rotated is still reported as not fitting.
type FitResult struct {
	Spec   uldspec.Spec `json:"spec"`
	Fits   bool         `json:"fits"`
	Length AxisCheck    `json:"length"`
	Width  AxisCheck    `json:"width"`
	Height AxisCheck    `json:"height"`
}

// Requirement reports how many containers of one ULD type a load needs.
// ByWeight and ByVolume are the raw fractional counts before ceiling.
type Requirement struct {
	Spec              uldspec.Spec `json:"spec"`
	TotalWeightKg     float64      `json:"totalWeightKg"`
	TotalVolumeM3     float64      `json:"totalVolumeM3"`
	ByWeight          float64      `json:"byWeight"`
	ByVolume          float64      `json:"byVolume"`
	ByWeightCount     int          `json:"byWeightCount"`
	ByVolumeCount     int          `json:"byVolumeCount"`
	Required          int          `json:"required"`
	LimitingFactor    string       `json:"limitingFactor"`
	WeightUtilization float64      `json:"weightUtilizationPct"`
	VolumeUtilization float64      `json:"volumeUtilizationPct"`
}

// Option is one candidate in a multi-type comparison.
type Option struct {
	Spec              uldspec.Spec `json:"spec"`
	Required          int          `json:"required"`
	WeightUtilization float64      `json:"weightUtilizationPct"`
	VolumeUtilization float64      `json:"volumeUtilizationPct"`
	AvgUtilization    float64      `json:"avgUtilizationPct"`
}

// Comparison ranks every known ULD type for a given load. Options are sorted
// descending by average utilization; the first entry is the recommendation.
type Comparison struct {
	CargoWeightKg float64  `json:"cargoWeightKg"`
	CargoVolumeM3 float64  `json:"cargoVolumeM3"`
	Options       []Option `json:"options"`
}

// Recommended returns the top-ranked option.
func (c Comparison) Recommended() Option {
	return c.Options[0]
}

// Calculator describes the behaviour required from the ULD sizing engine.
// Every operation is a pure function of its arguments and the immutable
// specification table.
type Calculator interface {
	TotalWeight(items []CargoItem) WeightTotal
	TotalVolume(items []CargoItem) VolumeTotal
	ValidateWeight(uldType string, cargoKg float64, includeTare bool) (WeightValidation, error)
	CheckFit(lengthCm, widthCm, heightCm float64, uldType string) (FitResult, error)
	Requirements(totalWeightKg, totalVolumeM3 float64, uldType string) (Requirement, error)
	CompareOptions(cargoWeightKg, cargoVolumeM3 float64) Comparison
}
