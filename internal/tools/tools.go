package tools

import (
	"bytes"
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"

	"github.com/airfreightlabs/uld-load-planner/internal/calculator"
	"github.com/airfreightlabs/uld-load-planner/internal/uldspec"
)

// Executor runs a tool against raw JSON arguments and returns its text
// report. Executors never fail; every error condition is rendered into the
// returned text so the calling orchestration layer always receives a value.
type Executor func(arguments json.RawMessage) string

// Definition is the serializable metadata describing one tool.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tool pairs a definition with its executor.
type Tool struct {
	Definition Definition
	Execute    Executor
}

// Registry holds the fixed set of calculation tools. It is populated once at
// construction and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	order []string
	tools map[string]Tool
}

// New builds the registry of the six ULD calculation tools backed by the
// given calculator. defaultULDType is used by calculate_uld_requirements when
// the caller omits a type.
func New(calc calculator.Calculator, defaultULDType string) *Registry {
	if defaultULDType == "" {
		defaultULDType = uldspec.DefaultCode
	}

	r := &Registry{tools: make(map[string]Tool)}
	r.register(Tool{
		Definition: Definition{
			Name:        "calculate_total_weight",
			Description: "Calculate total cargo weight from a list of items with weight (kg) and quantity.",
		},
		Execute: func(arguments json.RawMessage) string {
			items, err := decodeCargoItems(arguments)
			if err != nil {
				return "Error calculating weight: " + err.Error()
			}
			return renderWeightTotal(calc.TotalWeight(items))
		},
	})
	r.register(Tool{
		Definition: Definition{
			Name:        "calculate_total_volume",
			Description: "Calculate total cargo volume in cubic meters from item dimensions (cm) and quantity.",
		},
		Execute: func(arguments json.RawMessage) string {
			items, err := decodeCargoItems(arguments)
			if err != nil {
				return "Error calculating volume: " + err.Error()
			}
			return renderVolumeTotal(calc.TotalVolume(items))
		},
	})
	r.register(Tool{
		Definition: Definition{
			Name:        "validate_weight_constraints",
			Description: "Validate a cargo weight against a ULD type's gross or net weight capacity.",
		},
		Execute: func(arguments json.RawMessage) string {
			var args validateWeightArgs
			if err := decodeArgs(arguments, &args); err != nil {
				return "Error validating weight: " + err.Error()
			}
			includeTare := true
			if args.IncludeTare != nil {
				includeTare = *args.IncludeTare
			}
			result, err := calc.ValidateWeight(args.ULDType, args.CargoWeight, includeTare)
			if err != nil {
				return renderUnknownType(args.ULDType)
			}
			return renderWeightValidation(result)
		},
	})
	r.register(Tool{
		Definition: Definition{
			Name:        "calculate_uld_requirements",
			Description: "Calculate how many ULDs of a type are needed for a total weight and volume.",
		},
		Execute: func(arguments json.RawMessage) string {
			var args requirementsArgs
			if err := decodeArgs(arguments, &args); err != nil {
				return "Error calculating requirements: " + err.Error()
			}
			uldType := args.ULDType
			if uldType == "" {
				uldType = defaultULDType
			}
			result, err := calc.Requirements(args.TotalWeight, args.TotalVolume, uldType)
			if err != nil {
				return renderUnknownType(uldType)
			}
			return renderRequirement(result)
		},
	})
	r.register(Tool{
		Definition: Definition{
			Name:        "check_dimensional_fit",
			Description: "Check whether a cargo piece's dimensions fit a ULD type's internal dimensions.",
		},
		Execute: func(arguments json.RawMessage) string {
			var args dimensionalFitArgs
			if err := decodeArgs(arguments, &args); err != nil {
				return "Error checking fit: " + err.Error()
			}
			result, err := calc.CheckFit(args.CargoLength, args.CargoWidth, args.CargoHeight, args.ULDType)
			if err != nil {
				return renderUnknownType(args.ULDType)
			}
			return renderFit(result)
		},
	})
	r.register(Tool{
		Definition: Definition{
			Name:        "compare_uld_options",
			Description: "Compare all ULD types for a load and recommend the best-utilized option.",
		},
		Execute: func(arguments json.RawMessage) string {
			var args compareArgs
			if err := decodeArgs(arguments, &args); err != nil {
				return "Error comparing options: " + err.Error()
			}
			return renderComparison(calc.CompareOptions(args.CargoWeight, args.CargoVolume))
		},
	})
	return r
}

func (r *Registry) register(t Tool) {
	r.order = append(r.order, t.Definition.Name)
	r.tools[t.Definition.Name] = t
}

// Get returns a registered tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions returns all tool definitions in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition)
	}
	return defs
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

type cargoItemsArgs struct {
	CargoItems json.RawMessage `json:"cargo_items"`
}

type validateWeightArgs struct {
	ULDType     string  `json:"uld_type"`
	CargoWeight float64 `json:"cargo_weight"`
	IncludeTare *bool   `json:"include_tare"`
}

type requirementsArgs struct {
	TotalWeight float64 `json:"total_weight"`
	TotalVolume float64 `json:"total_volume"`
	ULDType     string  `json:"uld_type"`
}

type dimensionalFitArgs struct {
	CargoLength float64 `json:"cargo_length"`
	CargoWidth  float64 `json:"cargo_width"`
	CargoHeight float64 `json:"cargo_height"`
	ULDType     string  `json:"uld_type"`
}

type compareArgs struct {
	CargoWeight float64 `json:"cargo_weight"`
	CargoVolume float64 `json:"cargo_volume"`
}

// decodeArgs unmarshals tool arguments, falling back to a jsonrepair pass
// when the payload is not valid JSON. Model-produced arguments routinely
// arrive with unquoted keys or trailing commas.
func decodeArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(raw))
		if repairErr != nil {
			return err
		}
		return json.Unmarshal([]byte(repaired), out)
	}
	return nil
}

// decodeCargoItems accepts the aggregation tools' cargo_items argument either
// as a JSON-encoded string (the original tool contract) or as an inline
// array, with jsonrepair recovery on malformed payloads.
func decodeCargoItems(raw json.RawMessage) ([]calculator.CargoItem, error) {
	payload := json.RawMessage(bytes.TrimSpace(raw))
	if len(payload) > 0 && payload[0] == '{' {
		var wrapper cargoItemsArgs
		if err := decodeArgs(payload, &wrapper); err != nil {
			return nil, err
		}
		// Absent cargo_items leaves the payload as-is and fails below.
		if len(wrapper.CargoItems) > 0 {
			payload = json.RawMessage(bytes.TrimSpace(wrapper.CargoItems))
		}
	}
	if len(payload) > 0 && payload[0] == '"' {
		var encoded string
		if err := json.Unmarshal(payload, &encoded); err != nil {
			return nil, err
		}
		payload = json.RawMessage(encoded)
	}

	var items []calculator.CargoItem
	if err := json.Unmarshal(payload, &items); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(payload))
		if repairErr != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(repaired), &items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
