package main

import "github.com/pthm-cable/folio/config"

// ParamSpec defines a tunable parameter with bounds.
type ParamSpec struct {
	Name    string
	Path    string // YAML path for reference
	Min     float64
	Max     float64
	Default float64
}

// ParamVector holds the parameter specs being tuned.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the sign field parameter vector.
// size and max stay fixed: they are page design choices, not dynamics.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "count", Path: "signs.count", Min: 2, Max: 40, Default: 10},
			{Name: "speed", Path: "signs.speed", Min: 0.5, Max: 6.0, Default: 2.0},
			{Name: "cooldown_ms", Path: "signs.cooldown_ms", Min: 50, Max: 3000, Default: 300},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to the signs section of cfg.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Signs.Count = min(int(clamped[0]), cfg.Signs.Max)
	cfg.Signs.Speed = clamped[1]
	cfg.Signs.CooldownMS = clamped[2]
}

// ExtractFromConfig extracts current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Signs.Count),
		cfg.Signs.Speed,
		cfg.Signs.CooldownMS,
	}
}
