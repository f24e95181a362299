package config

import "sort"

var Presets = map[string]*Config{
	"demo": {
		Capacity: 5, GrowStep: 3,
		Store: StoreConfig{Backend: "file", Dir: DefaultDataDir},
		Trace: TraceConfig{Samples: 32, Height: DefaultPlotHeight, Width: DefaultPlotWidth},
	},
	"unit": {
		Capacity: 0, GrowStep: 1,
		Store: StoreConfig{Backend: "file", Dir: DefaultDataDir},
		Trace: TraceConfig{Samples: 32, Height: DefaultPlotHeight, Width: DefaultPlotWidth},
	},
	"chunked": {
		Capacity: 16, GrowStep: 16,
		Store: StoreConfig{Backend: "file", Dir: DefaultDataDir},
		Trace: TraceConfig{Samples: 256, Height: DefaultPlotHeight, Width: DefaultPlotWidth},
	},
	"page": {
		Capacity: 512, GrowStep: 512,
		Store: StoreConfig{Backend: "bolt", Dir: DefaultDataDir},
		Trace: TraceConfig{Samples: 4096, Height: 15, Width: DefaultPlotWidth},
	},
}

// GetPreset returns a copy so callers may override fields.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
