package config

import "sort"

// Presets are named variations of the built-in animation. Window settings
// always come from DefaultConfig.
var Presets = map[string]AnimationConfig{
	"classic": DefaultConfig().Animation,
	"slow": {
		Step: 0.003, ResetPeriod: 20, BaseScale: 160,
		Eye: defaultEye(), MaxTerms: 50, Ceiling: 1e15, ArcSteps: 80,
	},
	"fast": {
		Step: 0.02, ResetPeriod: 20, BaseScale: 160,
		Eye: defaultEye(), MaxTerms: 50, Ceiling: 1e15, ArcSteps: 80,
	},
	"deep": {
		Step: 0.0075, ResetPeriod: 40, BaseScale: 160,
		Eye: defaultEye(), MaxTerms: 50, Ceiling: 1e15, ArcSteps: 80,
	},
	"coarse": {
		Step: 0.0075, ResetPeriod: 20, BaseScale: 160,
		Eye: defaultEye(), MaxTerms: 50, Ceiling: 1e15, ArcSteps: 12,
	},
}

func defaultEye() EyeConfig {
	return DefaultConfig().Animation.Eye
}

// GetPreset returns a full config for the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	anim, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Animation = anim
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
