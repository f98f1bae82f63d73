package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Special weapon variants fired on a full charge.
const (
	SpecialRing    = "ring"
	SpecialNuclear = "nuclear"
)

// Tuning holds the parameters that may be overridden from a YAML file.
type Tuning struct {
	Director     DirectorTuning `yaml:"director"`
	Special      string         `yaml:"special"`      // ring or nuclear
	EngineFlames bool           `yaml:"engineFlames"` // trailing flames behind ships
}

// SlotTuning is one periodic spawn opportunity.
type SlotTuning struct {
	Offset      int `yaml:"offset"`
	Probability int `yaml:"probability"` // percent, 0-100
}

// DirectorTuning drives the spawn director.
type DirectorTuning struct {
	Period int `yaml:"period"`

	Freighter SlotTuning `yaml:"freighter"` // Metralha, or Transport once TransportScore is reached
	Heavy     SlotTuning `yaml:"heavy"`     // Star, Rain or Encrenca by score
	Meteors   SlotTuning `yaml:"meteors"`
	Star      SlotTuning `yaml:"star"`
	Squadron  SlotTuning `yaml:"squadron"`

	MeteorCount   int `yaml:"meteorCount"`
	SquadronSize  int `yaml:"squadronSize"`
	PopulationCap int `yaml:"populationCap"`

	TransportScore int `yaml:"transportScore"`
	RainScore      int `yaml:"rainScore"`
	EncrencaScore  int `yaml:"encrencaScore"`

	// FallbackTicks spawns a lone Enemy when the screen has been empty of
	// enemies for this many ticks. Zero disables it.
	FallbackTicks int `yaml:"fallbackTicks"`
}

// DefaultTuning returns the stock game parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Director: DirectorTuning{
			Period:         500,
			Freighter:      SlotTuning{Offset: 0, Probability: 30},
			Heavy:          SlotTuning{Offset: 100, Probability: 30},
			Meteors:        SlotTuning{Offset: 200, Probability: 30},
			Star:           SlotTuning{Offset: 300, Probability: 30},
			Squadron:       SlotTuning{Offset: 400, Probability: 30},
			MeteorCount:    50,
			SquadronSize:   3,
			PopulationCap:  25,
			TransportScore: 500,
			RainScore:      500,
			EncrencaScore:  5000,
			FallbackTicks:  1500,
		},
		Special:      SpecialRing,
		EngineFlames: true,
	}
}

// LoadTuning reads a YAML tuning file. Keys missing from the file keep
// their default values.
func LoadTuning(filePath string) (Tuning, error) {
	t := DefaultTuning()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning config: %w", err)
	}

	return t, nil
}

// LoadTuningFromEnv loads the file named by TIRO_TUNING, or returns the
// defaults when the variable is unset.
func LoadTuningFromEnv() (Tuning, error) {
	path := GetEnv("TIRO_TUNING", "")
	if path == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(path)
}

// Validate reports the first invalid parameter.
func (t Tuning) Validate() error {
	d := t.Director
	if d.Period <= 0 {
		return fmt.Errorf("director.period must be > 0, got %d", d.Period)
	}

	slots := []struct {
		name string
		slot SlotTuning
	}{
		{"freighter", d.Freighter},
		{"heavy", d.Heavy},
		{"meteors", d.Meteors},
		{"star", d.Star},
		{"squadron", d.Squadron},
	}
	for _, s := range slots {
		if s.slot.Offset < 0 || s.slot.Offset >= d.Period {
			return fmt.Errorf("director.%s.offset must be in [0, %d), got %d", s.name, d.Period, s.slot.Offset)
		}
		if s.slot.Probability < 0 || s.slot.Probability > 100 {
			return fmt.Errorf("director.%s.probability must be between 0 and 100, got %d", s.name, s.slot.Probability)
		}
	}

	if d.MeteorCount < 0 {
		return fmt.Errorf("director.meteorCount must be >= 0, got %d", d.MeteorCount)
	}
	if d.SquadronSize < 0 {
		return fmt.Errorf("director.squadronSize must be >= 0, got %d", d.SquadronSize)
	}
	if d.PopulationCap < 0 {
		return fmt.Errorf("director.populationCap must be >= 0, got %d", d.PopulationCap)
	}
	if d.FallbackTicks < 0 {
		return fmt.Errorf("director.fallbackTicks must be >= 0, got %d", d.FallbackTicks)
	}

	switch t.Special {
	case SpecialRing, SpecialNuclear:
	default:
		return fmt.Errorf("special must be %q or %q, got %q", SpecialRing, SpecialNuclear, t.Special)
	}

	return nil
}
