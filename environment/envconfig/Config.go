// Package envconfig provides configuration structs for configuring
// environments with default physical parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	env "github.com/samuelfneumann/gopomdp/environment"
	"github.com/samuelfneumann/gopomdp/environment/classiccontrol/mountaincar"
	"github.com/samuelfneumann/gopomdp/environment/heavenhell"
	"github.com/samuelfneumann/gopomdp/environment/pomdp"
	"github.com/samuelfneumann/gopomdp/environment/wrappers"
	ts "github.com/samuelfneumann/gopomdp/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	HeavenHellOneHot          EnvName = "heaven-hell-onehot-ls-v0"
	MountainCar               EnvName = "pomdp-mountain-car-v0"
	MountainCarEpisodic       EnvName = "pomdp-mountain-car-episodic-v0"
	MountainCarEpisodicEasy   EnvName = "pomdp-mountain-car-episodic-easy-v0"
	MountainCarOptLower       EnvName = "pomdp-mountain-car-opt-lower-v0"
	ContinuousHeavenHellLower EnvName = "continuous-heaven-hell-opt-lower-v0"
)

// Defaults used for zero valued Config fields
const (
	DefaultEpisodicCutoff      uint    = 200
	DefaultEpisodicEasyCutoff  uint    = 100
	DefaultHeavenHellMemory    int     = heavenhell.DefaultMemory
	DefaultMountainCarDiscount float64 = mountaincar.DefaultDiscount
)

// Names returns the names of all environments which can be configured
func Names() []EnvName {
	return []EnvName{
		HeavenHellOneHot,
		MountainCar,
		MountainCarEpisodic,
		MountainCarEpisodicEasy,
		MountainCarOptLower,
		ContinuousHeavenHellLower,
	}
}

// Config implements a specific configuration of a specific environment.
// Zero valued fields take the defaults of the named environment.
//
//	Field			Used by
//	MemorySize		heaven-hell-onehot-ls-v0
//	EpisodeCutoff	all; the episodic variants default to 200 and 100
//	Discount		all; heaven-hell defaults to the model's discount
type Config struct {
	Environment   EnvName
	MemorySize    int     `json:",omitempty"`
	EpisodeCutoff uint    `json:",omitempty"`
	Discount      float64 `json:",omitempty"`
}

// NewConfig returns a new environment Config with default values
func NewConfig(envName EnvName) Config {
	return Config{Environment: envName}
}

// Load reads a JSON Config from the file at path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not parse config: %v", err)
	}
	return c, nil
}

// Save writes the Config as JSON to the file at path
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}

// Cutoff returns the episode step limit of the Config, or 0 if episodes
// are not cut off
func (c Config) Cutoff() uint {
	if c.EpisodeCutoff != 0 {
		return c.EpisodeCutoff
	}

	switch c.Environment {
	case MountainCarEpisodic:
		return DefaultEpisodicCutoff
	case MountainCarEpisodicEasy:
		return DefaultEpisodicEasyCutoff
	}
	return 0
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. The environment is reset and
// ready to be stepped.
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	var e env.Environment
	var err error

	switch c.Environment {
	case HeavenHellOneHot:
		e, err = c.createHeavenHell(seed)

	case MountainCar, MountainCarEpisodic:
		e, err = c.createVelocity(mountaincar.DefaultParams(), seed)

	case MountainCarEpisodicEasy:
		e, err = c.createVelocity(mountaincar.EasyParams(), seed)

	case MountainCarOptLower, ContinuousHeavenHellLower:
		var m *mountaincar.OptLower
		m, _, err = mountaincar.NewOptLower(mountaincar.DefaultParams(),
			c.discount(DefaultMountainCarDiscount), seed)
		e = m

	default:
		return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
			"environment %v, no such environment", c.Environment)
	}
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	if cutoff := c.Cutoff(); cutoff > 0 {
		e, err = wrappers.NewTimeLimit(e, int(cutoff))
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
		}
	}

	step, err := e.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: could not reset: %v",
			err)
	}
	return e, step, nil
}

func (c Config) createHeavenHell(seed uint64) (env.Environment, error) {
	model := pomdp.NewHeavenHell(c.discount(pomdp.DefaultDiscount), seed)

	memory := c.MemorySize
	if memory == 0 {
		memory = DefaultHeavenHellMemory
	}

	o, err := heavenhell.New(model, memory)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (c Config) createVelocity(p mountaincar.Params,
	seed uint64) (env.Environment, error) {
	m, _, err := mountaincar.NewVelocity(p,
		c.discount(DefaultMountainCarDiscount), seed)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (c Config) discount(def float64) float64 {
	if c.Discount != 0 {
		return c.Discount
	}
	return def
}
