package main

import (
	"testing"

	"github.com/samuelfneumann/gopomdp/environment/classiccontrol/mountaincar"
	"github.com/samuelfneumann/gopomdp/environment/envconfig"
)

func TestConfigCutoff(t *testing.T) {
	defer func(name string, c uint) { envName, cutoff = name, c }(envName,
		cutoff)

	tests := []struct {
		name envconfig.EnvName
		want uint
	}{
		{envconfig.MountainCar, 1000},
		{envconfig.MountainCarEpisodic, envconfig.DefaultEpisodicCutoff},
		{envconfig.MountainCarEpisodicEasy, envconfig.DefaultEpisodicEasyCutoff},
	}

	cutoff = 1000
	for _, test := range tests {
		envName = string(test.name)
		c, err := config()
		if err != nil {
			t.Fatalf("config: %v", err)
		}
		if got := c.Cutoff(); got != test.want {
			t.Errorf("config %v: want cutoff %v, got %v", test.name,
				test.want, got)
		}
	}
}

func TestUnwrap(t *testing.T) {
	defer func(name string, c uint) { envName, cutoff = name, c }(envName,
		cutoff)
	envName, cutoff = string(envconfig.MountainCarOptLower), 10

	e, _, err := create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := e.(*mountaincar.OptLower); ok {
		t.Fatal("create: expected a wrapped environment")
	}
	if _, ok := unwrap(e).(*mountaincar.OptLower); !ok {
		t.Errorf("unwrap: want *mountaincar.OptLower, got %T", unwrap(e))
	}
}
