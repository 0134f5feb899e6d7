// Command gopomdp runs rollouts of the POMDP environments with
// uniformly random actions and renders their state.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	env "github.com/samuelfneumann/gopomdp/environment"
	"github.com/samuelfneumann/gopomdp/environment/envconfig"
)

// Environment variables which set flag defaults
const (
	SeedVar = "GOPOMDP_SEED"
	EnvVar  = "GOPOMDP_ENV"
)

var (
	envName    string
	configPath string
	seed       uint64
	cutoff     uint
)

func main() {
	for _, envFile := range []string{
		".env",
		"../../.env",
	} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	defaultSeed := uint64(0)
	if s := os.Getenv(SeedVar); s != "" {
		var err error
		if defaultSeed, err = strconv.ParseUint(s, 10, 64); err != nil {
			log.Fatalf("could not parse %v: %v", SeedVar, err)
		}
	}
	defaultEnv := string(envconfig.HeavenHellOneHot)
	if e := os.Getenv(EnvVar); e != "" {
		defaultEnv = e
	}

	rootCmd := &cobra.Command{
		Use:   "gopomdp",
		Short: "gopomdp runs rollouts of partially observable environments",
	}
	rootCmd.PersistentFlags().StringVarP(&envName, "env", "e", defaultEnv,
		"name of the environment to create")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"JSON environment configuration, overrides --env")
	rootCmd.PersistentFlags().Uint64VarP(&seed, "seed", "s", defaultSeed,
		"seed of the environment and action sampler")
	rootCmd.PersistentFlags().UintVar(&cutoff, "cutoff", 1000,
		"episode step limit of environments which do not set their own")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the environments which can be created",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range envconfig.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	rootCmd.AddCommand(listCmd, newRunCmd(), newRenderCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// config returns the environment Config selected by the command line
func config() (envconfig.Config, error) {
	c := envconfig.NewConfig(envconfig.EnvName(envName))
	if configPath != "" {
		var err error
		if c, err = envconfig.Load(configPath); err != nil {
			return envconfig.Config{}, err
		}
	}

	if c.Cutoff() == 0 {
		c.EpisodeCutoff = cutoff
	}
	return c, nil
}

// create creates the environment selected by the command line
func create() (env.Environment, envconfig.Config, error) {
	c, err := config()
	if err != nil {
		return nil, c, err
	}

	e, _, err := c.Create(seed)
	if err != nil {
		return nil, c, err
	}
	return e, c, nil
}
