package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/gopomdp/experiment"
	"github.com/samuelfneumann/gopomdp/experiment/trackers"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"github.com/samuelfneumann/gopomdp/utils/progressbar"
)

var (
	episodes   int
	dataDir    string
	reportPath string
	quiet      bool
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run episodes with uniformly random actions",
		RunE:  runRollout,
	}
	runCmd.Flags().IntVarP(&episodes, "episodes", "n", 10,
		"number of episodes to run")
	runCmd.Flags().StringVar(&dataDir, "data-dir", "",
		"directory to save gob encoded returns and episode lengths to")
	runCmd.Flags().StringVar(&reportPath, "report", "",
		"HTML file to write a chart of returns and episode lengths to")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"log every episode instead of displaying a progress bar")
	return runCmd
}

func runRollout(cmd *cobra.Command, args []string) error {
	runID := uuid.New()

	e, c, err := create()
	if err != nil {
		return fmt.Errorf("failed to create environment: %v", err)
	}
	defer e.Close()
	log.Printf("run %v: %v (seed %v, cutoff %v)", runID, c.Environment,
		seed, c.Cutoff())

	var returnsFile, lengthsFile string
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		returnsFile = filepath.Join(dataDir, runID.String()+"_returns.bin")
		lengthsFile = filepath.Join(dataDir, runID.String()+"_lengths.bin")
	}
	returns := trackers.NewReturn(returnsFile)
	lengths := trackers.NewEpisodeLength(lengthsFile)

	r, err := experiment.NewRollout(e, seed, episodes, returns, lengths)
	if err != nil {
		return fmt.Errorf("failed to create rollout: %v", err)
	}

	var bar *progressbar.ManualProgressBar
	if !quiet {
		bar = progressbar.NewManualProgressBar(cmd.ErrOrStderr(), 40,
			episodes)
		bar.Display("")
	}

	err = r.Run(func(i int, last ts.TimeStep) {
		if quiet {
			log.Printf("run %v: episode %v: %v steps, end %v", runID, i,
				last.Number, last.EndType())
			return
		}
		bar.Increment()
		bar.Display(fmt.Sprintf("episode %v: %v", i, last.EndType()))
	})
	if bar != nil {
		bar.Close()
	}
	if err != nil {
		return fmt.Errorf("rollout failed: %v", err)
	}

	if err := r.Save(); err != nil {
		return fmt.Errorf("failed to save data: %v", err)
	}

	if reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("failed to create report: %v", err)
		}
		defer f.Close()

		err = experiment.Report(f, fmt.Sprintf("%v %v", c.Environment, runID),
			experiment.Series{Name: "return", Values: returns.Data()},
			experiment.Series{Name: "episode length", Values: lengths.Data()},
		)
		if err != nil {
			return err
		}
		log.Printf("run %v: report written to %v", runID, reportPath)
	}

	log.Printf("run %v: mean return %.3f over %v episodes", runID,
		mean(returns.Data()), len(returns.Data()))
	return nil
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}
