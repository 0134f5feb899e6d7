package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	env "github.com/samuelfneumann/gopomdp/environment"
	"github.com/samuelfneumann/gopomdp/environment/heavenhell"
	"github.com/samuelfneumann/gopomdp/experiment"
	"github.com/samuelfneumann/gopomdp/render"
)

var (
	steps  int
	pngDir string
	width  int
	colour bool
)

func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render one episode with uniformly random actions",
		RunE:  renderEpisode,
	}
	renderCmd.Flags().IntVar(&steps, "steps", 50,
		"maximum number of steps to render")
	renderCmd.Flags().StringVar(&pngDir, "png-dir", "",
		"directory to save a PNG image of each mountain car step to")
	renderCmd.Flags().IntVar(&width, "width", 60,
		"width of the text rendering of mountain car tracks")
	renderCmd.Flags().BoolVar(&colour, "colour", true,
		"colour the text rendering")
	return renderCmd
}

func renderEpisode(cmd *cobra.Command, args []string) error {
	e, _, err := create()
	if err != nil {
		return fmt.Errorf("failed to create environment: %v", err)
	}
	defer e.Close()

	sampler, err := experiment.NewUniformSampler(e.ActionSpec(), seed)
	if err != nil {
		return err
	}

	var png *render.PNG
	if pngDir != "" {
		if err := os.MkdirAll(pngDir, 0755); err != nil {
			return fmt.Errorf("failed to create png directory: %v", err)
		}
		if png, err = render.NewPNG(render.ViewportW, render.ViewportH); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	text := render.NewText(colour)
	inner := unwrap(e)

	step, err := e.Reset()
	if err != nil {
		return err
	}
	for i := 0; ; i++ {
		fmt.Fprintf(out, "step %v  reward %v\n", step.Number, step.Reward)

		switch inner := inner.(type) {
		case *heavenhell.OneHot:
			err = text.Maze(out, inner.State())

		case render.Track:
			err = text.Track(out, inner, width)
			if err == nil && png != nil {
				err = png.Save(filepath.Join(pngDir,
					fmt.Sprintf("step%04d.png", i)), inner)
			}

		default:
			err = fmt.Errorf("cannot render environment %T", inner)
		}
		if err != nil {
			return err
		}

		if step.Last() || i >= steps {
			break
		}
		if step, _, err = e.Step(sampler.Sample()); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "episode ended: %v\n", step.EndType())
	return nil
}

// unwrap returns the innermost environment wrapped by e
func unwrap(e env.Environment) env.Environment {
	for {
		w, ok := e.(interface{ Unwrap() env.Environment })
		if !ok {
			return e
		}
		e = w.Unwrap()
	}
}
