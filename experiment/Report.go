package experiment

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name   string
	Values []float64
}

// Report writes an HTML page to w with one line chart per Series,
// plotting each value against its episode index
func Report(w io.Writer, title string, series ...Series) error {
	page := components.NewPage()

	for _, s := range series {
		episodes := make([]string, len(s.Values))
		items := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			episodes[i] = fmt.Sprintf("%d", i)
			items[i] = opts.LineData{Value: v}
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    s.Name,
				Subtitle: title,
			}),
		)
		line.SetXAxis(episodes).AddSeries(s.Name, items)
		page.AddCharts(line)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: %v", err)
	}
	return nil
}
