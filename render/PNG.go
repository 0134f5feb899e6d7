package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
)

// Default image size of the PNG renderer
const (
	ViewportW int = 600
	ViewportH int = 200
)

// PNG renders a Track as a PNG image: the road is drawn across the
// middle of the image, the heaven flag in green, the hell flag in red,
// the priest in blue and the car as a black disc.
type PNG struct {
	width, height int
	margin        float64
}

// NewPNG returns a new PNG renderer drawing width x height images
func NewPNG(width, height int) (*PNG, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("newPNG: image dimensions must be positive, "+
			"got (%v, %v)", width, height)
	}
	return &PNG{width: width, height: height, margin: 0.05 * float64(width)}, nil
}

// Encode writes a PNG image of t to w
func (p *PNG) Encode(w io.Writer, t Track) error {
	if err := p.draw(t).EncodePNG(w); err != nil {
		return fmt.Errorf("encode: %v", err)
	}
	return nil
}

// Save writes a PNG image of t to the file at path
func (p *PNG) Save(path string, t Track) error {
	if err := p.draw(t).SavePNG(path); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

func (p *PNG) draw(t Track) *gg.Context {
	dc := gg.NewContext(p.width, p.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	road := 0.6 * float64(p.height)
	flagHeight := 0.3 * float64(p.height)

	// Road
	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetLineWidth(3.0)
	dc.DrawLine(p.margin, road, float64(p.width)-p.margin, road)
	dc.Stroke()

	p.flag(dc, p.x(t.HeavenPosition(), t), road, flagHeight, 0, 0.7, 0)
	p.flag(dc, p.x(t.HellPosition(), t), road, flagHeight, 0.8, 0, 0)
	p.flag(dc, p.x(t.PriestPosition(), t), road, flagHeight/2, 0, 0, 0.8)

	// Car
	carRadius := 0.05 * float64(p.height)
	dc.SetRGB(0, 0, 0)
	dc.DrawCircle(p.x(t.Position(), t), road-carRadius, carRadius)
	dc.Fill()

	return dc
}

// flag draws a flag pole at x on the road with a coloured pennant
func (p *PNG) flag(dc *gg.Context, x, road, height, r, g, b float64) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2.0)
	dc.DrawLine(x, road, x, road-height)
	dc.Stroke()

	dc.SetRGB(r, g, b)
	dc.MoveTo(x, road-height)
	dc.LineTo(x+0.4*height, road-0.85*height)
	dc.LineTo(x, road-0.7*height)
	dc.ClosePath()
	dc.Fill()
}

// x returns the pixel column of position
func (p *PNG) x(position float64, t Track) float64 {
	bounds := t.Bounds()
	frac := (position - bounds.Min) / (bounds.Max - bounds.Min)
	return p.margin + frac*(float64(p.width)-2*p.margin)
}
