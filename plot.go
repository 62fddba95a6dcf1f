package tspgenetic

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotLearningCurve writes a plot of best and average tour distance per
// generation. The output format follows the file extension (.png, .svg,
// .pdf).
func PlotLearningCurve(history []GenerationRecord, path string) error {
	p := plot.New()
	p.Title.Text = "TSP Learning Curve"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Tour Distance"
	p.Add(plotter.NewGrid())

	best := make(plotter.XYs, len(history))
	avg := make(plotter.XYs, len(history))
	for i, rec := range history {
		best[i].X = float64(rec.Generation)
		best[i].Y = rec.Best
		avg[i].X = float64(rec.Generation)
		avg[i].Y = rec.Average
	}

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("failed to build best-distance line: %w", err)
	}
	avgLine, err := plotter.NewLine(avg)
	if err != nil {
		return fmt.Errorf("failed to build average-distance line: %w", err)
	}
	avgLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, avgLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("average", avgLine)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// PlotTour writes a plot of the chromosome's closed tour: cities as points,
// the route as a line returning to the start.
func PlotTour(c *Chromosome, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("TSP Tour: %v", c)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(c.Tour)+1)
	for i, city := range c.Tour {
		pts[i].X = city.X
		pts[i].Y = city.Y
	}
	if len(c.Tour) > 0 {
		pts[len(c.Tour)] = pts[0]
	}

	route, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build tour line: %w", err)
	}
	stops, err := plotter.NewScatter(pts[:len(pts)-1])
	if err != nil {
		return fmt.Errorf("failed to build city scatter: %w", err)
	}

	p.Add(route, stops)
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
