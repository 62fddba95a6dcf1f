package tspgenetic

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders an evaluated population as a table of chromosomes and
// their tour distances, best first, with an average-distance footer.
func WriteTable(w io.Writer, pop Population) {
	ranked := make(Population, len(pop))
	copy(ranked, pop)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Chromosome", "Tour Distance"})
	for i, c := range ranked {
		table.Append([]string{
			strconv.Itoa(i + 1),
			c.String(),
			fmt.Sprintf("%.2f", c.Distance),
		})
	}
	table.SetFooter([]string{"", "Average", fmt.Sprintf("%.2f", pop.AverageDistance())})
	table.Render()
}
