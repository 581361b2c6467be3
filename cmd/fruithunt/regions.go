package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
)

var flagRegionFruits bool

var regionsCmd = &cobra.Command{
	Use:   "regions [name]",
	Short: "List regions and their fruits",
	Long: `Shows the regions of the catalog with their fruit counts.
Give a region name to list its fruits and quiz types.

Examples:
  fruithunt regions
  fruithunt regions jungle
  fruithunt regions --fruits`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRegions,
}

func init() {
	regionsCmd.Flags().BoolVar(&flagRegionFruits, "fruits", false, "List the fruits of every region")
}

func runRegions(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	cat := mustLoadCatalog(cfg.Catalog.Path)

	regions := cat.Regions()
	if len(args) == 1 {
		r, ok := cat.RegionByName(args[0])
		if !ok {
			fail("unknown region %q (run 'fruithunt regions' to see them)", args[0])
		}
		regions = []catalog.Region{r}
		flagRegionFruits = true
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, r := range regions {
		maxNameLen = max(maxNameLen, len(r.Name))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Fruits", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "-----")
	for _, r := range regions {
		fmt.Printf("  %-*s  %-6d  %s %s\n", maxNameLen, r.Name, len(r.Fruits), r.Theme, r.DisplayName)
		if !flagRegionFruits {
			continue
		}
		for _, f := range r.Fruits {
			fmt.Printf("  %-*s    %s %-16s %s\n", maxNameLen, "", f.Glyph, f.Name, f.Quiz.Kind.Label())
		}
	}

	fmt.Println()
	fmt.Printf("%d fruits in %d regions.\n", cat.Len(), len(cat.Regions()))
}
