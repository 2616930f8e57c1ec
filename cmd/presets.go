package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridcortex/bessval/core/catalog"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in asset, market and APM platform presets",
	Run:   listPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func listPresets(cmd *cobra.Command, args []string) {
	fmt.Println("APM platforms:")
	for _, name := range catalog.PlatformNames() {
		p, _ := catalog.Platform(name)
		fmt.Printf("  %-24s %s (annual %.0f, implementation %.0f)\n",
			name, p.Name, p.AnnualFee, p.ImplementationCost)
	}
	fmt.Println("Assets:")
	for _, name := range catalog.AssetNames() {
		a, _ := catalog.Asset(name)
		fmt.Printf("  %-24s %s (%.0f MWh / %.0f MW, %s)\n",
			name, a.Name, a.CapacityMWh, a.PowerRatingMW, a.Chemistry)
	}
	fmt.Println("Markets:")
	for _, name := range catalog.MarketNames() {
		m, _ := catalog.Market(name)
		fmt.Printf("  %-24s spot %.0f, volatility %.2f, FCAS %.0f, capacity factor %.2f\n",
			name, m.SpotPrice, m.PriceVolatility, m.FCASPrice, m.CapacityFactor)
	}
}
