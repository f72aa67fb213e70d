package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/view"
)

var (
	startSpecies string
	startStock   int
)

var pondsCmd = &cobra.Command{
	Use:   "ponds",
	Short: "Manage pond production cycles",
}

var pondsCyclesCmd = &cobra.Command{
	Use:   "cycles <pond-id>",
	Short: "List a pond's production cycles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cycles, err := api.ListCycles(context.Background(), args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tชนิด\tจำนวนปล่อย\tสถานะ\tเริ่ม\tสิ้นสุด")
		for _, c := range cycles {
			ended := view.Placeholder
			if c.EndedAt != "" {
				ended = view.FormatTimestamp(c.EndedAt)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
				c.ID, c.Species, c.StockCount, c.Status, view.FormatTimestamp(c.StartedAt), ended)
		}
		w.Flush()

		count, err := api.CycleCount(context.Background(), args[0])
		if err == nil {
			fmt.Printf("\nรอบการเลี้ยงทั้งหมด: %d\n", count.Count)
		}
		return nil
	},
}

var pondsStartCmd = &cobra.Command{
	Use:   "start-cycle <pond-id>",
	Short: "Start a new production cycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := forms.StartCycleRequest{Species: startSpecies, StockCount: startStock}
		if err := req.Validate(); err != nil {
			return err
		}
		cycle, err := api.StartCycle(context.Background(), args[0], req)
		if err != nil {
			return err
		}
		color.Green("✔ เริ่มรอบการเลี้ยง %s (%s, %d ตัว)", cycle.ID, cycle.Species, cycle.StockCount)
		return nil
	},
}

var pondsEndCmd = &cobra.Command{
	Use:   "end-cycle <pond-id>",
	Short: "End the active production cycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cycle, err := api.EndCycle(context.Background(), args[0])
		if err != nil {
			return err
		}
		color.Green("✔ สิ้นสุดรอบการเลี้ยง %s แล้ว", cycle.ID)
		return nil
	},
}

func init() {
	pondsStartCmd.Flags().StringVar(&startSpecies, "species", "", "species to stock")
	pondsStartCmd.Flags().IntVar(&startStock, "stock", 0, "number of fish stocked")
	pondsCmd.AddCommand(pondsCyclesCmd, pondsStartCmd, pondsEndCmd)
	rootCmd.AddCommand(pondsCmd)
}
