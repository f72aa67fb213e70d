package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dashboardYear int

var thaiMonths = []string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <farmer|researcher|production>",
	Short: "Show aggregated statistics for one group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := api.DashboardGroups(context.Background(), args[0], dashboardYear)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%s\n\n", cyan(fmt.Sprintf("สถิติกลุ่ม %s ปี %d", group.GroupType, group.Year)))

		max := 0
		for _, m := range group.Monthly {
			if m.Count > max {
				max = m.Count
			}
		}
		for _, m := range group.Monthly {
			label := fmt.Sprintf("เดือน %d", m.Month)
			if m.Month >= 1 && m.Month <= 12 {
				label = thaiMonths[m.Month-1]
			}
			bar := ""
			if max > 0 {
				bar = strings.Repeat("█", m.Count*30/max)
			}
			fmt.Printf("%6s %5d %s\n", label, m.Count, bar)
		}

		if len(group.Ranking) > 0 {
			fmt.Println("\nอันดับสูงสุด:")
			for i, r := range group.Ranking {
				fmt.Printf("  %d. %s (%.0f)\n", i+1, r.Name, r.Value)
			}
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().IntVar(&dashboardYear, "year", 0, "year (defaults to the current year)")
	rootCmd.AddCommand(dashboardCmd)
}
