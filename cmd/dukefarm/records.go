package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/view"
)

var (
	recordsPage   int
	recordsLimit  int
	recordsPond   string
	recordsFarmer string
	recordsType   string
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse farm activity records",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List farm activity records",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := domain.ListQuery{Page: recordsPage, Limit: recordsLimit}
		for key, val := range map[string]string{
			"pondId":     recordsPond,
			"farmerId":   recordsFarmer,
			"recordType": recordsType,
		} {
			if val != "" {
				if q.Filters == nil {
					q.Filters = map[string]string{}
				}
				q.Filters[key] = val
			}
		}

		page, err := api.ListRecords(context.Background(), q)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tบ่อ\tประเภท\tปริมาณ\tบันทึกเมื่อ")
		for _, r := range page.Items {
			amount := r.Amount
			if amount != "" && r.Unit != "" {
				amount += " " + r.Unit
			}
			if amount == "" {
				amount = view.Placeholder
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.PondID, view.RecordTypeLabel(r.RecordType), amount, view.FormatTimestamp(r.RecordedAt))
		}
		w.Flush()

		p := page.Pagination
		fmt.Printf("\nหน้า %d/%d (ทั้งหมด %d รายการ)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
		return nil
	},
}

var recordsFormStateCmd = &cobra.Command{
	Use:   "form-state",
	Short: "Show the selectable record form options",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := api.RecordFormState(context.Background())
		if err != nil {
			return err
		}
		fmt.Println("ประเภทข้อมูล:")
		for _, opt := range state.RecordTypes {
			fmt.Printf("  %s\t%s\n", opt.Value, opt.Label)
		}
		fmt.Println("หน่วย:")
		for _, opt := range state.Units {
			fmt.Printf("  %s\t%s\n", opt.Value, opt.Label)
		}
		return nil
	},
}

func init() {
	recordsListCmd.Flags().IntVar(&recordsPage, "page", 1, "page number")
	recordsListCmd.Flags().IntVar(&recordsLimit, "limit", 10, "items per page")
	recordsListCmd.Flags().StringVar(&recordsPond, "pond", "", "filter by pond id")
	recordsListCmd.Flags().StringVar(&recordsFarmer, "farmer", "", "filter by farmer id")
	recordsListCmd.Flags().StringVar(&recordsType, "type", "", "filter by record type code")
	recordsCmd.AddCommand(recordsListCmd, recordsFormStateCmd)
	rootCmd.AddCommand(recordsCmd)
}
