package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/listing"
	"github.com/koard/DukeFarm-Admin-sub000/internal/view"
)

var (
	farmersPage     int
	farmersLimit    int
	farmersSearch   string
	farmersFarmType string
)

var farmersCmd = &cobra.Command{
	Use:   "farmers",
	Short: "Manage registered farmers",
}

func farmerController() *listing.Controller[models.Farmer] {
	return listing.NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[models.Farmer], error) {
		return api.ListFarmers(ctx, q)
	}, cliNotifier{})
}

var farmersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List farmers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ctrl := farmerController()
		defer ctrl.Shutdown()
		ctrl.SetPageSize(ctx, farmersLimit)
		if farmersSearch != "" {
			ctrl.SetSearch(ctx, farmersSearch)
		}
		if farmersFarmType != "" {
			ctrl.SetFilter(ctx, "farmType", farmersFarmType)
		}
		if farmersPage > 1 {
			ctrl.SetPage(ctx, farmersPage)
		}
		if err := ctrl.LastErr(); err != nil {
			return err
		}

		page := ctrl.Page()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tชื่อ\tฟาร์ม\tประเภท\tจังหวัด\tบ่อ\tลงทะเบียน")
		for _, f := range page.Items {
			vm := view.MapFarmer(f)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				vm.ID, vm.Name, vm.FarmName, vm.FarmType, vm.Province, vm.PondCount, vm.RegisteredAt)
		}
		w.Flush()

		p := page.Pagination
		fmt.Printf("\nหน้า %d/%d (ทั้งหมด %d รายการ)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
		return nil
	},
}

var farmersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one farmer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		farmer, err := api.GetFarmer(context.Background(), args[0])
		if err != nil {
			return err
		}
		vm := view.MapFarmer(farmer)
		fmt.Printf("ID:        %s\n", vm.ID)
		fmt.Printf("ชื่อ:       %s\n", vm.Name)
		fmt.Printf("โทรศัพท์:  %s\n", vm.Phone)
		fmt.Printf("ฟาร์ม:     %s\n", vm.FarmName)
		fmt.Printf("ประเภท:   %s\n", vm.FarmType)
		fmt.Printf("จังหวัด:    %s\n", vm.Province)
		fmt.Printf("พิกัด:      %s\n", vm.Coordinates)
		fmt.Printf("จำนวนบ่อ: %d\n", vm.PondCount)
		fmt.Printf("ลงทะเบียน: %s\n", vm.RegisteredAt)
		return nil
	},
}

var farmersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a farmer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]

		farmer, err := api.GetFarmer(ctx, id)
		if err != nil {
			return err
		}
		color.Yellow("จะลบ \"%s\" (%s)", farmer.Name, farmer.FarmName)

		ctrl := farmerController()
		defer ctrl.Shutdown()
		ctrl.OpenDelete(farmer)
		return ctrl.MutateAndReload(ctx, func(ctx context.Context) error {
			return api.DeleteFarmer(ctx, id)
		}, fmt.Sprintf("ลบข้อมูล \"%s\" สำเร็จ!", farmer.Name))
	},
}

func init() {
	farmersListCmd.Flags().IntVar(&farmersPage, "page", 1, "page number")
	farmersListCmd.Flags().IntVar(&farmersLimit, "limit", 10, "items per page")
	farmersListCmd.Flags().StringVar(&farmersSearch, "search", "", "search term")
	farmersListCmd.Flags().StringVar(&farmersFarmType, "farm-type", "", "filter by farm type code")
	farmersCmd.AddCommand(farmersListCmd, farmersGetCmd, farmersDeleteCmd)
	rootCmd.AddCommand(farmersCmd)
}
