package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/listing"
	"github.com/koard/DukeFarm-Admin-sub000/internal/view"
)

var (
	recipesPage   int
	recipesLimit  int
	recipesSearch string
	sheetOut      string

	recipeName            string
	recipeFishType        string
	recipeDescription     string
	recipeIngredients     []string
	recipeProtein         string
	recipeFat             string
	recipeFiber           string
	recipeMoisture        string
	recipeRecommendations string
)

func recipeController() *listing.Controller[models.FeedFormula] {
	return listing.NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[models.FeedFormula], error) {
		return api.ListFeedFormulas(ctx, q)
	}, cliNotifier{})
}

// parseIngredients reads repeated --ingredient "ชื่อ:อัตราส่วน" flags.
func parseIngredients(raw []string) ([]models.Ingredient, error) {
	out := make([]models.Ingredient, 0, len(raw))
	for _, entry := range raw {
		name, ratio, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("รูปแบบส่วนผสมไม่ถูกต้อง: %q (ต้องเป็น ชื่อ:อัตราส่วน)", entry)
		}
		out = append(out, models.Ingredient{
			Name:  strings.TrimSpace(name),
			Ratio: strings.TrimSpace(ratio),
		})
	}
	return out, nil
}

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Manage feed formulas",
}

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feed formulas",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := api.ListFeedFormulas(context.Background(), domain.ListQuery{
			Page:   recipesPage,
			Limit:  recipesLimit,
			Search: recipesSearch,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tชื่อสูตร\tชนิดปลา\tโปรตีน\tแก้ไขล่าสุด")
		for _, r := range page.Items {
			vm := view.MapRecipe(r)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", vm.ID, vm.Name, vm.FishType, vm.Protein, vm.UpdatedAt)
		}
		w.Flush()

		p := page.Pagination
		fmt.Printf("\nหน้า %d/%d (ทั้งหมด %d รายการ)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
		return nil
	},
}

var recipesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one feed formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formula, err := api.GetFeedFormula(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ชื่อสูตร:   %s\n", formula.Name)
		fmt.Printf("ชนิดปลา:  %s\n", formula.FishType)
		if formula.Description != "" {
			fmt.Printf("คำอธิบาย: %s\n", formula.Description)
		}
		fmt.Println("ส่วนผสม:")
		for _, ing := range formula.Ingredients {
			fmt.Printf("  - %s: %s\n", ing.Name, ing.Ratio)
		}
		fmt.Printf("โปรตีน %s | ไขมัน %s | ไฟเบอร์ %s | ความชื้น %s\n",
			formula.Protein, formula.Fat, formula.Fiber, formula.Moisture)
		fmt.Printf("คำแนะนำ: %s\n", formula.Recommendations)
		return nil
	},
}

var recipesSheetCmd = &cobra.Command{
	Use:   "sheet <id>",
	Short: "Download the printable formula sheet (PDF)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := api.DownloadFeedFormulaSheet(context.Background(), args[0])
		if err != nil {
			return err
		}

		out := sheetOut
		if out == "" {
			out = args[0] + ".pdf"
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		color.Green("✔ บันทึกไฟล์ %s แล้ว", out)
		return nil
	},
}

var recipesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a feed formula",
	RunE: func(cmd *cobra.Command, args []string) error {
		ingredients, err := parseIngredients(recipeIngredients)
		if err != nil {
			return err
		}
		req := forms.CreateRecipeRequest{
			Name:            recipeName,
			FishType:        recipeFishType,
			Description:     recipeDescription,
			Ingredients:     ingredients,
			Protein:         recipeProtein,
			Fat:             recipeFat,
			Fiber:           recipeFiber,
			Moisture:        recipeMoisture,
			Recommendations: recipeRecommendations,
		}
		if err := req.Validate(); err != nil {
			return err
		}

		formula, err := api.CreateFeedFormula(context.Background(), req)
		if err != nil {
			return err
		}
		color.Green("✔ สร้างสูตร \"%s\" สำเร็จ!", formula.Name)
		return nil
	},
}

var recipesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a feed formula (unset flags keep current values)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		snapshot, err := api.GetFeedFormula(ctx, args[0])
		if err != nil {
			return err
		}

		req := forms.UpdateRecipeRequest{
			CreateRecipeRequest: forms.CreateRecipeRequest{
				Name:            snapshot.Name,
				FishType:        snapshot.FishType,
				Description:     snapshot.Description,
				Ingredients:     snapshot.Ingredients,
				Protein:         snapshot.Protein,
				Fat:             snapshot.Fat,
				Fiber:           snapshot.Fiber,
				Moisture:        snapshot.Moisture,
				Recommendations: snapshot.Recommendations,
			},
			Snapshot: snapshot,
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			req.Name = recipeName
		}
		if flags.Changed("fish-type") {
			req.FishType = recipeFishType
		}
		if flags.Changed("description") {
			req.Description = recipeDescription
		}
		if flags.Changed("ingredient") {
			if req.Ingredients, err = parseIngredients(recipeIngredients); err != nil {
				return err
			}
		}
		if flags.Changed("protein") {
			req.Protein = recipeProtein
		}
		if flags.Changed("fat") {
			req.Fat = recipeFat
		}
		if flags.Changed("fiber") {
			req.Fiber = recipeFiber
		}
		if flags.Changed("moisture") {
			req.Moisture = recipeMoisture
		}
		if flags.Changed("recommendations") {
			req.Recommendations = recipeRecommendations
		}

		if err := req.Validate(); err != nil {
			if errors.Is(err, forms.ErrNoChanges) {
				color.Yellow("ไม่มีการเปลี่ยนแปลงข้อมูล")
				return nil
			}
			return err
		}

		formula, err := api.UpdateFeedFormula(ctx, args[0], req)
		if err != nil {
			return err
		}
		color.Green("✔ แก้ไขสูตร \"%s\" สำเร็จ!", formula.Name)
		return nil
	},
}

var recipesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a feed formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]

		formula, err := api.GetFeedFormula(ctx, id)
		if err != nil {
			return err
		}
		color.Yellow("จะลบสูตร \"%s\" (%s)", formula.Name, formula.FishType)

		ctrl := recipeController()
		defer ctrl.Shutdown()
		ctrl.OpenDelete(formula)
		return ctrl.MutateAndReload(ctx, func(ctx context.Context) error {
			return api.DeleteFeedFormula(ctx, id)
		}, fmt.Sprintf("ลบข้อมูล \"%s\" สำเร็จ!", formula.Name))
	},
}

func recipeFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&recipeName, "name", "", "formula name")
	cmd.Flags().StringVar(&recipeFishType, "fish-type", "", "target fish species")
	cmd.Flags().StringVar(&recipeDescription, "description", "", "formula description")
	cmd.Flags().StringArrayVar(&recipeIngredients, "ingredient", nil, `ingredient as "name:ratio" (repeatable)`)
	cmd.Flags().StringVar(&recipeProtein, "protein", "", "protein percentage")
	cmd.Flags().StringVar(&recipeFat, "fat", "", "fat percentage")
	cmd.Flags().StringVar(&recipeFiber, "fiber", "", "fiber percentage")
	cmd.Flags().StringVar(&recipeMoisture, "moisture", "", "moisture percentage")
	cmd.Flags().StringVar(&recipeRecommendations, "recommendations", "", "usage recommendations")
}

func init() {
	recipesListCmd.Flags().IntVar(&recipesPage, "page", 1, "page number")
	recipesListCmd.Flags().IntVar(&recipesLimit, "limit", 10, "items per page")
	recipesListCmd.Flags().StringVar(&recipesSearch, "search", "", "search term")
	recipesSheetCmd.Flags().StringVar(&sheetOut, "out", "", "output path (defaults to <id>.pdf)")
	recipeFormFlags(recipesCreateCmd)
	recipeFormFlags(recipesUpdateCmd)
	recipesCmd.AddCommand(recipesListCmd, recipesGetCmd, recipesSheetCmd,
		recipesCreateCmd, recipesUpdateCmd, recipesDeleteCmd)
	rootCmd.AddCommand(recipesCmd)
}
