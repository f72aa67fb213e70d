package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
	"github.com/koard/DukeFarm-Admin-sub000/internal/view"
)

var (
	adminsPage       int
	adminsLimit      int
	researchersPage  int
	researchersLimit int
)

var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Manage admin accounts (superadmin only)",
}

var adminsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := api.ListAdmins(context.Background(), domain.ListQuery{Page: adminsPage, Limit: adminsLimit})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tชื่อ\tอีเมล\tบทบาท\tสถานะ\tสร้างเมื่อ")
		for _, a := range page.Items {
			vm := view.MapAdmin(a)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", vm.UserID, vm.Name, vm.Email, vm.Role, vm.Status, vm.CreatedAt)
		}
		w.Flush()

		p := page.Pagination
		fmt.Printf("\nหน้า %d/%d (ทั้งหมด %d รายการ)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
		return nil
	},
}

var (
	adminName            string
	adminEmail           string
	adminRole            string
	adminPassword        string
	adminPasswordConfirm string
)

var adminsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := forms.CreateAdminRequest{
			Name:            adminName,
			Email:           adminEmail,
			Role:            adminRole,
			Password:        adminPassword,
			PasswordConfirm: adminPasswordConfirm,
		}
		if err := req.Validate(); err != nil {
			return err
		}

		admin, err := api.CreateAdmin(context.Background(), req)
		if err != nil {
			return err
		}
		color.Green("✔ สร้างบัญชีผู้ดูแล \"%s\" สำเร็จ!", admin.Name)
		return nil
	},
}

var researchersCmd = &cobra.Command{
	Use:   "researchers",
	Short: "Manage researcher accounts",
}

var researchersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List researchers",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := api.ListResearchers(context.Background(), domain.ListQuery{Page: researchersPage, Limit: researchersLimit})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tชื่อ\tอีเมล\tหน่วยงาน\tสร้างเมื่อ")
		for _, r := range page.Items {
			vm := view.MapResearcher(r)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", vm.ID, vm.Name, vm.Email, vm.Department, vm.CreatedAt)
		}
		w.Flush()

		p := page.Pagination
		fmt.Printf("\nหน้า %d/%d (ทั้งหมด %d รายการ)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles and their permissions (superadmin only)",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		roles, err := api.ListRoles(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tชื่อบทบาท\tสิทธิ์")
		for _, r := range roles {
			fmt.Fprintf(w, "%s\t%s\t%d รายการ\n", r.ID, r.Name, len(r.Permissions))
		}
		w.Flush()
		return nil
	},
}

var (
	roleName        string
	roleDescription string
	rolePermissions string
)

var rolesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// The duplicate-name check runs against the currently known
		// roles before anything is sent.
		existing, err := api.ListRoles(ctx)
		if err != nil {
			return err
		}

		req := forms.CreateRoleRequest{
			Name:        roleName,
			Description: roleDescription,
			Permissions: utils.SplitList(rolePermissions),
			Existing:    existing,
		}
		if err := req.Validate(); err != nil {
			return err
		}

		role, err := api.CreateRole(ctx, req)
		if err != nil {
			return err
		}
		color.Green("✔ สร้างบทบาท \"%s\" สำเร็จ!", role.Name)
		return nil
	},
}

func init() {
	adminsListCmd.Flags().IntVar(&adminsPage, "page", 1, "page number")
	adminsListCmd.Flags().IntVar(&adminsLimit, "limit", 10, "items per page")
	adminsCreateCmd.Flags().StringVar(&adminName, "name", "", "display name")
	adminsCreateCmd.Flags().StringVar(&adminEmail, "email", "", "login email")
	adminsCreateCmd.Flags().StringVar(&adminRole, "role", "", "role name")
	adminsCreateCmd.Flags().StringVar(&adminPassword, "password", "", "password (min 8 characters)")
	adminsCreateCmd.Flags().StringVar(&adminPasswordConfirm, "password-confirm", "", "password confirmation")
	researchersListCmd.Flags().IntVar(&researchersPage, "page", 1, "page number")
	researchersListCmd.Flags().IntVar(&researchersLimit, "limit", 10, "items per page")
	rolesCreateCmd.Flags().StringVar(&roleName, "name", "", "role name")
	rolesCreateCmd.Flags().StringVar(&roleDescription, "description", "", "role description")
	rolesCreateCmd.Flags().StringVar(&rolePermissions, "permissions", "", "comma-separated permission list")
	adminsCmd.AddCommand(adminsListCmd, adminsCreateCmd)
	researchersCmd.AddCommand(researchersListCmd)
	rolesCmd.AddCommand(rolesListCmd, rolesCreateCmd)
	rootCmd.AddCommand(adminsCmd, researchersCmd, rolesCmd)
}
