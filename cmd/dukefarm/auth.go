package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(loginEmail)
		if email == "" {
			fmt.Print("อีเมล: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		password := loginPassword
		if password == "" {
			fmt.Print("รหัสผ่าน: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}

		result, err := api.AdminLogin(context.Background(), email, password)
		if err != nil {
			return err
		}
		if err := tokens.SetToken(result.Token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		color.Green("✔ เข้าสู่ระบบสำเร็จ")
		fmt.Printf("  %s (%s)\n", result.User.Name, result.User.Role)
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Me(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("ID:     %s\n", user.UserID)
		fmt.Printf("ชื่อ:    %s\n", user.Name)
		fmt.Printf("อีเมล:  %s\n", user.Email)
		fmt.Printf("บทบาท: %s\n", user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the saved session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := tokens.Clear(); err != nil {
			return err
		}
		color.Green("✔ ออกจากระบบแล้ว")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "admin email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password")
	rootCmd.AddCommand(loginCmd, meCmd, logoutCmd)
}
