// Package createadmin implements the `create-admin` command: it provisions
// the first super admin account interactively, reading the password from the
// terminal without echo.
package createadmin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/infrastructure/auth"
	"miniticker/internal/infrastructure/config"
	"miniticker/internal/infrastructure/database"
	"miniticker/internal/infrastructure/repository"
	"miniticker/internal/shared/logger"
)

var (
	env       string
	adminName string
	email     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a super admin account",
		Long:  `Create a super admin account interactively. The password is read from the terminal and never echoed.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&adminName, "name", "n", "", "Display name of the administrator (required)")
	cmd.Flags().StringVarP(&email, "email", "m", "", "Email address of the administrator (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	emailVO, err := uservo.NewEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewUser(adminName, emailVO, hash, uservo.RoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}
	// The password was chosen by the admin just now, not issued for them.
	if err := admin.ChangePassword(hash); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(database.Get())
	if err := userRepo.Save(context.Background(), admin); err != nil {
		log.Errorw("failed to create admin", "error", err)
		return err
	}

	log.Infow("admin account created", "email", emailVO.String())
	fmt.Fprintf(cmd.OutOrStdout(), "Super admin %q created.\n", emailVO.String())
	return nil
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("create-admin requires an interactive terminal")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(first) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	return string(first), nil
}
