// Command createadmin seeds an administrator account. Admins cannot sign up
// through the API, so the first one has to be created from the shell.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/BruksfildServices01/store-ratings/internal/config"
	dbpkg "github.com/BruksfildServices01/store-ratings/internal/db"
	infraRepo "github.com/BruksfildServices01/store-ratings/internal/infra/repository"
	"github.com/BruksfildServices01/store-ratings/internal/logging"
	"github.com/BruksfildServices01/store-ratings/internal/token"
	ucAccount "github.com/BruksfildServices01/store-ratings/internal/usecase/account"
	ucRating "github.com/BruksfildServices01/store-ratings/internal/usecase/rating"
	"github.com/BruksfildServices01/store-ratings/internal/validators"
)

func main() {
	app := &cli.App{
		Name:  "createadmin",
		Usage: "create an administrator account if the email is free",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, EnvVars: []string{"ADMIN_NAME"}},
			&cli.StringFlag{Name: "email", Required: true, EnvVars: []string{"ADMIN_EMAIL"}},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
			&cli.StringFlag{Name: "address", EnvVars: []string{"ADMIN_ADDRESS"}},
		},
		Action: createAdmin,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("createadmin failed", "error", err)
		os.Exit(1)
	}
}

func createAdmin(c *cli.Context) error {
	in := ucAccount.SignupInput{
		Name:     c.String("name"),
		Email:    c.String("email"),
		Password: c.String("password"),
		Address:  c.String("address"),
	}
	if !validators.IsDisplayName(in.Name) {
		return fmt.Errorf("name must be 20-60 letters, digits or spaces")
	}
	if !validators.IsStrongPassword(in.Password) {
		return fmt.Errorf("password must be 8-16 chars with an uppercase letter and one of !@#$%%^&*")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(logger)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer dbpkg.Close(db)

	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.JWTTTL)
	ledger := ucRating.NewLedger(infraRepo.NewRatingGormRepository(db), nil)
	accounts, err := ucAccount.NewService(
		infraRepo.NewAccountGormRepository(db),
		ucAccount.BcryptHasher{Cost: cfg.BcryptCost},
		tokens,
		ledger,
	)
	if err != nil {
		return err
	}

	created, err := accounts.EnsureAdmin(c.Context, in)
	if err != nil {
		return err
	}
	if created {
		logger.Info("admin created", "email", in.Email)
	} else {
		logger.Info("admin already exists", "email", in.Email)
	}
	return nil
}
