package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go-writeup/internal/app"
	"go-writeup/internal/config"
	"go-writeup/internal/db"
	"go-writeup/internal/employee"
	"go-writeup/internal/shared/apperror"
	"go-writeup/internal/standingreport"
	"go-writeup/internal/user"
	"go-writeup/internal/writeup"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	apperror.Init()

	root := &cobra.Command{
		Use:           "writeupctl",
		Short:         "Operate the write-up service from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(migrateCmd(cfg), createUserCmd(cfg), standingCmd(cfg))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withInfra connects, runs fn and closes the connections.
func withInfra(cfg config.Config, fn func(ctx context.Context, in *app.Infra) error) error {
	in, err := app.Connect(cfg)
	if err != nil {
		return err
	}
	defer in.Close()
	return fn(context.Background(), in)
}

func migrateCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|status|down]",
		Short:     "Apply, inspect or roll back the schema",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "status", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}
			return withInfra(cfg, func(ctx context.Context, in *app.Infra) error {
				driver := cfg.Database.Driver
				switch action {
				case "up":
					return in.Migrate(ctx)
				case "status":
					return db.Status(ctx, in.GormDB, driver)
				case "down":
					return db.Down(ctx, in.GormDB, driver)
				default:
					return fmt.Errorf("unknown migrate action %q", action)
				}
			})
		},
	}
}

func createUserCmd(cfg config.Config) *cobra.Command {
	var req user.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a login account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInfra(cfg, func(ctx context.Context, in *app.Infra) error {
				svc := user.NewService(user.NewRepository(in.GormDB), zap.L())
				res, err := svc.Create(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) id=%s\n", res.Username, res.Role, res.ID)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Username, "username", "", "Login name")
	f.StringVar(&req.Password, "password", "", "Password, at least 8 characters")
	f.StringVar(&req.Role, "role", "viewer", "viewer, manager or admin")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func standingCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "standing <employee-id> [quarter]",
		Short: "Print an employee's standing, e.g. standing <id> \"2025 Q3\"",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quarter := ""
			if len(args) == 2 {
				quarter = args[1]
			}
			return withInfra(cfg, func(ctx context.Context, in *app.Infra) error {
				svc := standingreport.NewService(
					employee.NewRepository(in.GormDB),
					writeup.NewRepository(in.GormDB),
					zap.L(),
				)
				report, err := svc.ComputeStandingReport(ctx, args[0], quarter)
				if err != nil {
					return err
				}
				return renderReport(cmd.OutOrStdout(), report)
			})
		},
	}
}

func renderReport(w io.Writer, r standingreport.ReportResponse) error {
	fmt.Fprintf(w, "%s\n", r.EmployeeName)
	fmt.Fprintf(w, "Quarter:   %s\n", r.QuarterKey)
	fmt.Fprintf(w, "Points:    %d\n", r.QuarterPoints)
	fmt.Fprintf(w, "Standing:  %s\n", r.Tier)
	fmt.Fprintf(w, "All time:  %d\n", r.AllTimePoints)
	if r.UnattributedPoints > 0 {
		fmt.Fprintf(w, "Undated:   %d\n", r.UnattributedPoints)
	}
	if len(r.History) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "QUARTER\tPOINTS")
	for _, b := range r.History {
		fmt.Fprintf(tw, "%s\t%d\n", b.QuarterKey, b.PointsTotal)
	}
	return tw.Flush()
}
