package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"taskphoto.com/taskphoto/internal/services"
)

type report struct {
	Stats     services.Stats           `json:"stats"`
	Assignees []services.AssigneeStats `json:"assignees"`
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print task statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tasks *services.TaskService
		app := fx.New(coreModule, fx.Populate(&tasks))
		if err := app.Err(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := app.Start(ctx); err != nil {
			return err
		}
		defer func() {
			_ = app.Stop(context.WithoutCancel(ctx))
		}()

		out, err := buildReport(ctx, tasks)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func buildReport(ctx context.Context, tasks *services.TaskService) (report, error) {
	stats, err := tasks.Stats(ctx)
	if err != nil {
		return report{}, err
	}
	assignees, err := tasks.AssigneeReport(ctx)
	if err != nil {
		return report{}, err
	}
	return report{Stats: stats, Assignees: assignees}, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
