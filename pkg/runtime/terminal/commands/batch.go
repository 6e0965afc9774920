package commands

import (
	"fmt"

	"github.com/de-tools/deal-atlas/pkg/services/config"
	"github.com/de-tools/deal-atlas/pkg/services/deals"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type BatchCmd struct {
	schedulePath string
	baseFile     string
	env          *Env
}

func NewBatchCmd(env *Env) *cobra.Command {
	bc := &BatchCmd{env: env}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate deals for every date of a schedule file",
		Args:  cobra.NoArgs,
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.schedulePath, "schedule", "", "Path to the ini schedule, one section per date")
	cmd.Flags().StringVar(&bc.baseFile, "base", "", "Base deals file for sections that do not name one")

	_ = cmd.MarkFlagRequired("schedule")

	return cmd
}

func (bc *BatchCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	schedule, err := config.LoadSchedule(bc.schedulePath, config.ScheduleDefaults{
		BaseFile: bc.baseFile,
		Discount: bc.env.Settings.Discount,
	})
	if err != nil {
		return err
	}

	entries := schedule.Entries()
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("batch interrupted before %s: %w", entry, err)
		}

		zerolog.Ctx(ctx).Debug().Msgf("running %d/%d: %s", i+1, len(entries), entry)

		_, err := bc.env.Generate(ctx, entry.Strategy, entry.BaseFile, entry.OutputFile, deals.Params{
			Date:        entry.Date,
			DateIndex:   entry.DateIndex,
			DiscountMin: entry.DiscountMin,
			DiscountMax: entry.DiscountMax,
		})
		if err != nil {
			return fmt.Errorf("failed to run %s: %w", entry, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d deals files from %s\n", len(entries), bc.schedulePath)
	return nil
}
