package commands

import (
	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/de-tools/deal-atlas/pkg/services/deals"
	"github.com/spf13/cobra"
)

type RandomCmd struct {
	env *Env
}

func NewRandomCmd(env *Env) *cobra.Command {
	rc := &RandomCmd{env: env}
	cmd := &cobra.Command{
		Use:   "random <base_file> <date> <date_index> <discount_min> <discount_max> <output_file>",
		Short: "Pick random products of the date's group and discount them randomly",
		Long: `Splits the base products into 5 groups by position, keeps 80-100% of the group
selected by date_index (0-4) and gives every kept product a random discount between
discount_min and discount_max percent. promoEnds is set 7 days after date.`,
		Args: cobra.ExactArgs(6),
		RunE: rc.run,
	}
	// flags end at the first argument so negative numbers stay positional
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (rc *RandomCmd) run(cmd *cobra.Command, args []string) error {
	idx, err := parseDateIndex(args[2])
	if err != nil {
		return err
	}
	discountMin, err := parsePercent("discount_min", args[3])
	if err != nil {
		return err
	}
	discountMax, err := parsePercent("discount_max", args[4])
	if err != nil {
		return err
	}

	_, err = rc.env.Generate(cmd.Context(), domain.StrategyRandom, args[0], args[5], deals.Params{
		Date:        args[1],
		DateIndex:   idx,
		DiscountMin: discountMin,
		DiscountMax: discountMax,
	})
	return err
}
