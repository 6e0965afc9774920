package commands

import (
	"fmt"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/de-tools/deal-atlas/pkg/services/deals"
	"github.com/spf13/cobra"
)

// RotationCmd runs one of the fixed-price rotation strategies.
type RotationCmd struct {
	env      *Env
	strategy domain.StrategyName
}

func NewPositionalCmd(env *Env) *cobra.Command {
	return newRotationCmd(env, domain.StrategyPositional,
		"Rotate contiguous or strided slices of the products per date",
		`date_index 0 keeps the first 70% of products (+5% prices), 1 the middle 70%
(regular prices), 2 everything from 30% on (-5% promo prices) and any other value
every second product (+10% unit, +8% promo). promoEnds is set 5 days after date.`)
}

func NewCategoryCmd(env *Env) *cobra.Command {
	return newRotationCmd(env, domain.StrategyCategory,
		"Rotate product groups per date, favouring the date's focus categories",
		`Splits the base products into 4 groups by position. For the group selected by
date_index (0-3) every product of the focus categories is kept
(0: meat & produce, 1: dairy & bakery, 2: pantry & beverage, 3: specialty & frozen)
plus a share of the rest. Prices follow the positional rotation.`)
}

func newRotationCmd(env *Env, strategy domain.StrategyName, short, long string) *cobra.Command {
	rc := &RotationCmd{env: env, strategy: strategy}
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <base_file> <date> <date_index> <output_file>", strategy),
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(4),
		RunE:  rc.run,
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (rc *RotationCmd) run(cmd *cobra.Command, args []string) error {
	idx, err := parseDateIndex(args[2])
	if err != nil {
		return err
	}

	_, err = rc.env.Generate(cmd.Context(), rc.strategy, args[0], args[3], deals.Params{
		Date:      args[1],
		DateIndex: idx,
	})
	return err
}
