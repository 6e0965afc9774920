package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/de-tools/deal-atlas/pkg/services/deals"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type ClassifyCmd struct {
	env *Env
}

func NewClassifyCmd(env *Env) *cobra.Command {
	cc := &ClassifyCmd{env: env}
	return &cobra.Command{
		Use:   "classify <base_file>",
		Short: "Show the category every product of a deals file falls into",
		Args:  cobra.ExactArgs(1),
		RunE:  cc.run,
	}
}

func (cc *ClassifyCmd) run(cmd *cobra.Command, args []string) error {
	doc, err := cc.env.Store.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	counts := make(map[deals.Category]int)
	for _, d := range doc.Deals {
		category := cc.env.Classifier.Classify(d.ProductName)
		counts[category]++
		fmt.Fprintf(out, "%s\t%s\n", category, d.ProductName)
	}
	if err := out.Flush(); err != nil {
		return err
	}

	present := lo.Filter(cc.env.Classifier.Categories(), func(c deals.Category, _ int) bool { return counts[c] > 0 })
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d deals in %d categories\n", len(doc.Deals), len(present))
	for _, c := range present {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", c, counts[c])
	}
	return nil
}
