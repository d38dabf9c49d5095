package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/blockfall/internal/model"
)

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [kind]",
		Short: "Print the piece catalog",
		Long:  "Print every shape with its colour and all rotation states, or a single shape by name (I, O, T, S, Z, J, L).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := model.AllShapeKinds()
			if len(args) == 1 {
				kind, err := model.ParseShapeKind(args[0])
				if err != nil {
					return err
				}
				kinds = []model.ShapeKind{kind}
			}

			infos := make([]ShapeInfo, 0, len(kinds))
			for _, kind := range kinds {
				shape, err := model.LookupShape(kind)
				if err != nil {
					return err
				}
				infos = append(infos, newShapeInfo(shape))
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(infos)
			return nil
		},
	}
}
