package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkchart/pkg/layout"
)

// layoutDescriptions are the one-line summaries shown by 'linkchart layouts'.
var layoutDescriptions = map[string]string{
	layout.NameHierarchy:      "levels by depth from the link roots",
	layout.NameSpread:         "hierarchy with doubled spacing",
	layout.NameTree:           "tidy tree, parents over children",
	layout.NameCircular:       "one ring",
	layout.NameStar:           "first item in the center",
	layout.NameGrouped:        "one cluster per item type",
	layout.NamePeacock:        "hub with inner and outer rings",
	layout.NameCompactPeacock: "breadth-first tiers around the hub",
	layout.NameGrid:           "near-square grid",
	layout.NameTimeline:       "left to right by timestamp",
	layout.NameForce:          "spring simulation (use --seed to pin)",
}

// layoutsCommand lists the registered strategies.
func (c *CLI) layoutsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the available layout strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range layout.Names() {
				label := name
				if name == layout.DefaultName {
					label += " (default)"
				}
				printKeyValue(label, layoutDescriptions[name])
			}
			return nil
		},
	}
}
