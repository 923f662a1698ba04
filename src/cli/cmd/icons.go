package cmd

import (
	"fmt"
	"strings"

	"github.com/sofmeright/codingbadge/src/icons"
	"github.com/sofmeright/codingbadge/src/output"
	"github.com/spf13/cobra"
)

var iconsGroup string

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Inspect the icon dataset",
}

var iconsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List icons, optionally filtered by group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		g, err := parseGroup(iconsGroup)
		if err != nil {
			return err
		}
		records := c.Records()
		if g != "" {
			records = c.ByGroup(g)
		}
		p := output.NewPrinter()
		p.Writer = cmd.OutOrStdout()
		p.Summary(p.PrintIcons(records), c.Len())
		return nil
	},
}

var iconsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search icons by id, title or full title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		g, err := parseGroup(iconsGroup)
		if err != nil {
			return err
		}
		p := output.NewPrinter()
		p.Writer = cmd.OutOrStdout()
		p.Summary(p.PrintIcons(c.Search(args[0], g)), c.Len())
		return nil
	},
}

var iconsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show what a name resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		res := icons.Resolve(c, args[0])

		kv := []output.KV{
			{Key: "name", Value: res.Name},
			{Key: "id", Value: res.ID()},
			{Key: "found", Value: fmt.Sprintf("%t", res.Found)},
			{Key: "title", Value: res.Title()},
		}
		if res.Found {
			kv = append(kv,
				output.KV{Key: "full title", Value: res.Record.FullTitle},
				output.KV{Key: "group", Value: res.Record.Group.Label()},
				output.KV{Key: "color", Value: res.Record.Color},
			)
		}
		kv = append(kv, output.KV{Key: "paths", Value: output.PaintSummary(res.Geometry)})
		if res.Geometry != nil {
			kv = append(kv,
				output.KV{Key: "gradients", Value: fmt.Sprintf("%t", res.Geometry.HasGradients())},
				output.KV{Key: "primary", Value: res.Geometry.ColorPrimary},
			)
		}
		output.ContextBlock(cmd.OutOrStdout(), kv)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{iconsListCmd, iconsSearchCmd} {
		c.Flags().StringVar(&iconsGroup, "group", "", "filter by group: model, provider, application")
	}
	iconsCmd.AddCommand(iconsListCmd, iconsSearchCmd, iconsShowCmd)
	rootCmd.AddCommand(iconsCmd)
}

func parseGroup(s string) (icons.Group, error) {
	if s == "" {
		return "", nil
	}
	for _, g := range icons.Groups() {
		if strings.EqualFold(string(g), s) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown group %q (available: model, provider, application)", s)
}
