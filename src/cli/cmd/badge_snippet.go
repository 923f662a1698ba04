package cmd

import (
	"fmt"

	"github.com/sofmeright/codingbadge/src/badge"
	"github.com/sofmeright/codingbadge/src/narrator"
	"github.com/spf13/cobra"
)

var (
	bsBaseURL string
	bsFormat  string
	bsLink    string
)

var badgeSnippetCmd = &cobra.Command{
	Use:   "snippet <icon>",
	Short: "Print an embed snippet for a badge endpoint",
	Long: `Print the URL, markdown or HTML that embeds a badge served by a badge
endpoint. Parameters equal to their defaults are left out of the URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runBadgeSnippet,
}

func init() {
	f := badgeSnippetCmd.Flags()
	addRequestFlags(f)
	f.StringVar(&bsBaseURL, "base-url", narrator.DefaultBaseURL, "badge endpoint URL")
	f.StringVar(&bsFormat, "format", "markdown", "snippet format: url, markdown, html")
	f.StringVar(&bsLink, "link", "", "wrap the image in a link to this URL")

	badgeCmd.AddCommand(badgeSnippetCmd)
}

func runBadgeSnippet(cmd *cobra.Command, args []string) error {
	format, err := narrator.ParseFormat(bsFormat)
	if err != nil {
		return err
	}
	req, err := badge.ParseRequest(renderParams(args[0]))
	if err != nil {
		return err
	}

	eng, _, err := buildBadgeEngine()
	if err != nil {
		return err
	}
	line1, line2 := eng.Lines(req)

	m := narrator.ImageModule{
		Alt:    narrator.AltText(line1, line2),
		Src:    narrator.BadgeURL(bsBaseURL, req),
		Link:   bsLink,
		Format: format,
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Render())
	return err
}
