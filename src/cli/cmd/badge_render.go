package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sofmeright/codingbadge/src/badge"
	"github.com/sofmeright/codingbadge/src/raster"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	brLine1     string
	brLine2     string
	brTheme     string
	brColorMode string
	brColors    badge.CustomColors
	brOutput    string
	brPNG       string
	brScale     float64
)

var badgeRenderCmd = &cobra.Command{
	Use:   "render <icon>",
	Short: "Render one badge from flags",
	Long: `Render a single badge for an icon id or title.

The SVG goes to stdout unless --output is given. Unknown icons still render,
using a circle with the name's initial.`,
	Args: cobra.ExactArgs(1),
	RunE: runBadgeRender,
}

func init() {
	f := badgeRenderCmd.Flags()
	addRequestFlags(f)
	f.StringVarP(&brOutput, "output", "o", "-", "SVG output path, - for stdout")
	f.StringVar(&brPNG, "png", "", "also write a PNG to this path")
	f.Float64Var(&brScale, "scale", 1, "PNG scale factor")

	badgeCmd.AddCommand(badgeRenderCmd)
}

// addRequestFlags binds the per-badge request flags shared by render and
// snippet. Only one command runs per invocation, so they share variables.
func addRequestFlags(f *pflag.FlagSet) {
	f.StringVar(&brLine1, "line1", "", "upper text (default: config defaults.line1)")
	f.StringVar(&brLine2, "line2", "", "lower text (default: icon title)")
	f.StringVar(&brTheme, "theme", "", "light or dark (default: config defaults.theme)")
	f.StringVar(&brColorMode, "color-mode", "", "original, primary or contrast (default: config defaults.color_mode)")
	f.StringVar(&brColors.Background, "background", "", "background color override")
	f.StringVar(&brColors.Border, "border", "", "border color override")
	f.StringVar(&brColors.IconBg, "icon-bg", "", "icon box color override")
	f.StringVar(&brColors.Text1, "text1", "", "upper text color override")
	f.StringVar(&brColors.Text2, "text2", "", "lower text color override")
	f.StringVar(&brColors.IconColor, "icon-color", "", "uniform icon color, overrides --color-mode")
}

// renderParams maps flags onto the query-style parameters the request
// parser understands, so flags and config defaults go through one coercion path.
func renderParams(name string) url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("name", name)
	set("line1", badge.First(brLine1, cfg.Defaults.Line1))
	set("line2", brLine2)
	set("theme", badge.First(brTheme, cfg.Defaults.Theme))
	set("colorMode", badge.First(brColorMode, cfg.Defaults.ColorMode))
	set("background", brColors.Background)
	set("border", brColors.Border)
	set("iconBg", brColors.IconBg)
	set("text1", brColors.Text1)
	set("text2", brColors.Text2)
	set("iconColor", brColors.IconColor)
	return v
}

func runBadgeRender(cmd *cobra.Command, args []string) error {
	req, err := badge.ParseRequest(renderParams(args[0]))
	if err != nil {
		return err
	}

	eng, _, err := buildBadgeEngine()
	if err != nil {
		return err
	}

	res := eng.Resolve(req.IconName)
	if res.Geometry == nil {
		logger.Debug("no geometry, using fallback glyph", zap.String("icon", req.IconName), zap.Bool("record", res.Found))
	}

	svg := eng.Generate(req)

	if brOutput == "-" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), svg); err != nil {
			return fmt.Errorf("writing badge: %w", err)
		}
	} else {
		if err := writeFile(brOutput, []byte(svg)); err != nil {
			return fmt.Errorf("writing badge: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  badge → %s\n", brOutput)
	}

	if brPNG != "" {
		r, err := raster.New()
		if err != nil {
			return err
		}
		if err := writePNG(r, svg, brPNG, brScale); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  png   → %s\n", brPNG)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writePNG(r *raster.Renderer, svg, path string, scale float64) error {
	img, err := r.Render(svg, raster.Options{Scale: scale})
	if err != nil {
		return fmt.Errorf("rasterizing %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := raster.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
