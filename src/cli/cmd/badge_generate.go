package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/sofmeright/codingbadge/src/badge"
	"github.com/sofmeright/codingbadge/src/config"
	"github.com/sofmeright/codingbadge/src/narrator"
	"github.com/sofmeright/codingbadge/src/output"
	"github.com/sofmeright/codingbadge/src/raster"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var badgeGenerateCmd = &cobra.Command{
	Use:   "generate [pattern...]",
	Short: "Generate SVG badges from config",
	Long: `Generate every badge defined in badges.items, or only those whose name
matches a pattern. Plain names match exactly, regexes match the whole name,
and a leading ! excludes.

Badges render concurrently; the first failure stops the batch.
With --snippets, an embed snippet for the written files is printed after
the summary.`,
	RunE: runBadgeGenerate,
}

var (
	bgSnippets string
	bgPerRow   int
)

func init() {
	badgeGenerateCmd.Flags().StringVar(&bgSnippets, "snippets", "", "print embed snippets: url, markdown, html")
	badgeGenerateCmd.Flags().IntVar(&bgPerRow, "per-row", 0, "badges per snippet line (0 = one line)")
	badgeCmd.AddCommand(badgeGenerateCmd)
}

// generated records the outcome of one item for the summary.
type generated struct {
	name     string
	alt      string
	svgPath  string
	pngPath  string
	fallback bool
}

func runBadgeGenerate(cmd *cobra.Command, args []string) error {
	items, err := selectBadgeItems(cfg.Badges.Items, args)
	if err != nil {
		return err
	}
	var format narrator.Format
	if bgSnippets != "" {
		if format, err = narrator.ParseFormat(bgSnippets); err != nil {
			return err
		}
	}

	eng, catalog, err := buildBadgeEngine()
	if err != nil {
		return err
	}

	var r *raster.Renderer
	for _, item := range items {
		if item.PNG {
			if r, err = raster.New(); err != nil {
				return err
			}
			break
		}
	}

	start := time.Now()
	results, err := generateBadges(cmd.Context(), eng, r, items, cfg.Badges, cfg.Defaults)
	if err != nil {
		return err
	}

	color := output.UseColor()
	w := cmd.OutOrStdout()
	sec := output.NewSection(w, "Badges", time.Since(start), color)
	sec.Row("icons %s (%d records)", badge.First(catalog.Version(), "unversioned"), catalog.Len())
	sec.Separator()
	fallbacks := 0
	for _, g := range results {
		status := output.StatusWritten
		if g.fallback {
			status = output.StatusFallback
			fallbacks++
		}
		detail := g.svgPath
		if g.pngPath != "" {
			detail += output.Dimmed(" + "+g.pngPath, color)
		}
		output.SummaryRow(w, g.name, status, detail, color)
	}
	sec.Separator()
	output.SummaryTotal(w, len(results), fallbacks, time.Since(start))
	sec.Close()

	if format != "" {
		fmt.Fprintf(w, "\n%s\n", snippets(results, format, bgPerRow))
	}
	return nil
}

// snippets composes embed snippets for generated files, referenced by their
// slash-separated output paths.
func snippets(results []generated, format narrator.Format, perRow int) string {
	modules := make([]narrator.Module, 0, len(results))
	for _, g := range results {
		modules = append(modules, narrator.ImageModule{
			Alt:    g.alt,
			Src:    filepath.ToSlash(g.svgPath),
			Format: format,
		})
	}
	return narrator.Compose(narrator.Rows(modules, perRow))
}

// selectBadgeItems filters items by name patterns; no patterns selects all.
func selectBadgeItems(items []config.BadgeItemConfig, patterns []string) ([]config.BadgeItemConfig, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no badge items configured in badges.items")
	}
	if len(patterns) == 0 {
		return items, nil
	}

	cp, err := config.CompilePatterns(patterns)
	if err != nil {
		return nil, err
	}
	var filtered []config.BadgeItemConfig
	for _, item := range items {
		if cp.Match(item.Name) {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no matching badge items for: %v", patterns)
	}
	return filtered, nil
}

// generateBadges renders items with bounded concurrency. Results keep the
// order of items.
func generateBadges(ctx context.Context, eng *badge.Engine, r *raster.Renderer, items []config.BadgeItemConfig, bc config.BadgesConfig, defaults config.DefaultsConfig) ([]generated, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	limit := bc.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	sem := semaphore.NewWeighted(int64(limit))
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make([]generated, len(items))

	var acquireErr error
	for i, item := range items {
		if acquireErr = sem.Acquire(ctx, 1); acquireErr != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)

			req := item.Request(defaults)
			svg := eng.Generate(req)
			out := generated{
				name:     item.Name,
				alt:      narrator.AltText(eng.Lines(req)),
				svgPath:  item.OutputPath(bc.OutputDir),
				fallback: eng.Resolve(req.IconName).Geometry == nil,
			}
			if err := writeFile(out.svgPath, []byte(svg)); err != nil {
				return fmt.Errorf("writing badge %s: %w", item.Name, err)
			}
			if item.PNG && r != nil {
				out.pngPath = item.PNGPath(bc.OutputDir)
				if err := writePNG(r, svg, out.pngPath, item.Scale); err != nil {
					return fmt.Errorf("badge %s: %w", item.Name, err)
				}
			}
			logger.Debug("badge written", zap.String("name", item.Name), zap.String("path", out.svgPath))

			mu.Lock()
			results[i] = out
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if acquireErr != nil {
		return nil, acquireErr
	}
	return results, nil
}
