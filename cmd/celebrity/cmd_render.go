// The render subcommand: draw the acquaintance graph, with the celebrity
// clique highlighted unless told otherwise.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pfad/celebrity"
	"github.com/katalvlaran/pfad/viz"
)

// Artifact names inside the output directory.
const (
	dotFileName     = "graph.dot"
	mermaidFileName = "graph.mmd"
	pngFileName     = "graph.png"
)

var (
	renderPartyPath   string
	renderFormat      string
	renderOutDir      string
	renderPNG         bool
	renderNoHighlight bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the party graph as DOT or Mermaid",
	Long: `Draw the acquaintance graph of a party. The celebrity clique is
solved for and filled in yellow unless --no-highlight is given.

Examples:
  celebrity render
  celebrity render --party guests.yaml --format mermaid
  celebrity render --png --out diagrams`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderPartyPath, "party", "", "party YAML file (default: built-in demo party)")
	renderCmd.Flags().StringVar(&renderFormat, "format", string(viz.FormatDOT), `render format: "dot" or "mermaid"`)
	renderCmd.Flags().StringVar(&renderOutDir, "out", defaultOutputDir, "output directory, created if missing")
	renderCmd.Flags().BoolVar(&renderPNG, "png", false, "also convert the DOT file to PNG via Graphviz")
	renderCmd.Flags().BoolVar(&renderNoHighlight, "no-highlight", false, "do not highlight the celebrity clique")
}

func runRender(cmd *cobra.Command, _ []string) error {
	p, source, err := loadParty(renderPartyPath)
	if err != nil {
		return err
	}

	// Explicit flags win over config file values.
	format := viz.Format(renderFormat)
	if !cmd.Flags().Changed("format") {
		format = viz.Format(cfg.Output.Format)
	}
	outDir := renderOutDir
	if !cmd.Flags().Changed("out") {
		outDir = cfg.Output.Dir
	}
	png := renderPNG
	if !cmd.Flags().Changed("png") {
		png = cfg.Output.PNG
	}
	highlight := !renderNoHighlight
	if !cmd.Flags().Changed("no-highlight") {
		highlight = cfg.Output.Highlight
	}

	if png && format != viz.FormatDOT {
		return fmt.Errorf("--png requires format %q, got %q", viz.FormatDOT, format)
	}

	var opts []viz.Option
	if highlight {
		res, err := celebrity.FindClique(p)
		if err != nil {
			return err
		}
		if res.Found {
			opts = append(opts, viz.WithHighlight(res.Members))
			logger.Debug("clique highlighted", zap.Int("members", len(res.Members)))
		}
	}

	out, err := viz.Render(p, format, opts...)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", outDir, err)
	}

	name := dotFileName
	if format == viz.FormatMermaid {
		name = mermaidFileName
	}
	path := filepath.Join(outDir, name)
	if err = os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	logger.Info("graph written",
		zap.String("party", source),
		zap.String("format", string(format)),
		zap.String("path", path),
	)

	if png {
		convertPNG(outDir)
	}

	return nil
}

// convertPNG shells out to Graphviz. A missing or failing dot binary is
// reported but does not fail the command; the DOT file is already on disk.
func convertPNG(outDir string) {
	dotPath := filepath.Join(outDir, dotFileName)
	pngPath := filepath.Join(outDir, pngFileName)

	out, err := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath).CombinedOutput()
	if err != nil {
		logger.Warn("graphviz conversion failed",
			zap.Error(err),
			zap.ByteString("output", out),
		)

		return
	}
	logger.Info("png written", zap.String("path", pngPath))
}
