package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	figmacodegen "github.com/hellenic-development/figma-codegen"
	"github.com/hellenic-development/figma-codegen/pkg/classindex"
	"github.com/hellenic-development/figma-codegen/pkg/figma"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const version = figma.Version

// errDrift makes the check command exit non-zero.
var errDrift = errors.New("generated files are out of date")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// addSourceFlags registers the flags shared by every command that runs the
// pipeline.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("url", "u", "", "Figma file URL")
	cmd.Flags().StringP("token", "t", "", "Figma Personal Access Token")
	cmd.Flags().String("api-base-url", "", "Figma API root (defaults to the public API)")
	cmd.Flags().StringP("file", "f", "", "Saved file API response to generate from instead of the API")
	cmd.Flags().String("variables", "", "Saved local variables API response (used with --file)")
	cmd.Flags().StringP("node-ids", "n", "", "Comma-separated node IDs to generate (optional, defaults to the URL's node-id or the entire file)")
	cmd.Flags().StringP("select", "s", "", "Glob over element paths, e.g. \"Page/**/Button*\"")
	cmd.Flags().StringP("component", "c", "", "Wrap the JSX in an exported function component with this name")
	cmd.Flags().StringP("out", "o", defaultOut, "Output directory")
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		watch      bool
	)

	rootCmd := &cobra.Command{
		Use:          "figma-codegen",
		Short:        "Generate CSS, HTML and Tailwind JSX from Figma designs",
		Long:         "A tool to generate a CSS stylesheet with HTML markup, Tailwind JSX and a class index from Figma files, keeping variable bindings as CSS custom properties",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, watch)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./.figma-codegen.yaml)")
	addSourceFlags(rootCmd)
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate when --file or --variables change")

	rootCmd.AddCommand(newIndexCmd(&configPath), newCheckCmd(&configPath), newVersionCmd())
	return rootCmd
}

func runGenerate(ctx context.Context, cfg *config, watch bool) error {
	cyan := color.New(color.FgCyan)
	cyan.Println("\n🎨 Figma Code Generator")
	cyan.Println("========================")
	cyan.Println()

	opts := cfg.options(&cliLogger{})
	if !watch {
		return generateOnce(opts, cfg.Out)
	}

	if cfg.File == "" {
		return errors.New("--watch needs --file: remote files cannot be watched")
	}
	if err := generateOnce(opts, cfg.Out); err != nil {
		opts.Logger.Errorf("%v", err)
	}

	w, err := newWatcher([]string{cfg.File, cfg.Variables}, debounceDelay, opts.Logger)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cyan.Printf("\n👀 Watching %s for changes (Ctrl+C to stop)\n", cfg.File)
	return w.run(ctx, func() {
		cyan.Println("\n🔄 Change detected, regenerating...")
		if err := generateOnce(opts, cfg.Out); err != nil {
			opts.Logger.Errorf("%v", err)
		}
	})
}

func generateOnce(opts figmacodegen.Options, out string) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	result, err := figmacodegen.Run(opts)
	if err != nil {
		return err
	}

	// Display generation stats.
	cyan.Println("\n📊 Generation Summary:")
	fmt.Printf("  • Elements: %d\n", result.Elements)
	fmt.Printf("  • Variables: %d\n", len(result.Variables))
	fmt.Printf("  • Class tokens: %d\n", len(result.Index))
	fmt.Printf("  • Stylesheet: %s\n", humanize.Bytes(uint64(len(result.CSS))))
	fmt.Printf("  • JSX: %s\n", humanize.Bytes(uint64(len(result.JSX))))

	// Write the generated files.
	green.Printf("\n💾 Writing to %s... ", out)
	paths, err := figmacodegen.WriteFiles(result, out)
	if err != nil {
		red.Printf("✗\n")
		return err
	}
	green.Println("✓")
	for _, p := range paths {
		fmt.Printf("  • %s\n", p)
	}

	green.Printf("\n✨ Successfully generated code to %s\n\n", out)
	return nil
}

func newIndexCmd(configPath *string) *cobra.Command {
	var (
		from   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "index [class...]",
		Short: "Print the class index, optionally only for the given classes",
		Long:  "Print which elements carry each Tailwind class. The index is generated from the design, or read from a classes.json/yaml file with --from",
		RunE: func(cmd *cobra.Command, args []string) error {
			var idx classindex.Index
			if from != "" {
				data, err := os.ReadFile(from)
				if err != nil {
					return fmt.Errorf("read class index: %w", err)
				}
				idx = classindex.Parse(data, &cliLogger{})
			} else {
				cfg, err := loadConfig(cmd, *configPath)
				if err != nil {
					return err
				}
				result, err := figmacodegen.Run(cfg.options(nil))
				if err != nil {
					return err
				}
				idx = result.Index
			}
			return printIndex(cmd.OutOrStdout(), idx, args, format)
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().StringVar(&from, "from", "", "Read an existing class index (JSON or YAML) instead of generating one")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json, yaml")
	return cmd
}

func printIndex(w io.Writer, idx classindex.Index, only []string, format string) error {
	if len(only) > 0 {
		filtered := make(classindex.Index, len(only))
		for _, token := range only {
			if owners := idx.Owners(token); len(owners) > 0 {
				filtered[token] = owners
			}
		}
		idx = filtered
	}

	switch format {
	case "json":
		data, err := idx.ToJSON()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "yaml":
		data, err := idx.ToYAML()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "table":
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"Class", "Elements"})
		for _, token := range idx.Tokens() {
			tbl.AppendRow(table.Row{token, strings.Join(idx.Owners(token), ", ")})
		}
		tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d classes", len(idx)), ""})
		_, err := fmt.Fprintln(w, tbl.Render())
		return err
	default:
		return fmt.Errorf("invalid format %q (must be table, json or yaml)", format)
	}
}

func newCheckCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report generated files that no longer match the design",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			result, err := figmacodegen.Run(cfg.options(nil))
			if err != nil {
				return err
			}
			drifts, err := figmacodegen.Check(result, cfg.Out)
			if err != nil {
				return err
			}
			return printDrifts(cmd.OutOrStdout(), cfg.Out, drifts)
		},
	}
	addSourceFlags(cmd)
	return cmd
}

func printDrifts(w io.Writer, dir string, drifts []figmacodegen.Drift) error {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	if len(drifts) == 0 {
		green.Fprintf(w, "✓ %s is up to date\n", dir)
		return nil
	}

	for _, d := range drifts {
		path := filepath.Join(dir, d.File)
		if d.Missing {
			red.Fprintf(w, "✗ %s is missing\n", path)
			continue
		}
		yellow.Fprintf(w, "⚠ %s changed\n", path)
		fmt.Fprint(w, d.Patch)
	}
	return fmt.Errorf("%d file(s): %w", len(drifts), errDrift)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-codegen version %s\n", version)
		},
	}
}

// cliLogger implements figmacodegen.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
