// Command equals evaluates code embedded in text or Markdown files and
// writes results back next to the evaluation markers.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"nickandperla.net/equals/internal/config"
	"nickandperla.net/equals/internal/lang"
	"nickandperla.net/equals/pkg/equals"
)

const version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "equals",
	Short: "Evaluate code inside text or markdown files",
	Long: `equals reads a text or markdown document, evaluates the code it
contains with an external interpreter, and rewrites evaluation results in
place without disturbing the surrounding prose.`,
	RunE: runTransform,
}

func main() {
	rootCmd.Version = version

	rootCmd.Flags().StringP("input", "i", "", "input file (default: stdin)")
	rootCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().StringP("language", "l", "python", "language pack (python|numbat|fend)")
	rootCmd.Flags().BoolP("markdown", "m", false, "parse input as markdown")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(langsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTransform(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	inputPath, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	language, err := cmd.Flags().GetString("language")
	if err != nil {
		return err
	}
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	var input []byte
	if inputPath != "" {
		input, err = os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	// The input extension implies markdown unless the flag said otherwise.
	if !cmd.Flags().Changed("markdown") {
		markdown = isMarkdownPath(inputPath)
	}

	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}

	evaluator, err := packFor(language, cfg)
	if err != nil {
		return err
	}

	opts := []equals.Option{equals.WithEvaluator(evaluator)}
	if markdown {
		opts = append(opts, equals.WithMarkdown())
	}

	output, err := equals.New(opts...).Transform(cmd.Context(), string(input))
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Print(output)
	return nil
}

// packFor builds the selected language pack, applying any equals.toml
// overrides. An unknown name is a user error at this boundary, never inside
// the core.
func packFor(language string, cfg *config.Config) (lang.Evaluator, error) {
	switch language {
	case "python":
		var opts []lang.PythonOption
		if cfg != nil {
			if cfg.Python.Command != "" {
				opts = append(opts, lang.WithPythonCommand(cfg.Python.Command, cfg.Python.Args...))
			}
			if cfg.Python.Timeout.Duration > 0 {
				opts = append(opts, lang.WithPythonTimeout(cfg.Python.Timeout.Duration))
			}
		}
		return lang.NewPython(opts...), nil
	case "numbat":
		var opts []lang.NumbatOption
		if cfg != nil {
			if cfg.Numbat.Command != "" {
				opts = append(opts, lang.WithNumbatCommand(cfg.Numbat.Command, cfg.Numbat.Args...))
			}
			if cfg.Numbat.Timeout.Duration > 0 {
				opts = append(opts, lang.WithNumbatTimeout(cfg.Numbat.Timeout.Duration))
			}
		}
		return lang.NewNumbat(opts...), nil
	case "fend":
		var opts []lang.FendOption
		if cfg != nil {
			if cfg.Fend.Command != "" {
				opts = append(opts, lang.WithFendCommand(cfg.Fend.Command, cfg.Fend.Args...))
			}
			if cfg.Fend.Timeout.Duration > 0 {
				opts = append(opts, lang.WithFendTimeout(cfg.Fend.Timeout.Duration))
			}
		}
		return lang.NewFend(opts...), nil
	default:
		return nil, fmt.Errorf("unknown language: %s (use python, numbat, or fend)", language)
	}
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
