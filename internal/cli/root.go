// Package cli assembles the shadegen command line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	shadegen "github.com/genart-io/go-shadegen"
)

const (
	appName    = "shadegen"
	appVersion = "0.1.0"
)

// fileOptions is the YAML shape of a --config file. Every field is
// optional; flags given on the command line win over file values.
type fileOptions struct {
	Seed   *uint64 `yaml:"seed"`
	Phrase string  `yaml:"phrase"`
	Static bool    `yaml:"static"`
	Output string  `yaml:"output"`
}

func loadConfig(path string) (fileOptions, error) {
	var opts fileOptions
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// NewRootCmd builds the root command. Output goes to stdout unless
// --output names a file.
func NewRootCmd() *cobra.Command {
	var (
		seed        uint64
		phrase      string
		static      bool
		outputPath  string
		configPath  string
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Seed-addressable WGSL shader generator",
		Long: appName + ` emits a complete, self-contained WGSL shader program
grown from a 64-bit seed. The same seed always reproduces the same shader.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}
			if showVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, appVersion)
				return err
			}

			var cfg fileOptions
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}

			// Flags win over config file values; the wall clock is the
			// seed of last resort.
			flags := cmd.Flags()
			resolved := shadegen.TimeSeed(time.Now())
			switch {
			case flags.Changed("seed"):
				resolved = seed
			case flags.Changed("phrase"):
				resolved = shadegen.PhraseSeed(phrase)
			case cfg.Seed != nil:
				resolved = *cfg.Seed
			case cfg.Phrase != "":
				resolved = shadegen.PhraseSeed(cfg.Phrase)
			}
			if !flags.Changed("static") {
				static = cfg.Static
			}
			if !flags.Changed("output") {
				outputPath = cfg.Output
			}

			code := shadegen.GenerateWith(resolved, shadegen.Options{Animate: !static})

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(code), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outputPath, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "seed %d -> %s\n", resolved, outputPath)
				return nil
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), code)
			return err
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "generation seed (default: wall clock)")
	cmd.Flags().StringVar(&phrase, "phrase", "", "derive the seed from a phrase")
	cmd.Flags().BoolVar(&static, "static", false, "generate a still image shader (no time terminals)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the shader to a file instead of stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML options file")
	cmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")

	return cmd
}

// Execute runs the root command and maps failure onto exit code 1.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
