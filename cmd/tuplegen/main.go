// Package main provides the CLI entrypoint for tuplegen.
//
// tuplegen is the codegen tool behind the tuple package:
//   - Reads a small YAML config (arity range, field style, package, output)
//   - Resolves it into a deterministic generation plan
//   - Emits one file per arity: the tuple type, a constructor, Unpack,
//     and one statically typed map function per position
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maptuple/internal/gen"
	"maptuple/internal/plan"
	"maptuple/internal/schema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tuplegen:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "tuplegen",
		Short:         "Generate fixed-arity tuple types with per-position map functions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "tuplegen.yaml",
		"path to the generation config")

	root.AddCommand(
		newGenCmd(&configPath),
		newCheckCmd(&configPath),
		newInitCmd(&configPath),
	)

	return root
}

// loadPlan loads the config and resolves it into a generation plan,
// optionally overriding the output directory.
func loadPlan(configPath, outputOverride string) (*plan.Plan, error) {
	cfg, err := schema.LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	p, err := plan.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	if outputOverride != "" {
		p.Output = outputOverride
	}

	return p, nil
}

func newGenCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate tuple files from the config",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(*configPath, output)
			if err != nil {
				return err
			}

			files, err := gen.NewGenerator(p).Generate()
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files, p.Output); err != nil {
				return err
			}

			cmd.Printf("wrote %d files to %s\n", len(files), p.Output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "override the config's output directory")

	return cmd
}

func newCheckCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that generated files on disk are up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(*configPath, output)
			if err != nil {
				return err
			}

			files, err := gen.NewGenerator(p).Generate()
			if err != nil {
				return err
			}

			if err := gen.Check(files, p.Output); err != nil {
				return err
			}

			cmd.Printf("%d files up to date in %s\n", len(files), p.Output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "override the config's output directory")

	return cmd
}

func newInitCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(*configPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", *configPath)
				}
			}

			if err := schema.WriteFile(schema.Default(), *configPath); err != nil {
				return err
			}

			cmd.Printf("wrote %s\n", *configPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}
