package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/internal/config"
	"github.com/aurochs-dev/aurochs/internal/errors"
	"github.com/aurochs-dev/aurochs/pkg/treefile"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create aurochs.yaml and an example page",
		Long: `Create aurochs.yaml with default settings and pages/index.yaml
holding the example page.

Examples:
  aurochs init
  aurochs init my-site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing aurochs.yaml")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if config.Exists(dir) && !force {
		return errors.Newf(errors.CategoryCLI, "%s already exists in %s (use --force to overwrite)", config.ConfigFileName, dir)
	}

	cfg := config.New()
	pages := filepath.Join(dir, cfg.Serve.Root)
	if err := os.MkdirAll(pages, 0o755); err != nil {
		return err
	}
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	success(out, "Created %s", filepath.Join(dir, config.ConfigFileName))

	index := filepath.Join(pages, "index.yaml")
	if _, err := os.Stat(index); err == nil {
		info(out, "Kept existing %s", index)
		return nil
	}
	data, err := treefile.Marshal(examplePage())
	if err != nil {
		return err
	}
	if err := os.WriteFile(index, data, 0o644); err != nil {
		return err
	}
	success(out, "Created %s", index)
	return nil
}
