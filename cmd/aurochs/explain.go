package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/internal/errors"
)

func explainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe error codes",
		Long: `Describe an error code, or list every code when none is given.

Examples:
  aurochs explain
  aurochs explain E201`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(out, "%s  %-10s  %s\n", code, t.Category, t.Message)
				}
				return nil
			}
			return explainCode(out, args[0])
		},
	}

	return cmd
}

func explainCode(w io.Writer, code string) error {
	code = strings.ToUpper(code)
	t, ok := errors.GetTemplate(code)
	if !ok {
		return errors.Newf(errors.CategoryCLI, "unknown error code %q", code)
	}
	fmt.Fprintf(w, "%s: %s\n", code, t.Message)
	fmt.Fprintf(w, "  category: %s\n", t.Category)
	if t.Detail != "" {
		fmt.Fprintf(w, "\n  %s\n", t.Detail)
	}
	return nil
}
