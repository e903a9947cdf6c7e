package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"netdoc.dev/aws-netdoc/internal/prompts"
)

func NewPromptCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the bundled network-review prompt",
		Long: `Print the analysis prompt intended to be fed to a language model
together with a generated report. Pipe it to your clipboard or write it to
a file with --output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), prompts.NetworkReview)
				return nil
			}
			if err := os.WriteFile(output, []byte(prompts.NetworkReview), 0o644); err != nil {
				return fmt.Errorf("writing prompt: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the prompt to a file instead of stdout")

	return cmd
}
