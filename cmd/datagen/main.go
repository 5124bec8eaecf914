// datagen seeds a data directory with the sample files the agent's
// operations consume. The agent invokes it as its external generator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opsagent/internal/fixture"
)

func main() {
	var dir string

	root := &cobra.Command{
		Use:   "datagen EMAIL",
		Short: "Populate the sandbox with sample data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fixture.Generate(dir, args[0]); err != nil {
				return err
			}
			fmt.Println("Data generation complete.")
			return nil
		},
	}
	root.Flags().StringVar(&dir, "dir", "/data", "target data directory")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
