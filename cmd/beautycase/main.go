package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akaver/beautycase/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beautycase",
		Short: "A self-hosted cosmetics shelf and usage tracker",
		Long:  "BeautyCase — catalog cosmetics, bundle them into looks, log daily usage, and see what you actually reach for.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("beautycase %s (%s, %s)\n", build.Version, build.Commit, build.Branch)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
