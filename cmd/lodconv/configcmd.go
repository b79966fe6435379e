package main

import (
	"fmt"

	"github.com/philipparndt/lodconv/internal/config"
	"github.com/spf13/cobra"
)

var (
	configInitPath  string
	configInitForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the lodconv configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	Long: `Write the default classification, height, extrusion and logging settings
as YAML. Without --path the file goes to the user config directory, where
every later run picks it up.`,
	Args: cobra.NoArgs,
	Run:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Write to this file instead of the user config directory")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Replace an existing file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path, err := config.Default().Create(configInitPath, configInitForce)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
