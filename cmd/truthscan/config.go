package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truthscan/truthscan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.GenerateSample(configPath); err != nil {
			return fmt.Errorf("failed to write sample config: %w", err)
		}
		fmt.Printf("Sample configuration written to %s\n", configPath)
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(configPath); err != nil {
			return err
		}
		fmt.Printf("%s is valid\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configCheckCmd)
}
