// 压测入口：ndot-bench impls|views|info
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	var cfgPath, reportDir string
	rootCmd := &cobra.Command{
		Use:           "ndot-bench",
		Short:         "Time the dot product implementations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "yaml config file")
	rootCmd.PersistentFlags().StringVar(&reportDir, "report-dir", "", "report output directory (overrides config)")

	load := func() (*Config, error) {
		cfg, err := LoadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		if reportDir != "" {
			cfg.ReportDir = reportDir
		}
		return cfg, nil
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "impls",
		Short: "Compare the reference dot against the accelerated backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runImpls(cmd.OutOrStdout(), cfg)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "views",
		Short: "Time the reference dot over contiguous, strided and mmap-backed views",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runViews(cmd.OutOrStdout(), cfg)
		},
	})
	var asJSON bool
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print the active SIMD backend and CPU features",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runInfo(cmd.OutOrStdout(), cfg, asJSON)
		},
	}
	infoCmd.Flags().BoolVar(&asJSON, "json", false, "also write report/info.json")
	rootCmd.AddCommand(infoCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("ndot-bench: %v", err)
	}
}
