package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Affiliat0r/Vertaler/internal/assembly"
	"github.com/Affiliat0r/Vertaler/internal/gcp"
	"github.com/Affiliat0r/Vertaler/internal/services"
)

var localCmd = &cobra.Command{
	Use:   "local <file>",
	Short: "Translate a local PDF or image into OUTPUT_DIR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := services.LoadLocalConfig()
		if err != nil {
			return err
		}
		engine, err := assembly.New(cfg.Document)
		if err != nil {
			return err
		}
		vertex, err := gcp.NewVertexClient(ctx, cfg.ProjectID, cfg.VertexAIRegion, cfg.ExtractionModel)
		if err != nil {
			return err
		}
		defer vertex.Close()

		run := &services.LocalRun{
			Extractor:  services.NewVertexExtractor(vertex.ExtractionModel),
			Assembler:  engine,
			Languages:  cfg.Languages,
			OutputDir:  cfg.OutputDir,
			OutputFile: cfg.OutputFile,
		}
		out, _, err := run.Convert(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(localCmd)
}
