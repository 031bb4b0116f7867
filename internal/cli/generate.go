package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/openfield/knackspec/internal/config"
	"github.com/openfield/knackspec/internal/generate"
	"github.com/openfield/knackspec/internal/knack"
	"github.com/openfield/knackspec/internal/openapi"
	"github.com/openfield/knackspec/internal/validate"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate OpenAPI documents from an application schema",
		RunE:  runGenerate,
	}

	config.BindFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	app, err := knack.Load(cfg.Schema)
	if err != nil {
		return fmt.Errorf("loading application schema: %w", err)
	}

	cmd.PrintErrf("Loaded application: %s\n", app.Name)
	cmd.PrintErrf("  Objects: %d\n", len(app.Objects))
	cmd.PrintErrf("  Scenes:  %d\n", len(app.Scenes))

	doc := generate.Generate(app, generate.Options{
		Title:   cfg.Info.Title,
		Version: cfg.Info.Version,
	})

	jsonData, err := openapi.RenderJSON(doc)
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	yamlData, err := openapi.RenderYAML(doc)
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	if cfg.Validate {
		warnings, err := validate.Document(jsonData)
		if err != nil {
			return fmt.Errorf("validating generated document: %w", err)
		}
		for _, w := range warnings {
			cmd.PrintErrf("%s %s\n", color.New(color.FgYellow).Sprint("Warning:"), w)
		}
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		cmd.Print(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputs := map[string][]byte{
		"openapi.json": jsonData,
		"openapi.yaml": yamlData,
	}
	for _, name := range []string{"openapi.json", "openapi.yaml"} {
		path := filepath.Join(cfg.OutputDir, name)
		if err := os.WriteFile(path, outputs[name], 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.PrintErrf("Written: %s\n", path)
	}

	cmd.PrintErrf("%s %d paths, %d schemas\n",
		color.New(color.FgGreen).Sprint("Generated:"),
		len(doc.Paths), len(doc.Components.Schemas))

	return nil
}
