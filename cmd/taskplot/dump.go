package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ShayCichocki/taskplot/internal/config"
	"github.com/ShayCichocki/taskplot/internal/profile"
	"github.com/ShayCichocki/taskplot/pkg/models"
)

// dumpDocument is the YAML form printed by the dump command.
type dumpDocument struct {
	Header models.Header   `yaml:"header"`
	Lanes  int             `yaml:"lanes"`
	Span   float64         `yaml:"span"`
	Colors []dumpColor     `yaml:"colors"`
	Tasks  []models.Task   `yaml:"tasks"`
	Issues []profile.Issue `yaml:"issues,omitempty"`
}

type dumpColor struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

var dumpCmd = &cobra.Command{
	Use:   "dump <input-file>",
	Short: "Print a parsed profile as YAML",
	Long: `Parse a profiling file and print what taskplot sees: the header, the lane
count, the colour each task name gets and every task with its times in seconds.
Validation issues are listed rather than reported as errors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		p, err := profile.ParseFile(args[0])
		if err != nil {
			return err
		}

		colors, err := newAssigner(cfg)
		if err != nil {
			return err
		}

		doc := dumpDocument{
			Header: p.Header,
			Lanes:  p.Lanes(),
			Span:   p.Span(),
			Tasks:  p.Tasks,
			Issues: profile.Validate(p),
		}
		for _, name := range p.Names() {
			doc.Colors = append(doc.Colors, dumpColor{Name: name, Color: colors.Color(name).Hex()})
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	},
}
