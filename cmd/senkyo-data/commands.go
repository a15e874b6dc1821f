package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EmpoweredVote/senkyo-guide/internal/dataset"
	"github.com/EmpoweredVote/senkyo-guide/internal/db"
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondb"
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"github.com/EmpoweredVote/senkyo-guide/internal/generate"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	opts := generate.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Extract the document tree into generated JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rep, err := generate.Run(opts, log)
			printReport(cmd, rep)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.DocsDir, "docs", cfg.DocsDir, "election document tree")
	cmd.Flags().StringVar(&opts.OutDir, "out", cfg.DataDir, "generated-data directory")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail when validation reports issues")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "extract and validate without writing")
	return cmd
}

func importCmd() *cobra.Command {
	var (
		docsDir string
		dbURL   string
		wipe    bool
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Extract the document tree and upsert it into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}
			ds, rep, err := generate.Run(generate.Options{DocsDir: docsDir, Strict: strict, DryRun: true}, log)
			printReport(cmd, rep)
			if err != nil {
				return err
			}

			d, err := db.Connect(dbURL, logLevel == "debug")
			if err != nil {
				return err
			}
			if err := electiondb.Migrate(d); err != nil {
				return err
			}
			return electiondb.Import(d, ds, electiondb.ImportOptions{Wipe: wipe}, log)
		},
	}
	cmd.Flags().StringVar(&docsDir, "docs", cfg.DocsDir, "election document tree")
	cmd.Flags().StringVar(&dbURL, "database-url", cfg.DatabaseURL, "Postgres DSN")
	cmd.Flags().BoolVar(&wipe, "wipe", false, "DANGER: truncates senkyo tables before importing")
	cmd.Flags().BoolVar(&strict, "strict", false, "refuse to import when validation reports issues")
	return cmd
}

// showCmd prints one prefecture from the generated data in document form.
func showCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "show <prefecture-code>",
		Short: "Print a generated prefecture's districts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := dataset.OpenFileStore(dataDir, log)
			if err != nil {
				return err
			}
			p, err := store.GetPrefecture(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("prefecture %s: %w", args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderPrefecture(p))
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", cfg.DataDir, "generated-data directory")
	return cmd
}

func renderPrefecture(p electiondocs.Prefecture) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s（%s）\n", p.Name, p.BlockName)
	for _, d := range p.Districts {
		fmt.Fprintf(&b, "\n## 第%d区\n\n", d.Number)
		if len(d.Result2024.Candidates) > 0 {
			b.WriteString("### 2024年選挙結果\n\n")
			b.WriteString(electiondocs.FormatResult2024(d.Result2024))
		}
		if len(d.Candidates2026) > 0 {
			b.WriteString("\n### 2026年選挙の構図\n\n")
			for _, c := range d.Candidates2026 {
				b.WriteString(electiondocs.FormatCandidate2026Line(c) + "\n")
			}
		}
	}
	return b.String()
}

func printReport(cmd *cobra.Command, rep generate.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "blocks: %d  prefectures: %d  districts: %d\n", rep.Blocks, rep.Prefectures, rep.Districts)
	for _, s := range rep.Skipped {
		fmt.Fprintf(out, "skipped: %s\n", s)
	}
	for _, is := range rep.Issues {
		fmt.Fprintf(out, "issue: %s\n", is)
	}
}
