package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kasuboski/mediaguess/config"
	"github.com/kasuboski/mediaguess/pkg/index"
	indexSqlite "github.com/kasuboski/mediaguess/pkg/index/sqlite"
	"github.com/kasuboski/mediaguess/pkg/logger"
	"github.com/kasuboski/mediaguess/pkg/pagination"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	factsPage     int
	factsPageSize int
)

// listScansCmd lists the scans stored in the index
var listScansCmd = &cobra.Command{
	Use:   "scans",
	Short: "List scans stored in the index",
	Long:  `List scans stored in the index, most recent first`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		store, err := indexSqlite.New(ctx, cfg.Index.FilePath)
		if err != nil {
			log.Fatalf("failed to open index: %v", err)
		}
		defer store.Close()

		scans, err := store.ListScans(ctx)
		if err != nil {
			log.Fatal(err)
		}

		rows := make([]table.Row, 0, len(scans))
		for _, s := range scans {
			var finished string
			if s.FinishedAt != nil {
				finished = s.FinishedAt.Format(time.RFC3339)
			}
			rows = append(rows, table.Row{
				s.ID,
				s.Root,
				s.StartedAt.Format(time.RFC3339),
				finished,
				strconv.Itoa(int(s.Files)),
			})
		}

		renderTable(cmd.OutOrStdout(), table.Row{"ID", "Root", "Started", "Finished", "Files"}, rows, 5)
	},
}

// listFactsCmd lists the facts recorded for one scan
var listFactsCmd = &cobra.Command{
	Use:        "facts <scan-id>",
	Short:      "List the facts recorded for a scan",
	Long:       `List the facts recorded for a scan`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"scan id"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		store, err := indexSqlite.New(ctx, cfg.Index.FilePath)
		if err != nil {
			log.Fatalf("failed to open index: %v", err)
		}
		defer store.Close()

		scan, err := store.GetScan(ctx, args[0])
		if err != nil {
			if errors.Is(err, index.ErrNotFound) {
				log.Fatalf("no scan with id %s", args[0])
			}
			log.Fatal(err)
		}

		params := pagination.Params{Page: factsPage, PageSize: factsPageSize}
		offset, limit := params.OffsetLimit()

		facts, err := store.ListFacts(ctx, scan.ID, offset, limit)
		if err != nil {
			log.Fatal(err)
		}

		rows := make([]table.Row, 0, len(facts))
		for _, f := range facts {
			rows = append(rows, table.Row{
				f.Path,
				f.Property,
				f.Value,
				strconv.FormatFloat(f.Confidence, 'f', 2, 64),
			})
		}

		out := cmd.OutOrStdout()
		renderTable(out, table.Row{"File", "Property", "Value", "Confidence"}, rows, 4)

		if limit > 0 {
			count, err := store.CountFacts(ctx, scan.ID)
			if err != nil {
				log.Fatal(err)
			}
			meta := params.BuildMeta(count)
			fmt.Fprintf(out, "page %d of %d, %d facts\n", meta.Page, meta.TotalPages, meta.TotalItems)
		}
	},
}

func init() {
	listCmd.AddCommand(listScansCmd)
	listCmd.AddCommand(listFactsCmd)

	listFactsCmd.Flags().IntVar(&factsPage, "page", 1, "page to list when --page-size is set")
	listFactsCmd.Flags().IntVar(&factsPageSize, "page-size", 0, "facts per page, 0 lists everything")
}
