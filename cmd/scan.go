package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kasuboski/mediaguess/config"
	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/guesser"
	"github.com/kasuboski/mediaguess/pkg/index"
	indexSqlite "github.com/kasuboski/mediaguess/pkg/index/sqlite"
	mio "github.com/kasuboski/mediaguess/pkg/io"
	"github.com/kasuboski/mediaguess/pkg/library"
	"github.com/kasuboski/mediaguess/pkg/logger"
	"github.com/kasuboski/mediaguess/pkg/manager"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	scanFileType    string
	scanFacts       []string
	scanConcurrency int
	scanStore       bool
	scanJSON        bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Scan a media library and guess metadata for every file",
	Long: `Scan a media library directory and guess metadata for every video and
subtitle file found in it. With --store the scan and all guessed facts are
saved to the sqlite index.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		dir := cfg.Library.Dir
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			log.Fatal("no library directory given and library.dir is not configured")
		}

		fileType := cfg.Guess.FileType
		if scanFileType != "" {
			fileType = scanFileType
		}
		ft, err := guess.ParseFileType(fileType)
		if err != nil {
			log.Fatal(err)
		}

		facts := cfg.Guess.Facts
		if len(scanFacts) > 0 {
			facts = scanFacts
		}

		concurrency := cfg.Scan.Concurrency
		if scanConcurrency > 0 {
			concurrency = scanConcurrency
		}

		lib := library.New(
			library.FileSystem{
				Path: dir,
				FS:   os.DirFS(dir),
			},
			&mio.MediaFileSystem{},
		)

		var store index.Store
		if scanStore {
			store, err = indexSqlite.New(ctx, cfg.Index.FilePath)
			if err != nil {
				log.Fatalf("failed to open index: %v", err)
			}
			defer store.Close()
		}

		m := manager.New(lib, guesser.New(&mio.MediaFileSystem{}), store)

		res, err := m.Scan(ctx, manager.ScanOptions{
			Root:        dir,
			FileType:    ft,
			Facts:       facts,
			Concurrency: concurrency,
		})
		if err != nil {
			log.Fatal(err)
		}

		out := cmd.OutOrStdout()
		if scanJSON {
			b, err := json.Marshal(res)
			if err != nil {
				log.Fatalf("failed to marshal scan result: %v", err)
			}
			fmt.Fprintln(out, string(b))
			return
		}

		renderTable(out, table.Row{"File", "Size", "Type", "Title", "Episode", "Year"}, scanRows(res), 2)
		fmt.Fprintf(out, "scanned %d files in %s\n", len(res.Files), res.Finished.Sub(res.Started).Round(time.Millisecond))
	},
}

func scanRows(res *manager.ScanResult) []table.Row {
	rows := make([]table.Row, 0, len(res.Files))
	for _, f := range res.Files {
		g := f.Guess

		typ, _ := g.Str(guess.KeyType)

		title, _ := g.Str(guess.KeyTitle)
		if series, ok := g.Str(guess.KeySeries); ok {
			title = series
		}

		var episode string
		season, hasSeason := g.Int(guess.KeySeason)
		number, hasNumber := g.Int(guess.KeyEpisodeNumber)
		switch {
		case hasSeason && hasNumber:
			episode = fmt.Sprintf("S%02dE%02d", season, number)
		case hasNumber:
			episode = fmt.Sprintf("E%02d", number)
		}

		var year string
		if y, ok := g.Int(guess.KeyYear); ok {
			year = strconv.Itoa(y)
		}

		rows = append(rows, table.Row{
			f.File.Path,
			humanize.IBytes(uint64(f.File.Size)),
			typ,
			title,
			episode,
			year,
		})
	}
	return rows
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanFileType, "filetype", "t", "", "filetype of every file in the library (autodetect, movie, episode, moviesubtitle, episodesubtitle)")
	scanCmd.Flags().StringArrayVarP(&scanFacts, "fact", "f", nil, "fact to guess per file, filename or hash_<alg> (repeatable)")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, "number of files to guess at once (default number of CPUs)")
	scanCmd.Flags().BoolVar(&scanStore, "store", false, "save the scan and its facts to the sqlite index")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the scan result as JSON")
}
