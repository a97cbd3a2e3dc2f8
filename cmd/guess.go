package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kasuboski/mediaguess/config"
	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/guesser"
	mio "github.com/kasuboski/mediaguess/pkg/io"
	"github.com/kasuboski/mediaguess/pkg/logger"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	guessFileType string
	guessFacts    []string
	guessJSON     bool
)

type guessOutput struct {
	File  string       `json:"file"`
	Guess *guess.Guess `json:"guess"`
}

// guessCmd represents the guess command
var guessCmd = &cobra.Command{
	Use:   "guess <filename>...",
	Short: "Guess media metadata from file names",
	Long: `Guess media metadata from file names.

Each filename is matched against known patterns for series and movie titles,
episode numbering, release properties, languages, and dates. Hash facts such
as hash_md5 or hash_mpc read file contents and need the file on disk.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		fileType := cfg.Guess.FileType
		if guessFileType != "" {
			fileType = guessFileType
		}

		ft, err := guess.ParseFileType(fileType)
		if err != nil {
			log.Fatal(err)
		}

		facts := cfg.Guess.Facts
		if len(guessFacts) > 0 {
			facts = guessFacts
		}

		g := guesser.New(&mio.MediaFileSystem{})

		out := cmd.OutOrStdout()
		for _, filename := range args {
			result := g.GuessFileInfo(ctx, filename, ft, facts)

			if guessJSON {
				b, err := json.Marshal(guessOutput{File: filename, Guess: result})
				if err != nil {
					log.Fatalf("failed to marshal guess: %v", err)
				}
				fmt.Fprintln(out, string(b))
				continue
			}

			fmt.Fprintln(out, filename)
			renderTable(out, table.Row{"Property", "Value", "Confidence"}, guessRows(result), 3)
		}
	},
}

func guessRows(g *guess.Guess) []table.Row {
	rows := make([]table.Row, 0, g.Len())
	for _, key := range g.Keys() {
		v, _ := g.Value(key)
		rows = append(rows, table.Row{
			key,
			fmt.Sprint(v),
			strconv.FormatFloat(g.Confidence(key), 'f', 2, 64),
		})
	}
	return rows
}

func init() {
	rootCmd.AddCommand(guessCmd)

	guessCmd.Flags().StringVarP(&guessFileType, "filetype", "t", "", "filetype of the given files (autodetect, movie, episode, moviesubtitle, episodesubtitle)")
	guessCmd.Flags().StringArrayVarP(&guessFacts, "fact", "f", nil, "fact to guess, filename or hash_<alg> (repeatable)")
	guessCmd.Flags().BoolVar(&guessJSON, "json", false, "output guesses as JSON, one object per line")
}
