package cmd

import (
	"strings"

	"github.com/kasuboski/mediaguess/pkg/hashfile"
	mio "github.com/kasuboski/mediaguess/pkg/io"
	"github.com/kasuboski/mediaguess/pkg/logger"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var hashAlgorithms []string

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash <file>...",
	Short: "Compute media hashes for files",
	Long: `Compute media hashes for files.

mpc is the 64 bit media player hash built from the first and last 64KiB of
the file, ed2k is an ed2k:// link, and everything else is a streaming digest
such as md5 or sha1.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		fileIO := &mio.MediaFileSystem{}

		var digestAlgs []string
		for _, alg := range hashAlgorithms {
			if alg == "mpc" || alg == "ed2k" {
				continue
			}
			if !hashfile.Supported(alg) {
				log.Fatalf("unsupported hash algorithm %q, supported: mpc, ed2k, %s", alg, strings.Join(hashfile.Algorithms(), ", "))
			}
			digestAlgs = append(digestAlgs, alg)
		}

		rows := make([]table.Row, 0, len(args)*len(hashAlgorithms))
		for _, path := range args {
			var digests map[string]string
			if len(digestAlgs) > 0 {
				var err error
				digests, err = hashfile.DigestFile(fileIO, path, digestAlgs)
				if err != nil {
					log.Warnf("failed to hash %s: %v", path, err)
				}
			}

			for _, alg := range hashAlgorithms {
				var value string
				var err error
				switch alg {
				case "mpc":
					value, err = hashfile.MpcHash(fileIO, path)
				case "ed2k":
					value, err = hashfile.Ed2kLink(fileIO, path)
				default:
					value = digests[alg]
				}
				if err != nil {
					log.Warnf("failed to compute %s for %s: %v", alg, path, err)
					continue
				}
				if value == "" {
					continue
				}
				rows = append(rows, table.Row{path, alg, value})
			}
		}

		renderTable(cmd.OutOrStdout(), table.Row{"File", "Algorithm", "Hash"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringSliceVar(&hashAlgorithms, "alg", []string{"mpc", "ed2k", "md5"}, "hash algorithms to compute (mpc, ed2k, or a digest like md5)")
}
