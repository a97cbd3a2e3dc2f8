package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediaguess",
	Short: "mediaguess cli",
	Long:  `mediaguess cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if _, err := os.Stat("config.yaml"); err == nil {
		viper.SetConfigFile("config.yaml")
	}

	viper.SetEnvPrefix("MEDIAGUESS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)

	viper.SetDefault("guess.fileType", "autodetect")
	viper.SetDefault("guess.facts", []string{"filename"})

	viper.SetDefault("library.dir", "")

	viper.SetDefault("scan.concurrency", 0)

	viper.SetDefault("index.filePath", "mediaguess.sqlite")

	// a bad file is tolerated here; commands surface the error when they
	// read the full configuration
	if viper.ConfigFileUsed() != "" {
		_ = viper.ReadInConfig()
	}

	// the logger singleton reads these before any command logs a line
	if os.Getenv("LOG_LEVEL") == "" {
		os.Setenv("LOG_LEVEL", viper.GetString("log.level"))
	}
	if os.Getenv("JSON_LOG") == "" && viper.GetBool("log.json") {
		os.Setenv("JSON_LOG", "1")
	}
}
