// Package cmd implements the fbxinfo command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fbxscene/internal/config"
	"fbxscene/internal/logger"
	"fbxscene/pkg/fbx"
	"fbxscene/pkg/fbxdom"
)

var (
	configPath string
	logLevel   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fbxinfo",
	Short: "Inspect FBX 7.x binary documents",
	Long: `fbxinfo reads FBX 7.x binary files and prints their document
settings, mesh statistics, and raw node structure.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
}

// loadDocument parses one FBX file into a document.
func loadDocument(path string) (*fbxdom.Document, error) {
	logger.Log.Debug("parsing FBX file", zap.String("path", path))
	tree, err := fbx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logger.Log.Debug("parsed node tree",
		zap.Uint32("version", tree.Version()),
		zap.Int("nodes", tree.NodeCount()))
	return fbxdom.NewDocument(tree), nil
}
