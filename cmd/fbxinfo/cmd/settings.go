package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fbxscene/internal/logger"
)

var settingsCmd = &cobra.Command{
	Use:   "settings <file.fbx>",
	Short: "Print the document's global settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		gs, err := doc.GlobalSettings()
		if err != nil {
			return err
		}

		fmt.Printf("FBX version:     %d\n", doc.Tree().Version())

		if sys, err := gs.AxisSystem(); err != nil {
			logger.Log.Warn("axis system unavailable", zap.Error(err))
		} else {
			fmt.Printf("Axis system:     %s\n", sys)
		}

		if orig, err := gs.OriginalUpAxis(); err != nil {
			logger.Log.Debug("original up axis unavailable", zap.Error(err))
		} else {
			fmt.Printf("Original up:     %s\n", orig)
		}

		if usf, err := gs.UnitScaleFactor(); err != nil {
			logger.Log.Warn("unit scale factor unavailable", zap.Error(err))
		} else {
			fmt.Printf("Unit scale:      %g cm\n", usf.UnitInCentimeters())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
