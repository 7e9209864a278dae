package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fbxscene/internal/logger"
)

var meshCmd = &cobra.Command{
	Use:   "mesh <file.fbx>",
	Short: "Print per-geometry mesh statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		geos := doc.Geometries()
		if len(geos) == 0 {
			fmt.Println("no geometry objects")
			return nil
		}

		for _, g := range geos {
			name := g.Name()
			if name == "" {
				name = fmt.Sprintf("#%d", g.ObjectID())
			}

			cp, err := g.ControlPoints()
			if err != nil {
				logger.Log.Warn("skipping geometry", zap.String("name", name), zap.Error(err))
				continue
			}
			pv, err := g.PolygonVertices()
			if err != nil {
				logger.Log.Warn("skipping geometry", zap.String("name", name), zap.Error(err))
				continue
			}
			tv := pv.Triangulate()

			fmt.Printf("%s:\n", name)
			fmt.Printf("  control points:   %d\n", cp.Len())
			fmt.Printf("  polygons:         %d\n", pv.PolygonCount())
			fmt.Printf("  polygon vertices: %d\n", pv.Len())
			fmt.Printf("  triangles:        %d\n", tv.TriangleCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(meshCmd)
}
