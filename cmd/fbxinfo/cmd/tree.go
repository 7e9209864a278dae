package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fbxscene/pkg/fbx"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file.fbx>",
	Short: "Dump the raw node tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		for _, node := range doc.Tree().Root().Children {
			dumpNode(node, 0)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func dumpNode(node *fbx.Node, depth int) {
	if cfg.Dump.MaxDepth > 0 && depth >= cfg.Dump.MaxDepth {
		return
	}

	attrs := make([]string, 0, len(node.Attributes))
	for i, a := range node.Attributes {
		if cfg.Dump.MaxAttrs > 0 && i >= cfg.Dump.MaxAttrs {
			attrs = append(attrs, fmt.Sprintf("... %d more", len(node.Attributes)-i))
			break
		}
		attrs = append(attrs, a.String())
	}

	indent := strings.Repeat("  ", depth)
	if len(attrs) > 0 {
		fmt.Printf("%s%s: %s\n", indent, node.Name, strings.Join(attrs, ", "))
	} else {
		fmt.Printf("%s%s\n", indent, node.Name)
	}

	for _, child := range node.Children {
		dumpNode(child, depth+1)
	}
}
