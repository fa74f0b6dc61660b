package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"beleg/internal/project"
	"beleg/internal/vfs"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [directory]",
	Short: "Print the scanned layout of a Beleg project",
	Long: `Scan walks a project directory and prints every node with its
classification. Without an argument it scans the enclosing project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	var root string
	if len(args) == 1 {
		root = args[0]
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir, ok, err := project.FindProjectRoot(cwd)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no %s found from %s upwards; pass a directory", project.ManifestName, cwd)
		}
		root = dir
	}

	tree, err := vfs.Scan(root)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	printNode(out, tree, tree.Root(), 0)

	if entryID, ok := tree.EntryFile(tree.Root()); ok {
		entry, _ := tree.ProjectPath(entryID)
		fmt.Fprintf(out, "\nentry: %s\n", entry)
	}
	return nil
}

func printNode(out io.Writer, tree *vfs.Tree, id vfs.NodeID, depth int) {
	node := tree.Node(id)
	indent := strings.Repeat("  ", depth)
	switch node.Kind() {
	case vfs.NodeDir:
		fmt.Fprintf(out, "%s%s/  [%s]\n", indent, node.Name, node.Dir().Kind)
		children, _ := tree.Children(id)
		for _, childID := range children {
			printNode(out, tree, childID, depth+1)
		}
	case vfs.NodeFile:
		fmt.Fprintf(out, "%s%s  [%s]\n", indent, node.Name, node.File().Kind)
	}
}
