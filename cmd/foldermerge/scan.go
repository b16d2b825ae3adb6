// cmd/foldermerge/scan.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "Show the top-level folders and the extensions found under a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, root, args)
			if err != nil {
				return err
			}
			defer a.close(cmd)

			catalog := a.session.Catalog()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Root: %s\n", catalog.Root)
			fmt.Fprintf(out, "\nFolders (%d):\n", len(catalog.Folders))
			for _, f := range catalog.Folders {
				fmt.Fprintf(out, "  %s\n", f.Name)
			}
			fmt.Fprintf(out, "\nExtensions (%d):\n", len(catalog.Extensions))
			for _, e := range catalog.Extensions {
				fmt.Fprintf(out, "  %s\n", e.Ext)
			}
			return nil
		},
	}
}
