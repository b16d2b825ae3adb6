// cmd/foldermerge/list.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var sel selectionOptions

	cmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "List the files matching the selected folders and extensions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, root, args)
			if err != nil {
				return err
			}
			defer a.close(cmd)

			files := applySelection(a.session, sel)
			out := cmd.OutOrStdout()
			for _, f := range files {
				fmt.Fprintf(out, "[%s] %s\n", tern(f.Included, "x", " "), f.RelativePath)
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No files match the selection.")
			}
			return nil
		},
	}
	sel.register(cmd.Flags())
	return cmd
}
