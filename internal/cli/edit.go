package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llehouerou/songbook/internal/errmsg"
)

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a song",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid song id %q", args[0])
			}

			cat, err := openCatalog()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCatalogOpen, err))
			}
			defer cat.Close()

			if err := cat.Songs().Rename(id, args[1]); err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpSongRename, args[0], err))
			}
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid song id %q", args[0])
			}

			cat, err := openCatalog()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCatalogOpen, err))
			}
			defer cat.Close()

			if err := cat.Songs().Delete(id); err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpSongDelete, args[0], err))
			}
			return nil
		},
	}
}
