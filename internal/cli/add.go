package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/songbook/internal/errmsg"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <album>",
		Short: "Add a song to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCatalogOpen, err))
			}
			defer cat.Close()

			song, err := cat.Songs().Create(args[0], args[1])
			if err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpSongCreate, args[0], err))
			}

			log.Debug().Int64("id", song.ID).Str("name", song.Name).Str("album", song.Album).Msg("song created")
			fmt.Printf("%d\t%s\t%s\n", song.ID, song.Name, song.Album)
			return nil
		},
	}
}
