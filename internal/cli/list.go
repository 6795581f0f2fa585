package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/songbook/internal/errmsg"
	"github.com/llehouerou/songbook/internal/songs"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [album]",
		Short: "List songs, optionally restricted to one album",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCatalogOpen, err))
			}
			defer cat.Close()

			var list []songs.Song
			if len(args) == 1 {
				list, err = cat.Songs().InAlbum(args[0])
			} else {
				list, err = cat.Songs().All()
			}
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpSongList, err))
			}

			for _, song := range list {
				fmt.Printf("%d\t%s\t%s\n", song.ID, song.Name, song.Album)
			}
			return nil
		},
	}
}

func newAlbumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "albums",
		Short: "List distinct album names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCatalogOpen, err))
			}
			defer cat.Close()

			albums, err := cat.Songs().Albums()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpAlbumList, err))
			}

			for _, album := range albums {
				fmt.Println(album)
			}
			return nil
		},
	}
}
