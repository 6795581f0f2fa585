package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/songbook/internal/errmsg"
	"github.com/llehouerou/songbook/internal/songs"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import songs from a tab-separated file",
		Long:  "Import reads name<TAB>album lines and inserts them in a single transaction.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpSongImport, err))
			}
			defer f.Close()

			list, err := parseImportFile(f)
			if err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpSongImport, args[0], err))
			}
			if len(list) == 0 {
				return errors.New(errmsg.FormatWith(errmsg.OpSongImport, args[0], errors.New("no songs in file")))
			}

			cat, err := openCatalog()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCatalogOpen, err))
			}
			defer cat.Close()

			if err := cat.Songs().Import(list); err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpSongImport, args[0], err))
			}

			log.Info().Int("count", len(list)).Str("file", args[0]).Msg("songs imported")
			fmt.Printf("imported %d songs\n", len(list))
			return nil
		},
	}
}

// parseImportFile reads tab-separated "name<TAB>album" lines. Blank
// lines and lines starting with '#' are skipped.
func parseImportFile(r io.Reader) ([]songs.Song, error) {
	scanner := bufio.NewScanner(r)

	var list []songs.Song
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, album, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected name<TAB>album", lineNo)
		}
		list = append(list, songs.Song{
			Name:  strings.TrimSpace(name),
			Album: strings.TrimSpace(album),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
