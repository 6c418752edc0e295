package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	songTitle       string
	songArtist      string
	songSpotifyLink string
	songYouTubeLink string
)

func init() {
	songsAddCmd.Flags().StringVar(&songTitle, "title", "", "Song title (required)")
	songsAddCmd.Flags().StringVar(&songArtist, "artist", "", "Artist name")
	songsAddCmd.Flags().StringVar(&songSpotifyLink, "spotify", "", "Pasted Spotify track link")
	songsAddCmd.Flags().StringVar(&songYouTubeLink, "youtube", "", "Pasted YouTube video link")
	_ = songsAddCmd.MarkFlagRequired("title")
	songsAddCmd.MarkFlagsMutuallyExclusive("spotify", "youtube")

	songsCmd.AddCommand(songsAddCmd)
	rootCmd.AddCommand(songsCmd)
}

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "Manage guess-the-song cards",
}

var songsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a guess-the-song card from a streaming link",
	Long: `Add a guess-the-song card. Paste a Spotify or YouTube link in any of the
usual shapes; the track or video identifier is extracted automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		id, err := lib.QuizStore().AddSong(songTitle, songArtist, songSpotifyLink, songYouTubeLink)
		if err != nil {
			return fmt.Errorf("adding song: %w", err)
		}

		fmt.Printf("Added song card %d: %s\n", id, songTitle)
		return nil
	},
}
