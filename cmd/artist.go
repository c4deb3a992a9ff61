package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"PlexFM/core/plex"

	"github.com/spf13/cobra"
)

var (
	artistName  string
	showPopular bool
	showTracks  bool
)

var artistCmd = &cobra.Command{
	Use:   "artist",
	Short: "查看艺术家及其专辑、音轨",
	Run: func(cmd *cobra.Command, args []string) {
		if artistName == "" {
			fmt.Println("请输入要查找的艺术家名称")
			os.Exit(1)
		}

		ctx := context.Background()
		client := plex.NewClient(cfg)

		sections, err := client.Sections(ctx)
		if err != nil {
			log.Fatalf("获取音乐库分区失败: %v", err)
		}
		if len(sections) == 0 {
			fmt.Println("服务器上没有音乐库分区")
			return
		}

		var artist *plex.Artist
		for _, section := range sections {
			e, err := section.Get(ctx, artistName, "artist", nil)
			if err != nil {
				log.Fatalf("检索艺术家失败: %v", err)
			}
			if a, ok := e.(*plex.Artist); ok {
				artist = a
				break
			}
		}
		if artist == nil {
			fmt.Printf("未找到艺术家: %s\n", artistName)
			return
		}

		fmt.Printf("%s (ratingKey=%d)\n", artist.Title, artist.RatingKey)
		if genres := artist.Genres(); len(genres) > 0 {
			names := make([]string, len(genres))
			for i, g := range genres {
				names[i] = g.Tag
			}
			fmt.Printf("流派: %s\n", strings.Join(names, ", "))
		}

		switch {
		case showPopular:
			tracks, err := artist.PopularTracks(ctx)
			if err != nil {
				log.Fatalf("获取热门音轨失败: %v", err)
			}
			fmt.Printf("\n热门音轨 (%d 首):\n", len(tracks))
			for i, t := range tracks {
				fmt.Printf("%d. %s [%s] 收听数: %d\n", i+1, t.Title, t.ParentTitle, t.RatingCount)
			}
		case showTracks:
			tracks, err := artist.Tracks(ctx, nil)
			if err != nil {
				log.Fatalf("获取音轨失败: %v", err)
			}
			fmt.Printf("\n全部音轨 (%d 首):\n", len(tracks))
			for i, t := range tracks {
				fmt.Printf("%d. %s - %s\n", i+1, t.ParentTitle, t.Title)
			}
		default:
			albums, err := artist.Albums(ctx, nil)
			if err != nil {
				log.Fatalf("获取专辑失败: %v", err)
			}
			fmt.Printf("\n专辑 (%d 张):\n", len(albums))
			for i, al := range albums {
				fmt.Printf("%d. %s (%d) 曲目数: %d\n", i+1, al.Title, al.Year, al.LeafCount)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(artistCmd)

	artistCmd.Flags().StringVarP(&artistName, "name", "n", "", "艺术家名称")
	artistCmd.Flags().BoolVarP(&showPopular, "popular", "p", false, "显示热门音轨")
	artistCmd.Flags().BoolVarP(&showTracks, "tracks", "t", false, "显示全部音轨")
}
