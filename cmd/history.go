package cmd

import (
	"context"
	"fmt"
	"log"

	"PlexFM/core/plex"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看音轨播放历史",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		client := plex.NewClient(cfg)

		entries, err := client.History(ctx, historyLimit)
		if err != nil {
			log.Fatalf("获取播放历史失败: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println("没有播放历史")
			return
		}

		fmt.Printf("播放历史 (%d 条):\n", len(entries))
		for i, h := range entries {
			fmt.Printf("%d. %s - %s  %s\n", i+1, h.GrandparentTitle, h.Title,
				h.ViewedAt.Local().Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "返回条数上限")
}
