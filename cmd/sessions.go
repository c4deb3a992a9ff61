package cmd

import (
	"context"
	"fmt"
	"log"

	"PlexFM/core/plex"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "查看正在播放的音轨会话",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		client := plex.NewClient(cfg)

		sessions, err := client.Sessions(ctx)
		if err != nil {
			log.Fatalf("获取会话列表失败: %v", err)
		}
		if len(sessions) == 0 {
			fmt.Println("当前没有正在播放的音轨")
			return
		}

		fmt.Printf("正在播放 (%d 个会话):\n", len(sessions))
		for i, s := range sessions {
			fmt.Printf("%d. %s - %s [%s]\n", i+1, s.GrandparentTitle, s.Title, s.ParentTitle)
			fmt.Printf("   用户: %s 设备: %s 状态: %s\n", s.User.Title, s.Player.Product, s.Player.State)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
