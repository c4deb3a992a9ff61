package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"PlexFM/core/plex"
	"PlexFM/model"

	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "订阅服务器通知（播放状态变更等）",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		client := plex.NewClient(cfg)

		listener := client.NewAlertListener(func(n model.Notification) {
			switch n.Type {
			case "playing":
				for _, state := range n.PlaySessionState {
					fmt.Printf("[playing] ratingKey=%s state=%s offset=%dms\n",
						state.RatingKey, state.State, state.ViewOffset)
				}
			default:
				fmt.Printf("[%s] size=%d\n", n.Type, n.Size)
			}
		})

		if err := listener.Start(ctx); err != nil {
			log.Fatalf("连接通知通道失败: %v", err)
		}
		fmt.Println("已连接，按 Ctrl+C 退出")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		listener.Stop()
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
