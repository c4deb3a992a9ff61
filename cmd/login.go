package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"PlexFM/core/account"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
	showDevices   bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "登录plex.tv获取访问令牌",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		client := account.NewClient(cfg)

		if showDevices {
			devices, err := client.Devices(ctx)
			if err != nil {
				log.Fatalf("获取设备列表失败: %v", err)
			}
			fmt.Printf("已注册设备 (%d 台):\n", len(devices))
			for i, d := range devices {
				fmt.Printf("%d. %s (%s) 最近活跃: %s\n", i+1, d.Name, d.Product,
					d.LastSeenAt.Local().Format("2006-01-02 15:04"))
			}
			return
		}

		if loginUsername == "" || loginPassword == "" {
			fmt.Println("请提供账号和密码")
			os.Exit(1)
		}

		acct, err := client.SignIn(ctx, loginUsername, loginPassword)
		if err != nil {
			log.Fatalf("登录失败: %v", err)
		}

		fmt.Printf("登录成功: %s <%s>\n", acct.Username, acct.Email)
		fmt.Printf("访问令牌: %s\n", acct.AuthToken)
		fmt.Println("将令牌写入 PLEX_TOKEN 环境变量后即可访问服务器")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "plex.tv 账号")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "plex.tv 密码")
	loginCmd.Flags().BoolVarP(&showDevices, "devices", "d", false, "列出账号名下设备")
}
