package cmd

import (
	"fmt"
	"os"

	"PlexFM/config"
	"PlexFM/logger"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "plexfm",
	Short: "PlexFM 是Plex音乐库的命令行客户端",
	Long:  `PlexFM 通过Plex服务器的接口浏览音乐库: 艺术家、专辑、音轨、播放会话与历史。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.InitLogger(logger.Config{
			Level:      cfg.LogLevel,
			OutputPath: cfg.LogPath,
			MaxSize:    cfg.LogMaxSize,
			MaxAge:     cfg.LogMaxAge,
			MaxBackups: 3,
			Compress:   true,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
