package plex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"PlexFM/logger"
	"PlexFM/model"

	"github.com/gorilla/websocket"
)

// AlertListener 订阅服务器的通知通道（播放状态、时间线变更等）。
// Start建立连接并启动读循环，收到的每条通知交给回调处理；
// Stop关闭连接并等待读循环退出。
type AlertListener struct {
	client   *Client
	callback func(model.Notification)

	mu   sync.Mutex
	conn *websocket.Conn
	done chan struct{}
}

// NewAlertListener 创建通知监听器，callback不可为空
func (c *Client) NewAlertListener(callback func(model.Notification)) *AlertListener {
	return &AlertListener{
		client:   c,
		callback: callback,
	}
}

// endpoint 把服务器地址转换为通知通道的websocket地址
func (l *AlertListener) endpoint() (string, error) {
	u, err := url.Parse(l.client.baseURL)
	if err != nil {
		return "", fmt.Errorf("解析服务器地址失败: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/:/websockets/notifications"
	u.RawQuery = "X-Plex-Token=" + url.QueryEscape(l.client.token)
	return u.String(), nil
}

// Start 连接通知通道并开始接收
func (l *AlertListener) Start(ctx context.Context) error {
	endpoint, err := l.endpoint()
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		logger.Error("[AlertListener] 连接通知通道失败", logger.ErrorField(err))
		return fmt.Errorf("连接通知通道失败: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.done = make(chan struct{})
	l.mu.Unlock()

	logger.Info("[AlertListener] 已连接通知通道")
	go l.run(conn, l.done)
	return nil
}

func (l *AlertListener) run(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("[AlertListener] 连接异常断开", logger.ErrorField(err))
			}
			return
		}

		var envelope model.NotificationEnvelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			logger.Warn("[AlertListener] 解析通知失败", logger.ErrorField(err))
			continue
		}
		l.callback(envelope.Container)
	}
}

// Stop 关闭连接并等待读循环退出
func (l *AlertListener) Stop() {
	l.mu.Lock()
	conn, done := l.conn, l.done
	l.conn, l.done = nil, nil
	l.mu.Unlock()

	if conn == nil {
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()
	<-done
	logger.Info("[AlertListener] 已断开通知通道")
}
