package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"PlexFM/config"
	"PlexFM/logger"
	"PlexFM/model"

	"github.com/google/uuid"
)

// Client plex.tv 账号服务客户端。
// 与媒体服务器客户端独立: 账号服务走JSON接口，只负责令牌获取与设备管理。
type Client struct {
	baseURL    string
	identifier string
	product    string
	version    string
	token      string
	httpClient *http.Client
}

// NewClient 创建账号服务客户端
func NewClient(cfg *config.Config) *Client {
	identifier := cfg.ClientID
	if identifier == "" {
		identifier = uuid.NewString()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.AccountURL, "/"),
		identifier: identifier,
		product:    cfg.Product,
		version:    cfg.Version,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Token 返回当前令牌，登录成功后会被刷新
func (c *Client) Token() string { return c.token }

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Plex-Client-Identifier", c.identifier)
	req.Header.Set("X-Plex-Product", c.product)
	req.Header.Set("X-Plex-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("X-Plex-Token", c.token)
	}
}

// SignIn 用账号密码登录，成功后保存并返回带鉴权令牌的账号信息
func (c *Client) SignIn(ctx context.Context, username, password string) (*model.Account, error) {
	form := url.Values{}
	form.Set("login", username)
	form.Set("password", password)

	endpoint := c.baseURL + "/api/v2/users/signin"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("创建登录请求失败: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	logger.Info("[SignIn] 登录账号服务", logger.String("username", username))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("[SignIn] 请求失败", logger.ErrorField(err))
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("账号或密码错误")
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Error("[SignIn] 服务器返回错误状态码", logger.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("服务器返回错误状态码: %d", resp.StatusCode)
	}

	var acct model.Account
	if err := json.NewDecoder(resp.Body).Decode(&acct); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}
	c.token = acct.AuthToken
	logger.Info("[SignIn] 登录成功", logger.String("username", acct.Username))
	return &acct, nil
}

// Ping 检查令牌有效性并刷新其活跃时间
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v2/ping", nil)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("令牌无效，状态码: %d", resp.StatusCode)
	}
	return nil
}

// Devices 列出账号名下注册的设备
func (c *Client) Devices(ctx context.Context) ([]model.Device, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/devices.json", nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("[Devices] 请求失败", logger.ErrorField(err))
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("服务器返回错误状态码: %d", resp.StatusCode)
	}

	var devices []model.Device
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}
	logger.Info("[Devices] 获取设备列表完成", logger.Int("count", len(devices)))
	return devices, nil
}
