package plex

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PlexFM/config"
	"PlexFM/logger"

	"github.com/google/uuid"
)

// Client 是到Plex服务器的取数层。
// 所有实体的导航、升级与集合查询都通过它发起阻塞的单次往返；
// 超时与取消完全交给 http.Client 与调用方传入的 context。
type Client struct {
	baseURL    string
	token      string
	identifier string
	product    string
	version    string
	httpClient *http.Client
}

// NewClient 根据配置创建客户端。
// 配置未指定客户端标识时自动生成一个。
func NewClient(cfg *config.Config) *Client {
	identifier := cfg.ClientID
	if identifier == "" {
		identifier = uuid.NewString()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		identifier: identifier,
		product:    cfg.Product,
		version:    cfg.Version,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Identifier 返回客户端标识
func (c *Client) Identifier() string { return c.identifier }

// url 拼出完整请求地址
func (c *Client) url(path string) string {
	return c.baseURL + path
}

// urlWithToken 拼出带访问令牌的完整地址，用于下载与图片资源
func (c *Client) urlWithToken(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return c.url(path) + sep + "X-Plex-Token=" + c.token
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("X-Plex-Client-Identifier", c.identifier)
	req.Header.Set("X-Plex-Product", c.product)
	req.Header.Set("X-Plex-Version", c.version)
	req.Header.Set("Accept", "application/xml")
	return req, nil
}

// Query 请求一个资源路径并解析MediaContainer根节点。
// 404返回内部的不存在哨兵，由上层翻译为缺失值。
func (c *Client) Query(ctx context.Context, path string) (*Fragment, error) {
	req, err := c.newRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("[Query] 请求失败", logger.String("path", path), logger.ErrorField(err))
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", errNotFound, path)
	}
	if resp.StatusCode != http.StatusOK {
		logger.Error("[Query] 服务器返回错误状态码", logger.String("path", path), logger.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("服务器返回错误状态码: %d", resp.StatusCode)
	}

	root, err := ParseContainer(resp.Body)
	if err != nil {
		logger.Error("[Query] 解析响应失败", logger.String("path", path), logger.ErrorField(err))
		return nil, err
	}
	return root, nil
}

// queryItem 请求单条资源，返回容器中的第一个子节点
func (c *Client) queryItem(ctx context.Context, key string) (*Fragment, error) {
	root, err := c.Query(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("%w: %s", errNotFound, key)
	}
	return root.Children[0], nil
}

// Filters 取数时的客户端侧过滤谓词。
// 键为属性名，可带 __iexact 后缀表示忽略大小写的精确匹配；默认精确匹配。
type Filters map[string]string

// matchFilters 判断节点是否满足全部过滤谓词
func matchFilters(f *Fragment, filters Filters) bool {
	for key, want := range filters {
		if name, ok := strings.CutSuffix(key, "__iexact"); ok {
			if !strings.EqualFold(f.Attr(name), want) {
				return false
			}
			continue
		}
		if f.Attr(key) != want {
			return false
		}
	}
	return true
}

// buildEntity 通过注册表分发构建一个实体。
// loadPath记录构建来源，用于识别局部实例: 实体自身的key与来源路径一致时才是完整实例。
func (c *Client) buildEntity(f *Fragment, loadPath string, kind Kind) (Entity, error) {
	b, err := resolve(f.Tag, f.Attr("type"), kind)
	if err != nil {
		return nil, err
	}
	e := b()
	base := e.Base()
	base.client = c
	base.self = e
	base.loadPath = loadPath
	e.load(f)
	base.full = base.Key != "" && base.Key == stripQuery(loadPath)
	return e, nil
}

// FetchItems 获取一个集合资源下满足过滤条件的全部实体。
// kind由调用入口决定（普通获取/会话列表/历史列表），与节点内容无关。
func (c *Client) FetchItems(ctx context.Context, key string, kind Kind, filters Filters) ([]Entity, error) {
	root, err := c.Query(ctx, key)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var out []Entity
	for _, child := range root.Children {
		if !matchFilters(child, filters) {
			continue
		}
		e, err := c.buildEntity(child, stripQuery(key), kind)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	logger.Debug("[FetchItems] 获取集合完成", logger.String("key", key), logger.Int("count", len(out)))
	return out, nil
}

// FetchItem 获取单条资源，没有匹配时返回nil而非错误
func (c *Client) FetchItem(ctx context.Context, key string, kind Kind, filters Filters) (Entity, error) {
	items, err := c.FetchItems(ctx, key, kind, filters)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// Sessions 列出当前正在播放的音轨会话
func (c *Client) Sessions(ctx context.Context) ([]*TrackSession, error) {
	items, err := c.FetchItems(ctx, "/status/sessions", KindSession, nil)
	if err != nil {
		return nil, err
	}
	sessions := make([]*TrackSession, 0, len(items))
	for _, e := range items {
		if s, ok := e.(*TrackSession); ok {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// History 列出播放历史。maxResults为0时不限制数量。
func (c *Client) History(ctx context.Context, maxResults int) ([]*TrackHistory, error) {
	key := "/status/sessions/history/all?sort=viewedAt:desc"
	items, err := c.FetchItems(ctx, key, KindHistory, nil)
	if err != nil {
		return nil, err
	}
	entries := make([]*TrackHistory, 0, len(items))
	for _, e := range items {
		if h, ok := e.(*TrackHistory); ok {
			entries = append(entries, h)
		}
		if maxResults > 0 && len(entries) >= maxResults {
			break
		}
	}
	return entries, nil
}

// Sections 列出服务器上的音乐库分区
func (c *Client) Sections(ctx context.Context) ([]*Section, error) {
	root, err := c.Query(ctx, "/library/sections")
	if err != nil {
		return nil, err
	}
	var sections []*Section
	for _, child := range root.Children {
		if child.Tag != "Directory" || child.Attr("type") != "artist" {
			continue
		}
		sections = append(sections, &Section{
			client: c,
			ID:     attrInt(child, "key"),
			Key:    fmt.Sprintf("/library/sections/%s", child.Attr("key")),
			Title:  child.Attr("title"),
			UUID:   child.Attr("uuid"),
		})
	}
	return sections, nil
}

// stripQuery 去掉路径中的查询参数，用于来源路径比较
func stripQuery(key string) string {
	if i := strings.Index(key, "?"); i >= 0 {
		return key[:i]
	}
	return key
}
