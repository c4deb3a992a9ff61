package plex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"PlexFM/logger"
	"PlexFM/model"
)

// Entity 所有媒体库条目的公共接口。
// 具体类型由注册表根据(结构标签, 类型, Kind)选择。
type Entity interface {
	// Base 返回条目的公共基础部分
	Base() *Audio
	// load 从背后的Fragment填充直接属性。
	// 各类型的load按嵌入层次逐层委托，最具体的字段最后写入。
	load(f *Fragment)
}

// Audio 是artist/album/track共享的基础实体。
// 每个实例独占自己的背后Fragment与派生集合缓存，实例间没有共享可变状态。
type Audio struct {
	client   *Client
	frag     *Fragment
	self     Entity
	loadPath string
	full     bool
	memo     map[string]any

	RatingKey            int
	Key                  string
	GUID                 string
	Type                 string
	Title                string
	TitleSort            string
	Summary              string
	Index                int
	Thumb                string
	ThumbBlurHash        string
	Art                  string
	ArtBlurHash          string
	Distance             float64
	AddedAt              time.Time
	UpdatedAt            time.Time
	LastViewedAt         time.Time
	LastRatedAt          time.Time
	ViewCount            int
	UserRating           float64
	LibrarySectionID     int
	LibrarySectionKey    string
	LibrarySectionTitle  string
	MusicAnalysisVersion int
	ListType             string
}

// Base 返回自身，使Audio满足Entity的基础访问
func (a *Audio) Base() *Audio { return a }

// loadAudio 填充所有音频条目共有的属性
func (a *Audio) loadAudio(f *Fragment) {
	a.frag = f
	a.AddedAt = attrTime(f, "addedAt", "")
	a.Art = f.Attr("art")
	a.ArtBlurHash = f.Attr("artBlurHash")
	a.Distance = attrFloat(f, "distance")
	a.GUID = f.Attr("guid")
	a.Index = attrInt(f, "index")
	a.Key = f.Attr("key")
	a.LastRatedAt = attrTime(f, "lastRatedAt", "")
	a.LastViewedAt = attrTime(f, "lastViewedAt", "")
	a.LibrarySectionID = attrInt(f, "librarySectionID")
	a.LibrarySectionKey = f.Attr("librarySectionKey")
	a.LibrarySectionTitle = f.Attr("librarySectionTitle")
	a.ListType = "audio"
	a.MusicAnalysisVersion = attrInt(f, "musicAnalysisVersion")
	a.RatingKey = attrInt(f, "ratingKey")
	a.Summary = f.Attr("summary")
	a.Thumb = f.Attr("thumb")
	a.ThumbBlurHash = f.Attr("thumbBlurHash")
	a.Title = f.Attr("title")
	a.TitleSort = f.Attr("titleSort")
	if a.TitleSort == "" {
		a.TitleSort = a.Title
	}
	a.Type = f.Attr("type")
	a.UpdatedAt = attrTime(f, "updatedAt", "")
	a.UserRating = attrFloat(f, "userRating")
	a.ViewCount = attrInt(f, "viewCount")
}

// Fragment 返回当前背后的数据节点
func (a *Audio) Fragment() *Fragment { return a.frag }

// IsFull 判断实例是否已由其规范资源加载。
// 从父条目响应中嵌入构建的实例为局部实例。
func (a *Audio) IsFull() bool { return a.full }

// HasSonicAnalysis 条目是否已有声纹分析数据
func (a *Audio) HasSonicAnalysis() bool { return a.MusicAnalysisVersion == 1 }

// canonicalKey 返回实体自身规范资源的路径
func (a *Audio) canonicalKey() string {
	if a.RatingKey != 0 {
		return fmt.Sprintf("/library/metadata/%d", a.RatingKey)
	}
	return a.Key
}

// Reload 重新获取规范资源并用其替换背后的Fragment。
// ratingKey/key/type 在存根与完整表示之间必须稳定，不一致视为数据完整性错误。
// 成功后清空全部派生集合缓存，实例进入完整态。
func (a *Audio) Reload(ctx context.Context) error {
	key := a.canonicalKey()
	logger.Debug("[Reload] 获取规范资源", logger.String("key", key), logger.String("type", a.Type))

	frag, err := a.client.queryItem(ctx, key)
	if err != nil {
		return fmt.Errorf("获取规范资源失败: %w", err)
	}

	if rk := attrInt(frag, "ratingKey"); rk != a.RatingKey {
		return &IntegrityError{Field: "ratingKey", Stub: fmt.Sprint(a.RatingKey), Canonical: fmt.Sprint(rk)}
	}
	if typ := frag.Attr("type"); typ != a.Type {
		return &IntegrityError{Field: "type", Stub: a.Type, Canonical: typ}
	}
	if k := strings.TrimSuffix(frag.Attr("key"), "/children"); k != "" && a.Key != "" && k != a.Key {
		return &IntegrityError{Field: "key", Stub: a.Key, Canonical: k}
	}

	a.memo = nil
	a.loadPath = key
	a.self.load(frag)
	a.full = true
	return nil
}

// EnsureFull 保证实例处于完整态。完整态是终态:
// 已完整的实例不会再触发任何网络请求。
func (a *Audio) EnsureFull(ctx context.Context) error {
	if a.full {
		return nil
	}
	return a.Reload(ctx)
}

// attr 读取一个标量属性。属性在当前Fragment上缺失且实例仍是局部实例时，
// 先升级为完整实例再读取；升级后仍缺失则返回空串。
func (a *Audio) attr(ctx context.Context, name string) (string, error) {
	if v, ok := a.frag.Attrib[name]; ok {
		return v, nil
	}
	if !a.full {
		if err := a.Reload(ctx); err != nil {
			return "", err
		}
	}
	return a.frag.Attrib[name], nil
}

// URL 拼出带访问令牌的完整地址，part为空时返回空串
func (a *Audio) URL(part string) string {
	if part == "" {
		return ""
	}
	return a.client.urlWithToken(part)
}

// Section 返回拥有该条目的库分区句柄
func (a *Audio) Section() *Section {
	key := a.LibrarySectionKey
	if key == "" && a.LibrarySectionID != 0 {
		key = fmt.Sprintf("/library/sections/%d", a.LibrarySectionID)
	}
	return &Section{
		client: a.client,
		ID:     a.LibrarySectionID,
		Key:    key,
		Title:  a.LibrarySectionTitle,
	}
}

// SonicallySimilar 查询与该条目声学相似的条目。
// limit与maxDistance为可选项（零值表示未指定），按limit、maxDistance的顺序
// 序列化为查询参数。返回的条目与调用者是同一具体类型，由注册表多态决定。
func (a *Audio) SonicallySimilar(ctx context.Context, opt SimilarOptions) ([]Entity, error) {
	key := a.Key + "/nearest"
	var params []string
	if opt.Limit > 0 {
		params = append(params, fmt.Sprintf("limit=%d", opt.Limit))
	}
	if opt.MaxDistance > 0 {
		params = append(params, fmt.Sprintf("maxDistance=%s", formatFloat(opt.MaxDistance)))
	}
	if len(params) > 0 {
		key += "?" + strings.Join(params, "&")
	}
	return a.client.FetchItems(ctx, key, KindDefault, nil)
}

// SimilarOptions 声学相似查询的可选参数。
// Limit 限制返回数量；MaxDistance 限制归一化距离(0.0-1.0]。
type SimilarOptions struct {
	Limit       int
	MaxDistance float64
}

// Fields 被锁定的元数据字段
func (a *Audio) Fields() []model.Field {
	return memoized(a, "fields", func() []model.Field {
		return findItems(a.frag, "Field", buildField)
	})
}

// Images 条目的图片资源
func (a *Audio) Images() []model.Image {
	return memoized(a, "images", func() []model.Image {
		return findItems(a.frag, "Image", buildImage)
	})
}

// Moods 条目的情绪标签
func (a *Audio) Moods() []model.Mood {
	return memoized(a, "moods", func() []model.Mood {
		return findItems(a.frag, "Mood", buildMood)
	})
}

// memoized 按名字缓存一个派生集合的计算结果。
// 同一Fragment世代内至多计算一次；Reload替换Fragment时整体失效。
func memoized[T any](a *Audio, name string, compute func() T) T {
	if a.memo == nil {
		a.memo = make(map[string]any)
	}
	if v, ok := a.memo[name]; ok {
		return v.(T)
	}
	v := compute()
	a.memo[name] = v
	return v
}

// findItems 扫描Fragment中指定标签的子节点并逐个构建值对象
func findItems[T any](f *Fragment, tag string, build func(*Fragment) T) []T {
	children := f.find(tag)
	out := make([]T, 0, len(children))
	for _, child := range children {
		out = append(out, build(child))
	}
	return out
}

// formatFloat 以最短形式输出浮点参数（0.25而非0.250000）
func formatFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
}
