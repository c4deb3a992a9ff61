package plex

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"PlexFM/core/utils"
	"PlexFM/logger"
	"PlexFM/model"
)

// Artist 音乐库中的一位艺术家。
// 结构标签 Directory，类型 artist。
type Artist struct {
	Audio

	AlbumSort      int // 专辑排序策略: -1库默认 0最新在前 1最旧在前 2按名称
	AudienceRating float64
	Rating         float64
	Theme          string
}

// load 先填充共有属性，再覆盖艺术家特有字段
func (ar *Artist) load(f *Fragment) {
	ar.loadAudio(f)
	ar.AlbumSort = -1
	if f.Has("albumSort") {
		ar.AlbumSort = attrInt(f, "albumSort")
	}
	ar.AudienceRating = attrFloat(f, "audienceRating")
	// 容器类条目在存根里的key带/children后缀，规范化为自身资源路径
	ar.Key = strings.TrimSuffix(ar.Key, "/children")
	ar.Rating = attrFloat(f, "rating")
	ar.Theme = f.Attr("theme")
}

// Collections 合集标签
func (ar *Artist) Collections() []model.Collection {
	return memoized(&ar.Audio, "collections", func() []model.Collection {
		return findItems(ar.frag, "Collection", buildCollection)
	})
}

// Countries 国家标签
func (ar *Artist) Countries() []model.Country {
	return memoized(&ar.Audio, "countries", func() []model.Country {
		return findItems(ar.frag, "Country", buildCountry)
	})
}

// Genres 流派标签
func (ar *Artist) Genres() []model.Genre {
	return memoized(&ar.Audio, "genres", func() []model.Genre {
		return findItems(ar.frag, "Genre", buildGenre)
	})
}

// Guids 外部元数据标识
func (ar *Artist) Guids() []model.Guid {
	return memoized(&ar.Audio, "guids", func() []model.Guid {
		return findItems(ar.frag, "Guid", buildGuid)
	})
}

// Labels 唱片公司标签
func (ar *Artist) Labels() []model.Label {
	return memoized(&ar.Audio, "labels", func() []model.Label {
		return findItems(ar.frag, "Label", buildLabel)
	})
}

// Locations 艺术家在磁盘上的目录列表
func (ar *Artist) Locations() []string {
	return memoized(&ar.Audio, "locations", func() []string {
		return findItems(ar.frag, "Location", func(f *Fragment) string {
			return f.Attr("path")
		})
	})
}

// Similar 相似艺术家标签
func (ar *Artist) Similar() []model.Similar {
	return memoized(&ar.Audio, "similar", func() []model.Similar {
		return findItems(ar.frag, "Similar", buildSimilar)
	})
}

// Styles 风格标签
func (ar *Artist) Styles() []model.Style {
	return memoized(&ar.Audio, "styles", func() []model.Style {
		return findItems(ar.frag, "Style", buildStyle)
	})
}

// Album 返回该艺术家名下标题匹配的专辑，没有匹配时返回nil
func (ar *Artist) Album(ctx context.Context, title string) (*Album, error) {
	e, err := ar.Section().Get(ctx, title, "album", []Param{
		{Key: "artist.id", Value: strconv.Itoa(ar.RatingKey)},
	})
	if err != nil || e == nil {
		return nil, err
	}
	album, ok := e.(*Album)
	if !ok {
		return nil, fmt.Errorf("检索返回了意外的条目类型: %T", e)
	}
	return album, nil
}

// Albums 检索该艺术家的专辑。
// 调用方的检索参数原样保留，归属过滤(artist.id)在其后追加合并。
func (ar *Artist) Albums(ctx context.Context, params []Param) ([]*Album, error) {
	merged := append(append([]Param{}, params...), Param{Key: "artist.id", Value: strconv.Itoa(ar.RatingKey)})
	items, err := ar.Section().Search(ctx, "album", merged, "", 0)
	if err != nil {
		return nil, err
	}
	albums := make([]*Album, 0, len(items))
	for _, e := range items {
		if al, ok := e.(*Album); ok {
			albums = append(albums, al)
		}
	}
	return albums, nil
}

// TrackOptions 音轨查找参数。
// Title 与 Index 必须且只能提供其一；Index 查找时可附带 AlbumTitle 限定专辑。
type TrackOptions struct {
	Title      string
	AlbumTitle string
	Index      int
}

// Track 在该艺术家的全部音轨中查找一首。
// 标题匹配忽略大小写；按序号查找时可附带专辑标题。
// 两种方式都未提供时返回ErrMissingArgument，不发起任何请求。
func (ar *Artist) Track(ctx context.Context, opt TrackOptions) (*Track, error) {
	key := ar.Key + "/allLeaves"
	switch {
	case opt.Title != "":
		return fetchTrack(ctx, ar.client, key, Filters{"title__iexact": opt.Title})
	case opt.Index > 0:
		filters := Filters{"index": strconv.Itoa(opt.Index)}
		if opt.AlbumTitle != "" {
			filters["parentTitle__iexact"] = opt.AlbumTitle
		}
		return fetchTrack(ctx, ar.client, key, filters)
	}
	return nil, ErrMissingArgument
}

// Tracks 返回该艺术家任意深度下的全部音轨
func (ar *Artist) Tracks(ctx context.Context, filters Filters) ([]*Track, error) {
	key := ar.Key + "/allLeaves"
	return fetchTracks(ctx, ar.client, key, filters)
}

// Get 是Track的别名
func (ar *Artist) Get(ctx context.Context, opt TrackOptions) (*Track, error) {
	return ar.Track(ctx, opt)
}

// PopularTracks 返回该艺术家的热门音轨:
// 排除Compilation/Live子格式的专辑，按标题去重，要求有收听计数，
// 按收听计数降序，至多100条。
func (ar *Artist) PopularTracks(ctx context.Context) ([]*Track, error) {
	params := []Param{
		{Key: "album.subformat!", Value: "Compilation,Live"},
		{Key: "artist.id", Value: strconv.Itoa(ar.RatingKey)},
		{Key: "group", Value: "title"},
		{Key: "ratingCount>>", Value: "0"},
	}
	items, err := ar.Section().Search(ctx, "track", params, "ratingCount:desc", 100)
	if err != nil {
		return nil, err
	}
	tracks := make([]*Track, 0, len(items))
	for _, e := range items {
		if t, ok := e.(*Track); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks, nil
}

// Station 返回艺术家电台播放列表，服务器未生成电台时返回nil
func (ar *Artist) Station(ctx context.Context) (*model.Station, error) {
	root, err := ar.client.Query(ctx, ar.Key+"?includeStations=1")
	if err != nil {
		return nil, err
	}
	for _, child := range root.Children {
		if child.Tag != "Stations" {
			continue
		}
		for _, station := range child.Children {
			return &model.Station{
				RatingKey: station.Attr("ratingKey"),
				Key:       station.Attr("key"),
				Title:     station.Attr("title"),
			}, nil
		}
	}
	return nil, nil
}

// Download 下载该艺术家的全部音轨。
// subfolders为true时按专辑名分目录存放。返回已写入的文件路径。
func (ar *Artist) Download(ctx context.Context, dir string, subfolders bool) ([]string, error) {
	tracks, err := ar.Tracks(ctx, nil)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, t := range tracks {
		target := dir
		if subfolders {
			target = filepath.Join(dir, t.ParentTitle)
		}
		saved, err := t.Download(ctx, target)
		if err != nil {
			logger.Warn("[Download] 下载音轨失败", logger.String("title", t.Title), logger.ErrorField(err))
			continue
		}
		paths = append(paths, saved...)
	}
	return paths, nil
}

// MetadataDirectory 返回服务器数据目录下该艺术家元数据bundle的路径
func (ar *Artist) MetadataDirectory() string {
	return utils.BundlePath("Artists", ar.GUID)
}

func fetchTrack(ctx context.Context, c *Client, key string, filters Filters) (*Track, error) {
	e, err := c.FetchItem(ctx, key, KindDefault, filters)
	if err != nil || e == nil {
		return nil, err
	}
	t, ok := e.(*Track)
	if !ok {
		return nil, fmt.Errorf("检索返回了意外的条目类型: %T", e)
	}
	return t, nil
}

func fetchTracks(ctx context.Context, c *Client, key string, filters Filters) ([]*Track, error) {
	items, err := c.FetchItems(ctx, key, KindDefault, filters)
	if err != nil {
		return nil, err
	}
	tracks := make([]*Track, 0, len(items))
	for _, e := range items {
		if t, ok := e.(*Track); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks, nil
}
