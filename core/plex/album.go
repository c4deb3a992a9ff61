package plex

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"PlexFM/core/utils"
	"PlexFM/model"
)

// Album 音乐库中的一张专辑。
// 结构标签 Directory，类型 album。父引用三元组指向所属艺术家。
type Album struct {
	Audio

	AudienceRating          float64
	LeafCount               int // 专辑内条目数
	LoudnessAnalysisVersion int
	OriginallyAvailableAt   time.Time // 发行日期
	ParentGUID              string
	ParentKey               string
	ParentRatingKey         int
	ParentTheme             string
	ParentThumb             string
	ParentTitle             string
	Rating                  float64
	ViewedLeafCount         int // 已播放条目数
	Year                    int
}

// load 先填充共有属性，再覆盖专辑特有字段
func (al *Album) load(f *Fragment) {
	al.loadAudio(f)
	al.AudienceRating = attrFloat(f, "audienceRating")
	// 容器类条目在存根里的key带/children后缀，规范化为自身资源路径
	al.Key = strings.TrimSuffix(al.Key, "/children")
	al.LeafCount = attrInt(f, "leafCount")
	al.LoudnessAnalysisVersion = attrInt(f, "loudnessAnalysisVersion")
	al.OriginallyAvailableAt = attrTime(f, "originallyAvailableAt", "2006-01-02")
	al.ParentGUID = f.Attr("parentGuid")
	al.ParentKey = f.Attr("parentKey")
	al.ParentRatingKey = attrInt(f, "parentRatingKey")
	al.ParentTheme = f.Attr("parentTheme")
	al.ParentThumb = f.Attr("parentThumb")
	al.ParentTitle = f.Attr("parentTitle")
	al.Rating = attrFloat(f, "rating")
	al.ViewedLeafCount = attrInt(f, "viewedLeafCount")
	al.Year = attrInt(f, "year")
}

// Studio 返回发行公司。存根上通常缺失该属性，
// 此时会透明地升级为完整实例后再读取。
func (al *Album) Studio(ctx context.Context) (string, error) {
	return al.attr(ctx, "studio")
}

// Collections 合集标签
func (al *Album) Collections() []model.Collection {
	return memoized(&al.Audio, "collections", func() []model.Collection {
		return findItems(al.frag, "Collection", buildCollection)
	})
}

// Formats 格式标签
func (al *Album) Formats() []model.Format {
	return memoized(&al.Audio, "formats", func() []model.Format {
		return findItems(al.frag, "Format", buildFormat)
	})
}

// Genres 流派标签
func (al *Album) Genres() []model.Genre {
	return memoized(&al.Audio, "genres", func() []model.Genre {
		return findItems(al.frag, "Genre", buildGenre)
	})
}

// Guids 外部元数据标识
func (al *Album) Guids() []model.Guid {
	return memoized(&al.Audio, "guids", func() []model.Guid {
		return findItems(al.frag, "Guid", buildGuid)
	})
}

// Labels 唱片公司标签
func (al *Album) Labels() []model.Label {
	return memoized(&al.Audio, "labels", func() []model.Label {
		return findItems(al.frag, "Label", buildLabel)
	})
}

// Styles 风格标签
func (al *Album) Styles() []model.Style {
	return memoized(&al.Audio, "styles", func() []model.Style {
		return findItems(al.frag, "Style", buildStyle)
	})
}

// Subformats 子格式标签
func (al *Album) Subformats() []model.Subformat {
	return memoized(&al.Audio, "subformats", func() []model.Subformat {
		return findItems(al.frag, "Subformat", buildSubformat)
	})
}

// Track 在专辑内查找一首音轨。
// 标题匹配忽略大小写；或按曲目序号查找。
// 两种方式都未提供时返回ErrMissingArgument，不发起任何请求。
func (al *Album) Track(ctx context.Context, opt TrackOptions) (*Track, error) {
	key := al.Key + "/children"
	switch {
	case opt.Title != "":
		return fetchTrack(ctx, al.client, key, Filters{"title__iexact": opt.Title})
	case opt.Index > 0:
		return fetchTrack(ctx, al.client, key, Filters{
			"parentTitle__iexact": al.Title,
			"index":               strconv.Itoa(opt.Index),
		})
	}
	return nil, ErrMissingArgument
}

// Tracks 返回专辑内的全部音轨
func (al *Album) Tracks(ctx context.Context, filters Filters) ([]*Track, error) {
	return fetchTracks(ctx, al.client, al.Key+"/children", filters)
}

// Get 是Track的别名
func (al *Album) Get(ctx context.Context, opt TrackOptions) (*Track, error) {
	return al.Track(ctx, opt)
}

// Artist 返回专辑所属的艺术家
func (al *Album) Artist(ctx context.Context) (*Artist, error) {
	e, err := al.client.FetchItem(ctx, al.ParentKey, KindDefault, nil)
	if err != nil || e == nil {
		return nil, err
	}
	artist, ok := e.(*Artist)
	if !ok {
		return nil, fmt.Errorf("父条目不是艺术家: %T", e)
	}
	return artist, nil
}

// Download 下载专辑内的全部音轨，返回已写入的文件路径
func (al *Album) Download(ctx context.Context, dir string) ([]string, error) {
	tracks, err := al.Tracks(ctx, nil)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, t := range tracks {
		saved, err := t.Download(ctx, dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, saved...)
	}
	return paths, nil
}

// MetadataDirectory 返回服务器数据目录下该专辑元数据bundle的路径
func (al *Album) MetadataDirectory() string {
	return utils.BundlePath("Albums", al.GUID)
}
