package plex

import (
	"context"
	"fmt"
	"path/filepath"

	"PlexFM/core/utils"
	"PlexFM/logger"
	"PlexFM/model"
)

// Track 音乐库中的一首音轨。
// 结构标签 Track，类型 track。二级祖先引用: parentKey指向专辑，
// grandparentKey指向艺术家。
type Track struct {
	Audio
	playable

	AudienceRating       float64
	ChapterSource        string
	Duration             int // 时长（毫秒）
	GrandparentArt       string
	GrandparentGUID      string
	GrandparentKey       string
	GrandparentRatingKey int
	GrandparentTheme     string
	GrandparentThumb     string
	GrandparentTitle     string
	OriginalTitle        string // 音轨艺术家（与专辑艺术家不同时）
	ParentGUID           string
	ParentIndex          int // 碟号
	ParentKey            string
	ParentRatingKey      int
	ParentThumb          string
	ParentTitle          string
	PrimaryExtraKey      string
	Rating               float64
	RatingCount          int // 收听计数
	SkipCount            int
	SourceURI            string
	ViewOffset           int // 播放位置（毫秒）
	Year                 int
}

// load 依次委托共有属性、可播放能力，最后覆盖音轨特有字段
func (t *Track) load(f *Fragment) {
	t.loadAudio(f)
	t.loadPlayable(f)
	t.AudienceRating = attrFloat(f, "audienceRating")
	t.ChapterSource = f.Attr("chapterSource")
	t.Duration = attrInt(f, "duration")
	t.GrandparentArt = f.Attr("grandparentArt")
	t.GrandparentGUID = f.Attr("grandparentGuid")
	t.GrandparentKey = f.Attr("grandparentKey")
	t.GrandparentRatingKey = attrInt(f, "grandparentRatingKey")
	t.GrandparentTheme = f.Attr("grandparentTheme")
	t.GrandparentThumb = f.Attr("grandparentThumb")
	t.GrandparentTitle = f.Attr("grandparentTitle")
	t.OriginalTitle = f.Attr("originalTitle")
	t.ParentGUID = f.Attr("parentGuid")
	t.ParentIndex = attrInt(f, "parentIndex")
	t.ParentKey = f.Attr("parentKey")
	t.ParentRatingKey = attrInt(f, "parentRatingKey")
	t.ParentThumb = f.Attr("parentThumb")
	t.ParentTitle = f.Attr("parentTitle")
	t.PrimaryExtraKey = f.Attr("primaryExtraKey")
	t.Rating = attrFloat(f, "rating")
	t.RatingCount = attrInt(f, "ratingCount")
	t.SkipCount = attrInt(f, "skipCount")
	t.SourceURI = f.Attr("source")
	t.ViewOffset = attrInt(f, "viewOffset")
	t.Year = attrInt(f, "year")
}

// Chapters 音轨章节
func (t *Track) Chapters() []model.Chapter {
	return memoized(&t.Audio, "chapters", func() []model.Chapter {
		return findItems(t.frag, "Chapter", buildChapter)
	})
}

// Collections 合集标签
func (t *Track) Collections() []model.Collection {
	return memoized(&t.Audio, "collections", func() []model.Collection {
		return findItems(t.frag, "Collection", buildCollection)
	})
}

// Genres 流派标签
func (t *Track) Genres() []model.Genre {
	return memoized(&t.Audio, "genres", func() []model.Genre {
		return findItems(t.frag, "Genre", buildGenre)
	})
}

// Guids 外部元数据标识
func (t *Track) Guids() []model.Guid {
	return memoized(&t.Audio, "guids", func() []model.Guid {
		return findItems(t.frag, "Guid", buildGuid)
	})
}

// Labels 唱片公司标签
func (t *Track) Labels() []model.Label {
	return memoized(&t.Audio, "labels", func() []model.Label {
		return findItems(t.frag, "Label", buildLabel)
	})
}

// Media 音轨的媒体版本描述
func (t *Track) Media() []model.Media {
	return memoized(&t.Audio, "media", func() []model.Media {
		return findItems(t.frag, "Media", buildMedia)
	})
}

// Locations 音轨文件在服务器磁盘上的路径列表
func (t *Track) Locations() []string {
	var paths []string
	for _, m := range t.Media() {
		for _, part := range m.Parts {
			if part.File != "" {
				paths = append(paths, part.File)
			}
		}
	}
	return paths
}

// TrackNumber 返回曲目序号
func (t *Track) TrackNumber() int { return t.Index }

// Album 返回音轨所属的专辑
func (t *Track) Album(ctx context.Context) (*Album, error) {
	e, err := t.client.FetchItem(ctx, t.ParentKey, KindDefault, nil)
	if err != nil || e == nil {
		return nil, err
	}
	album, ok := e.(*Album)
	if !ok {
		return nil, fmt.Errorf("父条目不是专辑: %T", e)
	}
	return album, nil
}

// Artist 返回音轨所属的艺术家
func (t *Track) Artist(ctx context.Context) (*Artist, error) {
	e, err := t.client.FetchItem(ctx, t.GrandparentKey, KindDefault, nil)
	if err != nil || e == nil {
		return nil, err
	}
	artist, ok := e.(*Artist)
	if !ok {
		return nil, fmt.Errorf("祖先条目不是艺术家: %T", e)
	}
	return artist, nil
}

// SonicAdventure 计算从本音轨到目标音轨的声纹路径，委托给所属库分区
func (t *Track) SonicAdventure(ctx context.Context, to *Track) ([]*Track, error) {
	return t.Section().SonicAdventure(ctx, t, to)
}

// Download 下载音轨的全部媒体分片到指定目录，返回已写入的文件路径
func (t *Track) Download(ctx context.Context, dir string) ([]string, error) {
	var paths []string
	for _, m := range t.Media() {
		for _, part := range m.Parts {
			if part.Key == "" {
				continue
			}
			name := t.prettyFilename()
			if part.Container != "" {
				name += "." + part.Container
			}
			target := filepath.Join(dir, name)
			url := t.client.urlWithToken(part.Key + "?download=1")
			logger.Info("[Download] 下载音轨", logger.String("title", t.Title), logger.String("path", target))
			if err := utils.DownloadFile(ctx, url, target); err != nil {
				return paths, err
			}
			paths = append(paths, target)
		}
	}
	return paths, nil
}

// prettyFilename 生成下载用的文件名: 艺术家 - 专辑 - 序号 - 标题
func (t *Track) prettyFilename() string {
	return fmt.Sprintf("%s - %s - %02d - %s", t.GrandparentTitle, t.ParentTitle, t.TrackNumber(), t.Title)
}

// MetadataDirectory 返回元数据bundle路径。
// 音轨的bundle挂在其专辑的guid之下，而非自身guid。
func (t *Track) MetadataDirectory() string {
	return utils.BundlePath("Albums", t.ParentGUID)
}
