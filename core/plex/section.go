package plex

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"PlexFM/logger"
)

// Section 库分区句柄，承载分区级的检索与图路径操作。
// 由条目的librarySection弱引用解析而来，不拥有条目。
type Section struct {
	client *Client
	ID     int
	Key    string
	Title  string
	UUID   string
}

// Param 一个有序的检索参数。检索参数按插入顺序序列化，
// 顺序是与服务器的契约的一部分，不能使用无序的url.Values。
type Param struct {
	Key   string
	Value string
}

// 服务器的条目类型编码
const (
	typeCodeArtist = 8
	typeCodeAlbum  = 9
	typeCodeTrack  = 10
)

func typeCode(libtype string) int {
	switch libtype {
	case "artist":
		return typeCodeArtist
	case "album":
		return typeCodeAlbum
	case "track":
		return typeCodeTrack
	}
	return 0
}

// Search 在分区内检索条目。
// libtype限定条目类型；params按给定顺序拼入查询；sort与limit可为零值表示不限制。
func (s *Section) Search(ctx context.Context, libtype string, params []Param, sort string, limit int) ([]Entity, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s/all?type=%d", s.Key, typeCode(libtype))
	for _, p := range params {
		fmt.Fprintf(&sb, "&%s=%s", p.Key, url.QueryEscape(p.Value))
	}
	if sort != "" {
		fmt.Fprintf(&sb, "&sort=%s", url.QueryEscape(sort))
	}
	if limit > 0 {
		fmt.Fprintf(&sb, "&limit=%d", limit)
	}

	key := sb.String()
	logger.Debug("[Search] 分区检索", logger.String("section", s.Title), logger.String("key", key))
	return s.client.FetchItems(ctx, key, KindDefault, nil)
}

// Get 返回分区内标题匹配（忽略大小写）的第一个条目，没有匹配时返回nil
func (s *Section) Get(ctx context.Context, title, libtype string, params []Param) (Entity, error) {
	items, err := s.Search(ctx, libtype, append(params, Param{Key: "title", Value: title}), "", 0)
	if err != nil {
		return nil, err
	}
	for _, e := range items {
		if strings.EqualFold(e.Base().Title, title) {
			return e, nil
		}
	}
	return nil, nil
}

// SonicAdventure 计算分区声纹图上从一首音轨到另一首的路径
func (s *Section) SonicAdventure(ctx context.Context, from, to *Track) ([]*Track, error) {
	key := fmt.Sprintf("/library/sections/%d/computePath?startID=%d&endID=%d", s.ID, from.RatingKey, to.RatingKey)
	items, err := s.client.FetchItems(ctx, key, KindDefault, nil)
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
