package model

// 媒体标签值对象，由条目响应的子节点构建。
// 各类型字段相同，但在接口上保持独立类型以区分语义。

// Genre 流派标签
type Genre struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Style 风格标签
type Style struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Mood 情绪标签
type Mood struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Label 唱片公司标签
type Label struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Collection 合集标签
type Collection struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Country 国家标签
type Country struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Similar 相似艺术家标签
type Similar struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Format 专辑格式标签，例如 Vinyl / CD
type Format struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Subformat 专辑子格式标签，例如 Compilation / Live
type Subformat struct {
	ID     int    `json:"id"`
	Filter string `json:"filter"`
	Tag    string `json:"tag"`
}

// Guid 外部元数据源标识，例如 mbid://...
type Guid struct {
	ID string `json:"id"`
}

// Field 被锁定的元数据字段
type Field struct {
	Locked bool   `json:"locked"`
	Name   string `json:"name"`
}

// Image 条目的图片资源
type Image struct {
	Alt  string `json:"alt"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Station 电台播放列表的引用
type Station struct {
	RatingKey string `json:"ratingKey"`
	Key       string `json:"key"`
	Title     string `json:"title"`
}
