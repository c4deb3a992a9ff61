package model

// Media 描述一条音频流的编码信息，一个条目可能有多个版本
type Media struct {
	ID            int    `json:"id"`
	Duration      int    `json:"duration"` // 时长（毫秒）
	Bitrate       int    `json:"bitrate"`
	AudioChannels int    `json:"audioChannels"`
	AudioCodec    string `json:"audioCodec"`
	Container     string `json:"container"`
	Parts         []Part `json:"parts"`
}

// Part 描述媒体的一个物理分片（文件）
type Part struct {
	ID        int    `json:"id"`
	Key       string `json:"key"` // 下载/串流路径
	Duration  int    `json:"duration"`
	File      string `json:"file"` // 服务器上的文件路径
	Size      int64  `json:"size"`
	Container string `json:"container"`
}

// Chapter 音轨章节（如有声书）
type Chapter struct {
	ID    int    `json:"id"`
	Index int    `json:"index"`
	Start int    `json:"start"` // 起始偏移（毫秒）
	End   int    `json:"end"`   // 结束偏移（毫秒）
	Thumb string `json:"thumb"`
	Title string `json:"title"`
}
