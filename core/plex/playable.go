package plex

// playable 可播放条目的能力: 播放列表/播放队列中的定位信息，
// 以及基于媒体分片的串流与下载支持。目前只有音轨具备该能力。
type playable struct {
	PlaylistItemID  int
	PlayQueueItemID int
}

func (p *playable) loadPlayable(f *Fragment) {
	p.PlaylistItemID = attrInt(f, "playlistItemID")
	p.PlayQueueItemID = attrInt(f, "playQueueItemID")
}
