package plex

import "time"

// history 历史视图能力: 一次播放事件附带的记录信息。
// 这些属性只出现在历史列表响应里。
type history struct {
	AccountID  int
	DeviceID   int
	HistoryKey string
	ViewedAt   time.Time
}

func (h *history) loadHistory(f *Fragment) {
	h.AccountID = attrInt(f, "accountID")
	h.DeviceID = attrInt(f, "deviceID")
	h.HistoryKey = f.Attr("historyKey")
	h.ViewedAt = attrTime(f, "viewedAt", "")
}

// TrackHistory 一条音轨播放历史，由历史列表入口构建。
// 与普通Track共享结构标签与类型，靠加载路径的Kind区分。
type TrackHistory struct {
	Track
	history
}

// load 先按普通音轨填充，再叠加历史字段
func (th *TrackHistory) load(f *Fragment) {
	th.Track.load(f)
	th.loadHistory(f)
}
