package model

// Notification 服务器通知通道推送的一条消息
type Notification struct {
	Type             string             `json:"type"` // playing / timeline / activity 等
	Size             int                `json:"size"`
	PlaySessionState []PlaySessionState `json:"PlaySessionStateNotification,omitempty"`
	Timeline         []TimelineEntry    `json:"TimelineEntry,omitempty"`
}

// PlaySessionState 播放状态变更通知
type PlaySessionState struct {
	SessionKey       string `json:"sessionKey"`
	ClientIdentifier string `json:"clientIdentifier"`
	RatingKey        string `json:"ratingKey"`
	Key              string `json:"key"`
	State            string `json:"state"` // playing / paused / stopped
	ViewOffset       int    `json:"viewOffset"`
}

// TimelineEntry 媒体库时间线变更通知
type TimelineEntry struct {
	Identifier string `json:"identifier"`
	ItemID     int    `json:"itemID"`
	SectionID  int    `json:"sectionID"`
	State      int    `json:"state"`
	Type       int    `json:"type"`
	Title      string `json:"title"`
}

// NotificationEnvelope 通知消息的外层包装
type NotificationEnvelope struct {
	Container Notification `json:"NotificationContainer"`
}
