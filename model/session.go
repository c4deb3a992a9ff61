package model

// SessionUser 正在播放的账号信息
type SessionUser struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Thumb string `json:"thumb"`
}

// Player 正在播放的设备信息
type Player struct {
	Address             string `json:"address"`
	Device              string `json:"device"`
	MachineIdentifier   string `json:"machineIdentifier"`
	Platform            string `json:"platform"`
	PlatformVersion     string `json:"platformVersion"`
	Product             string `json:"product"`
	Profile             string `json:"profile"`
	RemotePublicAddress string `json:"remotePublicAddress"`
	State               string `json:"state"` // playing / paused / buffering
	Title               string `json:"title"`
	Version             string `json:"version"`
	Local               bool   `json:"local"`
}

// SessionInfo 会话的带宽统计
type SessionInfo struct {
	ID        string `json:"id"`
	Bandwidth int    `json:"bandwidth"`
	Location  string `json:"location"` // lan / wan
}

// TranscodeSession 转码会话信息，直接播放时为空
type TranscodeSession struct {
	Key           string  `json:"key"`
	Throttled     bool    `json:"throttled"`
	Complete      bool    `json:"complete"`
	Progress      float64 `json:"progress"`
	Speed         float64 `json:"speed"`
	AudioDecision string  `json:"audioDecision"`
	AudioCodec    string  `json:"audioCodec"`
	Container     string  `json:"container"`
}
