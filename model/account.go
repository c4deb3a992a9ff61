package model

import "time"

// Account plex.tv 账号信息
type Account struct {
	ID        int    `json:"id"`
	UUID      string `json:"uuid"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Thumb     string `json:"thumb"`
	AuthToken string `json:"authToken"`
	HomeAdmin bool   `json:"homeAdmin"`
}

// Device 账号名下注册的设备
type Device struct {
	Name             string    `json:"name"`
	Product          string    `json:"product"`
	ProductVersion   string    `json:"productVersion"`
	Platform         string    `json:"platform"`
	ClientIdentifier string    `json:"clientIdentifier"`
	CreatedAt        time.Time `json:"createdAt"`
	LastSeenAt       time.Time `json:"lastSeenAt"`
	PublicAddress    string    `json:"publicAddress"`
}
