package plex

import "PlexFM/model"

// session 会话视图能力: 正在播放的条目附带的会话信息。
// 这些信息来自会话列表响应的子节点与属性，普通条目上不存在。
type session struct {
	Live       bool
	SessionKey int

	User             model.SessionUser
	Player           model.Player
	Session          model.SessionInfo
	TranscodeSession model.TranscodeSession
}

func (s *session) loadSession(f *Fragment) {
	s.Live = attrBool(f, "live")
	s.SessionKey = attrInt(f, "sessionKey")
	if users := f.find("User"); len(users) > 0 {
		s.User = buildSessionUser(users[0])
	}
	if players := f.find("Player"); len(players) > 0 {
		s.Player = buildPlayer(players[0])
	}
	if infos := f.find("Session"); len(infos) > 0 {
		s.Session = buildSessionInfo(infos[0])
	}
	if ts := f.find("TranscodeSession"); len(ts) > 0 {
		s.TranscodeSession = buildTranscodeSession(ts[0])
	}
}

// TrackSession 正在播放中的一首音轨，由会话列表入口构建。
// 与普通Track共享结构标签与类型，靠加载路径的Kind区分。
type TrackSession struct {
	Track
	session
}

// load 先按普通音轨填充，再叠加会话字段
func (ts *TrackSession) load(f *Fragment) {
	ts.Track.load(f)
	ts.loadSession(f)
}
