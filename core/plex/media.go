package plex

import "PlexFM/model"

// 媒体标签与媒体描述值对象的构建函数。
// 派生集合层通过 findItems 扫描子节点并逐个调用这些函数。

func buildGenre(f *Fragment) model.Genre {
	return model.Genre{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildStyle(f *Fragment) model.Style {
	return model.Style{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildMood(f *Fragment) model.Mood {
	return model.Mood{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildLabel(f *Fragment) model.Label {
	return model.Label{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildCollection(f *Fragment) model.Collection {
	return model.Collection{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildCountry(f *Fragment) model.Country {
	return model.Country{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildSimilar(f *Fragment) model.Similar {
	return model.Similar{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildFormat(f *Fragment) model.Format {
	return model.Format{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildSubformat(f *Fragment) model.Subformat {
	return model.Subformat{ID: attrInt(f, "id"), Filter: f.Attr("filter"), Tag: f.Attr("tag")}
}

func buildGuid(f *Fragment) model.Guid {
	return model.Guid{ID: f.Attr("id")}
}

func buildField(f *Fragment) model.Field {
	return model.Field{Locked: attrBool(f, "locked"), Name: f.Attr("name")}
}

func buildImage(f *Fragment) model.Image {
	return model.Image{Alt: f.Attr("alt"), Type: f.Attr("type"), URL: f.Attr("url")}
}

func buildChapter(f *Fragment) model.Chapter {
	return model.Chapter{
		ID:    attrInt(f, "id"),
		Index: attrInt(f, "index"),
		Start: attrInt(f, "startTimeOffset"),
		End:   attrInt(f, "endTimeOffset"),
		Thumb: f.Attr("thumb"),
		Title: f.Attr("tag"),
	}
}

func buildMedia(f *Fragment) model.Media {
	m := model.Media{
		ID:            attrInt(f, "id"),
		Duration:      attrInt(f, "duration"),
		Bitrate:       attrInt(f, "bitrate"),
		AudioChannels: attrInt(f, "audioChannels"),
		AudioCodec:    f.Attr("audioCodec"),
		Container:     f.Attr("container"),
	}
	m.Parts = findItems(f, "Part", buildPart)
	return m
}

func buildPart(f *Fragment) model.Part {
	return model.Part{
		ID:        attrInt(f, "id"),
		Key:       f.Attr("key"),
		Duration:  attrInt(f, "duration"),
		File:      f.Attr("file"),
		Size:      attrInt64(f, "size"),
		Container: f.Attr("container"),
	}
}

func buildSessionUser(f *Fragment) model.SessionUser {
	return model.SessionUser{ID: attrInt(f, "id"), Title: f.Attr("title"), Thumb: f.Attr("thumb")}
}

func buildPlayer(f *Fragment) model.Player {
	return model.Player{
		Address:             f.Attr("address"),
		Device:              f.Attr("device"),
		MachineIdentifier:   f.Attr("machineIdentifier"),
		Platform:            f.Attr("platform"),
		PlatformVersion:     f.Attr("platformVersion"),
		Product:             f.Attr("product"),
		Profile:             f.Attr("profile"),
		RemotePublicAddress: f.Attr("remotePublicAddress"),
		State:               f.Attr("state"),
		Title:               f.Attr("title"),
		Version:             f.Attr("version"),
		Local:               attrBool(f, "local"),
	}
}

func buildSessionInfo(f *Fragment) model.SessionInfo {
	return model.SessionInfo{
		ID:        f.Attr("id"),
		Bandwidth: attrInt(f, "bandwidth"),
		Location:  f.Attr("location"),
	}
}

func buildTranscodeSession(f *Fragment) model.TranscodeSession {
	return model.TranscodeSession{
		Key:           f.Attr("key"),
		Throttled:     attrBool(f, "throttled"),
		Complete:      attrBool(f, "complete"),
		Progress:      attrFloat(f, "progress"),
		Speed:         attrFloat(f, "speed"),
		AudioDecision: f.Attr("audioDecision"),
		AudioCodec:    f.Attr("audioCodec"),
		Container:     f.Attr("container"),
	}
}
