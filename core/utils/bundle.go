package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"path"
	"strings"
)

// BundleHash 计算条目guid对应的元数据散列。
// plex:// 形式的guid自带内容散列（路径末段的十六进制id），直接取用；
// 其余形式（旧版agent guid）对完整guid做sha1。
func BundleHash(guid string) string {
	if strings.HasPrefix(guid, "plex://") {
		if i := strings.LastIndex(guid, "/"); i >= 0 && isHex(guid[i+1:]) {
			return guid[i+1:]
		}
	}
	sum := sha1.Sum([]byte(guid))
	return hex.EncodeToString(sum[:])
}

// BundlePath 返回服务器数据目录下的元数据bundle路径:
// Metadata/<kind>/<散列首字符>/<散列其余部分>.bundle
func BundlePath(kind, guid string) string {
	if guid == "" {
		return ""
	}
	h := BundleHash(guid)
	return path.Join("Metadata", kind, h[:1], h[1:]+".bundle")
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
