package plex

import "fmt"

// Kind 区分共享同一结构标签/类型的实体变体。
// 变体信息不在节点属性里，而由加载路径决定:
// 普通获取、会话列表、历史列表分别产生不同Kind。
type Kind int

const (
	KindDefault Kind = iota
	KindSession
	KindHistory
)

func (k Kind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindHistory:
		return "history"
	default:
		return "default"
	}
}

type registryKey struct {
	Tag  string
	Type string
	Kind Kind
}

type builder func() Entity

// registry 在包初始化阶段填充，此后只读。
var registry = map[registryKey]builder{}

func register(tag, typ string, kind Kind, b builder) {
	registry[registryKey{Tag: tag, Type: typ, Kind: kind}] = b
}

// resolve 返回与(结构标签, 类型, Kind)最匹配的实体构建器。
// 优先精确匹配Kind，否则回退到无Kind标记的基础类型；
// 两者都不存在时视为硬错误——注册表应当覆盖服务器会报告的所有组合。
func resolve(tag, typ string, kind Kind) (builder, error) {
	if b, ok := registry[registryKey{Tag: tag, Type: typ, Kind: kind}]; ok {
		return b, nil
	}
	if kind != KindDefault {
		if b, ok := registry[registryKey{Tag: tag, Type: typ, Kind: KindDefault}]; ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: tag=%s type=%s kind=%s", ErrUnregistered, tag, typ, kind)
}

func init() {
	register("Directory", "artist", KindDefault, func() Entity { return &Artist{} })
	register("Directory", "album", KindDefault, func() Entity { return &Album{} })
	register("Track", "track", KindDefault, func() Entity { return &Track{} })
	register("Track", "track", KindSession, func() Entity { return &TrackSession{} })
	register("Track", "track", KindHistory, func() Entity { return &TrackHistory{} })
}
