package plex

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Fragment 服务器响应中的一个XML节点，带属性并可嵌套子节点。
// 实体对象的全部属性都从其背后的Fragment读取。
type Fragment struct {
	Tag      string
	Attrib   map[string]string
	Children []*Fragment
}

// ParseContainer 解析一个MediaContainer响应，返回容器根节点。
func ParseContainer(r io.Reader) (*Fragment, error) {
	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("响应中没有找到根节点")
		}
		if err != nil {
			return nil, fmt.Errorf("解析响应失败: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseFragment(decoder, start)
		}
	}
}

func parseFragment(decoder *xml.Decoder, start xml.StartElement) (*Fragment, error) {
	frag := &Fragment{
		Tag:    start.Name.Local,
		Attrib: make(map[string]string, len(start.Attr)),
	}
	for _, attr := range start.Attr {
		frag.Attrib[attr.Name.Local] = attr.Value
	}

	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("解析节点 %s 失败: %w", frag.Tag, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseFragment(decoder, t)
			if err != nil {
				return nil, err
			}
			frag.Children = append(frag.Children, child)
		case xml.EndElement:
			return frag, nil
		}
	}
}

// Attr 返回属性值，属性不存在时返回空串。
func (f *Fragment) Attr(name string) string {
	return f.Attrib[name]
}

// Has 判断属性是否存在。
func (f *Fragment) Has(name string) bool {
	_, ok := f.Attrib[name]
	return ok
}

// find 返回指定标签的全部子节点。
func (f *Fragment) find(tag string) []*Fragment {
	var out []*Fragment
	for _, child := range f.Children {
		if child.Tag == tag {
			out = append(out, child)
		}
	}
	return out
}

// 以下为通用属性转换。属性缺失或格式错误时一律退化为零值，不产生错误。

func attrInt(f *Fragment, name string) int {
	v, err := strconv.Atoi(f.Attrib[name])
	if err != nil {
		return 0
	}
	return v
}

func attrInt64(f *Fragment, name string) int64 {
	v, err := strconv.ParseInt(f.Attrib[name], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func attrFloat(f *Fragment, name string) float64 {
	v, err := strconv.ParseFloat(f.Attrib[name], 64)
	if err != nil {
		return 0
	}
	return v
}

func attrBool(f *Fragment, name string) bool {
	switch f.Attrib[name] {
	case "1", "true":
		return true
	}
	return false
}

// attrTime 解析时间戳属性。layout为空时按Unix秒解析，
// 否则按给定格式解析（如专辑发行日期的 2006-01-02）。
// 解析失败返回零值时间。
func attrTime(f *Fragment, name, layout string) time.Time {
	raw, ok := f.Attrib[name]
	if !ok || raw == "" {
		return time.Time{}
	}
	if layout == "" {
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}
		}
		return time.Unix(secs, 0).UTC()
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
