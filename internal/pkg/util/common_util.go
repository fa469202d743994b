package util

import (
	"strconv"
	"strings"
)

// NormalizeTag 标签统一规范：去除首尾空白并转小写
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeTags 规范化并去重，丢弃空白标签，保留首次出现的顺序
func NormalizeTags(rawTags []string) []string {
	tagSet := make(map[string]struct{})
	tags := make([]string, 0, len(rawTags))

	for _, raw := range rawTags {
		tagName := NormalizeTag(raw)
		if tagName == "" {
			continue
		}
		if _, exists := tagSet[tagName]; !exists {
			tagSet[tagName] = struct{}{}
			tags = append(tags, tagName)
		}
	}

	return tags
}

// ParseUint64 解析路径参数中的 ID
func ParseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// PtrBool 用于将 bool 转换为 *bool
func PtrBool(b bool) *bool {
	return &b
}

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}
