package util

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID 解析十进制 id，空值、非数字和非正数一律拒绝
func ParseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseOptionalID 空字符串返回 0
func ParseOptionalID(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return ParseID(s)
}

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func FormatIDs(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, FormatID(id))
	}
	return out
}
