package util

import "net/url"

const avatarBase = "https://api.dicebear.com/7.x/adventurer/svg?seed="

// PlaceholderAvatar 根据用户名生成固定的默认头像
func PlaceholderAvatar(seed string) string {
	return avatarBase + url.QueryEscape(seed)
}
