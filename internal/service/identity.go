package service

import (
	"strings"
)

// Identity 一次请求解析出的调用方身份。SessionKey 由会话层注入，
// Provider/Principal 来自上游身份层的受信请求头，应用不做校验
type Identity struct {
	SessionKey string
	Provider   string
	Principal  string
}

// NewIdentity 创建身份对象并归一化字段
func NewIdentity(sessionKey, provider, principal string) Identity {
	return Identity{
		SessionKey: strings.TrimSpace(sessionKey),
		Provider:   strings.TrimSpace(provider),
		Principal:  strings.TrimSpace(principal),
	}
}

// UserKey 推导用户 key：provider 与 principal 均非空时拼接，否则为空串
func (id Identity) UserKey() string {
	if id.Provider == "" || id.Principal == "" {
		return ""
	}
	return id.Provider + id.Principal
}

// CartKey 购物车分区 key：用户 key 可解析时覆盖会话 key
func (id Identity) CartKey() string {
	if userKey := id.UserKey(); userKey != "" {
		return userKey
	}
	return id.SessionKey
}

// Authenticated 判断是否解析出了用户身份
func (id Identity) Authenticated() bool {
	return id.UserKey() != ""
}
