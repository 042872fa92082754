package service

import "errors"

// 服务层错误
var (
	ErrProductNotAvailable = errors.New("product not available")
	ErrMissingSessionKey   = errors.New("missing session key")
)
