package projmap

import "errors"

var (
	ErrKeyExisted    = errors.New("key existed")
	ErrKeyNotExisted = errors.New("key not existed")
)
