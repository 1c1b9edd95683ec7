package controller

import "errors"

var (
	ErrInvalidInstance    = errors.New("invalid instance")
	ErrStoreSnapshot      = errors.New("store snapshot")
	ErrGenerateChildren   = errors.New("generate children")
	ErrApplyChild         = errors.New("apply child")
	ErrRegisterDefinition = errors.New("register definition")
	ErrUnexpectedObject   = errors.New("unexpected object type")
	ErrListInstances      = errors.New("list instances")
)
