package service

import "errors"

var (
	ErrStructureNotFound = errors.New("structure not found")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidStatus     = errors.New("invalid structure status")
	ErrUnknownSlot       = errors.New("slot does not exist")
	ErrInvalidOrder      = errors.New("invalid breakfast order")
)
