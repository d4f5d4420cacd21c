package sheet

import "errors"

var (
	ErrInvalidFrameSize     = errors.New("sheet: frame larger than image")
	ErrFrameIndexOutOfRange = errors.New("sheet: frame index out of range")
	ErrGroupIndexOutOfRange = errors.New("sheet: group index out of range")
	ErrInvalidRange         = errors.New("sheet: invalid frame range")
)
