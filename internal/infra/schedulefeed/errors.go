package schedulefeed

import "errors"

var ErrAppletNotFound = errors.New("applet not found in schedule management")
