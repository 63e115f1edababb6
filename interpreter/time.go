/*
File    : plox/interpreter/time.go
*/
package interpreter

import "time"

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
