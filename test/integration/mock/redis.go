package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// NewRedis starts a shared miniredis server and returns its address.
func NewRedis() string {
	redisOnce.Do(
		func() {
			server, err := miniredis.Run()
			if err != nil {
				panic(err)
			}
			redisServer = server
		},
	)

	return redisServer.Addr()
}

func ClearRedis(_ context.Context) {
	if redisServer != nil {
		redisServer.FlushAll()
	}
}
