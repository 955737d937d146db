package redis

import (
	"fmt"

	"github.com/mcoot/sugoroku/internal/model"
)

// Key prefix for all archive data
const keyPrefix = "sugoroku"

// resultKey returns the Redis key for a finished game summary
func resultKey(id model.GameID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

// resultsByCompletionKey returns the Redis key for the ZSET of game ids
// scored by completion time
func resultsByCompletionKey() string {
	return fmt.Sprintf("%s:idx:results_by_completion", keyPrefix)
}
