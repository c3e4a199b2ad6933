package cache

import "fmt"

const keyPrefix = "quizforge"

// PublishedQuizzesKey is the cache key for the published quiz list.
func PublishedQuizzesKey() string {
	return fmt.Sprintf("%s:quizzes:published", keyPrefix)
}
