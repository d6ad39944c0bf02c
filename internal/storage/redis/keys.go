package redis

import "fmt"

// Key prefix for all chat data
const keyPrefix = "batepapo"

// Key generation functions for each entity type

// participantKey returns the Redis key for a Participant
func participantKey(name string) string {
	return fmt.Sprintf("%s:participant:%s", keyPrefix, name)
}

// participantIndexKey returns the Redis key for the SET of participant names
func participantIndexKey() string {
	return fmt.Sprintf("%s:idx:participants", keyPrefix)
}

// messageKey returns the Redis key for a Message
func messageKey(id string) string {
	return fmt.Sprintf("%s:message:%s", keyPrefix, id)
}

// messageLogKey returns the Redis key for the LIST of message ids in append order
func messageLogKey() string {
	return fmt.Sprintf("%s:idx:message_log", keyPrefix)
}
