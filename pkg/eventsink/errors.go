package eventsink

import "errors"

var (
	ErrNoSinks                      = errors.New("eventsink: at least one sink is required")
	ErrNilSink                      = errors.New("eventsink: sink must not be nil")
	ErrEmptyChannel                 = errors.New("eventsink: empty redis channel name")
	ErrEncodeRecord                 = errors.New("eventsink: failed to encode record")
	ErrPublish                      = errors.New("eventsink: failed to publish record")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
