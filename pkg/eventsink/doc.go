// Package eventsink forwards completed state machine transitions to external
// consumers.
//
// A Sink receives one Record per transition. Records are produced by a
// listener registered on the machine's after:* channel, so a sink sees a
// transition only once the machine has committed it and every earlier phase
// succeeded.
//
// Two sinks are provided: RedisSink publishes JSON records to a Redis pub/sub
// channel, and LogSink writes them through slog.
//
// # Usage
//
//	client, err := eventsink.Connect(ctx, eventsink.RedisConfig{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  time.Second,
//	    ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	sink, err := eventsink.NewRedisSink(client, "fsm:events")
//	if err != nil {
//	    return err
//	}
//	detach, err := eventsink.Attach(ctx, machine, sink, eventsink.NewLogSink(log))
//	if err != nil {
//	    return err
//	}
//	defer detach()
//
// A sink error aborts the firing sequence like any other listener error: the
// machine has already moved, and Fire returns an *fsm.ListenerError.
package eventsink
