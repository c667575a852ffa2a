// Package broadcast provides the publish/subscribe primitives used to deliver
// state machine lifecycle events.
//
// Channel is synchronous: Publish calls each listener in registration order on
// the caller's goroutine and stops at the first listener error. Every
// subscription returns its own Unsubscribe func, so removing one registration
// never affects another, even when the same function was registered twice.
//
//	ch := broadcast.NewChannel[string]()
//	unsubscribe, _ := ch.Subscribe(func(v string) error {
//		fmt.Println(v)
//		return nil
//	})
//	_ = ch.Publish("hello")
//	unsubscribe()
//
// MemoryBroadcaster is the asynchronous counterpart for consumers running on
// other goroutines. Each subscriber gets a buffered Go channel; messages are
// dropped (and the subscriber removed) when it falls behind.
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//	msg := <-sub.Receive(ctx)
package broadcast
