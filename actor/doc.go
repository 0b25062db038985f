// Package actor runs actors on their own goroutines and routes synchronous
// requests to them by type, not by name or pid.
//
// An actor is any value implementing [Actor] for a request/reply type pair.
// It is registered with a [Distributor], which gives it a dedicated goroutine
// and a pair of FIFO queues. The slot it occupies is selected by the actor's
// type together with its request and reply types:
//
//	type Echo struct{}
//
//	func (Echo) Start(ctx context.Context, replies actor.Sender[int], requests actor.Receiver[int]) {
//		for {
//			n, err := requests.Receive(ctx)
//			if err != nil {
//				return
//			}
//			if err := replies.Send(n + 1); err != nil {
//				return
//			}
//		}
//	}
//
//	d, _ := actor.New(context.Background(), actor.NewOptions())
//	_ = actor.Register[int, int](d, Echo{})
//
//	six, err := actor.Send[Echo, int](d.Context(), actor.NewMessage(5))
//
// # Ambient distributor
//
// Send and Spawn find their distributor in the context they are given.
// [Distributor.Context] returns a context carrying it, actors receive it in
// Start, and goroutines started with [Spawn] are handed it as well. Calling
// Send or Spawn with a context that carries no distributor fails with
// [ErrNoDistributor], naming the file and line of the call.
//
// # Dispatch
//
// Each actor has its own dispatch turn: one request is in flight per actor,
// and it is answered before the next one is queued. Requests to different
// actors proceed in parallel. Sending to a type that was never registered
// fails at once with [ErrActorNotFound].
//
// An actor that never replies blocks its callers until their context ends.
// A caller that gives up keeps the turn reserved until the late reply arrives
// and is thrown away, so no later caller receives it.
package actor
