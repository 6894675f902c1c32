// Package beacon correlates telemetry emitted by an instrumented Go
// application into bounded periods of activity - sessions.
//
// A Tracker collects Envelope items on a buffered channel, stamps each one
// with the current session identifier, batches them by size and flush
// interval, and hands batches to a Sender for delivery. The session
// lifecycle itself (creation, expiration, renewal, dual-backend
// persistence) lives in pkg/session; the tracker drives it from a single
// worker goroutine, which is exactly the concurrency contract the session
// manager requires.
//
// # Usage
//
//	jar := cookie.NewJar()
//	store, _ := storage.NewFile(filepath.Join(stateDir, "session.json"))
//
//	manager := session.New(
//	    session.WithCookieStore(jar),
//	    session.WithStorage(store),
//	)
//
//	tracker := beacon.New(
//	    beacon.SenderFunc(func(ctx context.Context, batch []beacon.Envelope) error {
//	        return exporter.Export(ctx, batch)
//	    }),
//	    manager,
//	    beacon.WithService("my-service"),
//	)
//	defer tracker.Close(context.Background())
//
//	tracker.Track(beacon.Envelope{Name: "app.start"})
//
// HTTP servers can hang the tracker into any router via the net/http
// middleware:
//
//	mux := http.NewServeMux()
//	handler := tracker.Middleware()(mux)
//
// # Delivery Semantics
//
// Track never blocks: a full buffer drops the envelope with a warning.
// Delivery failures drop the batch with a warning. Telemetry is lossy by
// contract; session state is not - Close drains the queue, flushes the
// final batch, and writes a last durable-storage checkpoint so a restarted
// client resumes the same session.
package beacon
