package beacon_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/beacon"
	"github.com/dmitrymomot/beacon/pkg/cookie"
	"github.com/dmitrymomot/beacon/pkg/session"
	"github.com/dmitrymomot/beacon/pkg/storage"
)

func Example() {
	manager := session.New(
		session.WithCookieStore(cookie.NewJar()),
		session.WithStorage(storage.NewMemory()),
		session.WithIDGenerator(func() string { return "example-session" }),
	)

	sender := beacon.SenderFunc(func(ctx context.Context, batch []beacon.Envelope) error {
		for _, e := range batch {
			fmt.Printf("%s session=%s\n", e.Name, e.SessionID)
		}
		return nil
	})

	tracker := beacon.New(sender, manager, beacon.WithService("example"))

	tracker.Track(beacon.Envelope{Name: "app.start"})
	tracker.Track(beacon.Envelope{Name: "app.stop"})

	_ = tracker.Close(context.Background())

	// Output:
	// app.start session=example-session
	// app.stop session=example-session
}
