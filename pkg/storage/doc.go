// Package storage provides durable key-value backends for the session
// manager's secondary persistence slot.
//
// All three implementations satisfy the session.Storage contract: Get/Set
// of flat string values under a shared key, plus an Available probe the
// session layer consults only to decide whether to log a degradation
// warning. None of them attach expiry semantics to values by default; the
// session layer owns expiry and durable storage is strictly a recovery
// fallback for cookie eviction.
//
//   - Memory: process-local map, always available. Tests and single-run
//     clients.
//   - File: JSON file with write-through persistence. CLI and desktop
//     clients.
//   - Redis: go-redis wrapper with optional key prefix and housekeeping
//     TTL. Clients without trustworthy local disk.
//
//	store, err := storage.NewFile(filepath.Join(stateDir, "session.json"))
//	if err != nil {
//	    // corrupt state file
//	}
//	manager := session.New(
//	    session.WithCookieStore(jar),
//	    session.WithStorage(store),
//	)
package storage
