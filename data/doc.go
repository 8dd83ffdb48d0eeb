// Package data implements the per-surface reactive data store of the
// A2UI engine: structured paths ([Path]), a path-addressed JSON tree with
// subscription-driven notification ([Model]), and path-relative scoped
// views ([Context]).
//
// # Paths
//
// Paths split on "/" and are absolute iff the source string had a leading
// separator. Joining with an absolute path replaces the receiver, like a
// root-jump on a filesystem:
//
//	base := data.ParsePath("/root/child")
//	base.Join(data.ParsePath("grand"))  // /root/child/grand
//	base.Join(data.ParsePath("/other")) // /other
//
// # Subscriptions
//
// A subscription watches one path through a shared [Notifier]. A write
// notifies every subscription whose path is an ancestor or descendant of
// the written path, in either direction: writing /items/0/title reaches a
// watcher of /items, and replacing /items wholesale reaches a watcher of
// /items/0/title. Notification is synchronous and unbatched.
//
// # Concurrency
//
// Models are single-writer: every mutation arrives through the surface
// registry on one goroutine. Notifiers are safe for concurrent readers.
package data
