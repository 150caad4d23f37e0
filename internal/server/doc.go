// Package server provides HTTP routing, middleware, and the channel directory's JSON API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] is folded around the whole route table: the first middleware
// passed to [BasicRouter.Use] is the outermost layer.
//
// [BasicRouter] delegates pattern matching, including method-qualified
// patterns, to [http.ServeMux].
//
// # Channel API
//
// [ChannelHandler] serves the directory: channel CRUD under /api/channels,
// the embed resolution endpoint, import/export, the activity and backup
// histories, stats, and the /watch share deep link.
//
// The underlying store is single-writer, so the handler serializes all
// requests with a mutex.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
