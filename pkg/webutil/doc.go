// Package webutil connects the Record-level logging pipeline to net/http.
//
// It converts HTTP requests and responses into Records, provides
// chi-compatible middleware for request logging and trace propagation,
// and a context-aware replacement for http.ListenAndServe.
//
//	router := chi.NewRouter()
//	router.Use(webutil.Tracing(""))
//	router.Use(webutil.Logging(emitter, midutil.PresetInboundText()))
//
//	webutil.ListenAndServeWithContext(ctx, "0.0.0.0:8080", router)
package webutil
