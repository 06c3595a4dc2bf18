package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path the pprof handlers are registered under.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns a mux serving net/http/pprof under PprofPrefix. Mount it
// on the same prefix, since pprof.Index resolves named profiles (heap,
// goroutine, ...) from the full request path.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
