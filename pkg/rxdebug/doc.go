// Package rxdebug turns on stream tracing from the environment.
//
//	RX_DEBUG=true RX_DEBUG_FORMAT=json RX_DEBUG_LEVEL=info ./app
//
// Trace wraps any source with rx.Debug using a logger built from those
// variables; when RX_DEBUG is false the records go nowhere.
//
//	prices := rxdebug.Trace(rx.Wrap(subject), "prices")
package rxdebug
