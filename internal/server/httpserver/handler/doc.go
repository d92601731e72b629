// Package handler provides HTTP request handlers for meterd.
//
// The only endpoint is the metrics scrape handler: it triggers one
// serialized sensor read through the measurement gate, then encodes
// the metric set in the text exposition format. Error responses carry
// a JSON envelope with a structured error code.
package handler
