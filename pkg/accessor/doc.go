// Package accessor normalizes read functions into uniform gettable (and
// optionally settable) attributes for computed model fields. An Accessor
// either recomputes on every read or computes once per instance and serves
// the cached value until an explicit reset; the cache lives in a Cache value
// the model struct embeds. Accessors hold no per-instance state themselves
// and are safe to copy and share.
package accessor
