// Package store defines the persistence interfaces of the surrounding
// application. The generation pipeline is transient by design; stores only
// bridge the gap between a generate request and its export request.
package store
