// Package ports holds the interfaces the layers talk through. Handlers call
// the list service, the service calls a ListRepository, and the storage
// drivers in adapters/store satisfy it.
package ports
