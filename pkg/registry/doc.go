// Package registry builds the read-only templates, items and users the
// match engine works on from a loaded configuration, reporting and
// skipping anything invalid instead of failing the whole build.
package registry
