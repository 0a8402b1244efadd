// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (the package being
// analysed and the set of URLs pulled out of it) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
