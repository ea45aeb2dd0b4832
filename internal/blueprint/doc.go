// Package blueprint defines the declarative link blueprint format.
//
// A blueprint is a versioned JSON document listing desired link items in
// processing order. Each item names a source (project-relative or
// home-relative), a target (absolute or home-relative), a kind (file or
// directory), and an optional creation policy with default content.
//
// Blueprint load failures are fatal to a reconciliation run and surface
// as ErrBlueprintNotFound or ErrBlueprintMalformed before any item
// processing begins.
package blueprint
