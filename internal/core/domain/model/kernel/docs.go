// Package kernel provides core domain primitives shared by the maintenance model.
//
// The package includes:
//   - ID: the surrogate key assigned by storage to users, assets and work orders
//   - Email: a normalised, validated e-mail address value object
//   - Text rules: RequireName and RequireText, the trimming and length checks used
//     for names, titles, descriptions and asset attributes
//   - Clock: an injectable source of "now"
//
// These primitives enforce domain invariants at construction, so aggregates built
// on top of them never hold malformed values.
package kernel
