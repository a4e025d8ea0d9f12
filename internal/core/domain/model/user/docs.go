// Package user provides the account model of the maintenance console.
//
// Three account kinds share a Profile (names, e-mail, password hash, active flag):
//   - Admin: oversees users, assets and work orders; carries a department
//   - Supervisor: registers assets, opens and assigns work orders; carries an area
//   - Technician: resolves the work orders assigned to them; carries a limit of
//     simultaneously active work orders
//
// The role of an account is a property of its concrete type. It is never stored
// in a settable field, so an account cannot change role after construction.
//
// Passwords never enter this package in clear text except through ValidatePassword;
// accounts hold only the hash produced by the password hashing port.
package user
