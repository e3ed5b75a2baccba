// Package service contains the member registration and authentication use
// cases. Services orchestrate domain objects and the store interfaces and
// own transaction boundaries; they never depend on a concrete database.
//
// Key components:
//
//   - AddressService persists postal addresses.
//   - UserService looks up, creates and removes members.
//   - AuthService registers members atomically with their address and
//     exchanges credentials for signed tokens.
package service
