// Package domain contains the core business entities of the membership
// service: members (User), their postal Address, and the Role that gates
// administrative routes. It is independent of storage and transport.
package domain
