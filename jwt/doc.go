// Package jwt bridges the opaque AES wire format to signed JWTs for interop
// with consumers that only speak JWT.
//
// [Bridge.Sign] maps a decoded token onto registered claims (id to sub, due
// to exp) plus a private "pl" claim for the payload; [Bridge.Parse] reverses
// the mapping. Unlike the core parse path, this boundary returns errors: JWT
// consumers handle verification failures themselves, and swallowing them here
// would hide signature problems from an interop partner.
package jwt
