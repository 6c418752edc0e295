// Package cli wires the cobra command tree: browsing and editing the
// activity and quiz libraries, scheduling, calendar lookups, trivia
// imports, and printable exports.
package cli
