// Package internal contains infrastructure shared by the themer packages:
// structured logging and the LRU cache used for converted font handles.
// Types and functions in this package are not part of the public API.
package internal
