// Package lib holds small libraries that do not fit strictly into
// other layers: the random source behind the canned responses and
// generic utilities.
package lib
