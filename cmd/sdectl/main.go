// Package main provides the sdectl CLI for building and installing the SDE
// from declarative profiles.
package main

func main() {
	Execute()
}
