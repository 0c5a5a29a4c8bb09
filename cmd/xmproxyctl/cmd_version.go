package main

import "fmt"

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("xmproxyctl version %s (%s)\n", version, commit)
	return nil
}
